package cipher

import (
	"strings"
)

// Size is the number of letters in the alphabet.
const Size = 26

// Alphabet is the plain alphabet, in key order.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

var validLetter [256]bool

func init() {
	for x := 'A'; x <= 'Z'; x++ {
		validLetter[x] = true
		validLetter[x-'A'+'a'] = true
	}
}

// IsLetter reports whether c is an ASCII letter of either case.
func IsLetter(c byte) bool {
	return validLetter[c]
}

// Upper returns the uppercase form of an ASCII letter, other bytes unchanged.
func Upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

// Clean returns the letters of s in uppercase, dropping everything else.
func Clean(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if validLetter[s[i]] {
			b.WriteByte(Upper(s[i]))
		}
	}
	return b.String()
}

// CleanWords splits s on whitespace and cleans every word. Words left empty
// by cleaning are dropped.
func CleanWords(s string) []string {
	fields := strings.Fields(s)
	words := fields[:0]
	for _, f := range fields {
		if w := Clean(f); w != "" {
			words = append(words, w)
		}
	}
	return words
}

// Indices converts the letters of word to alphabet positions 0-25.
// Non-letters are skipped.
func Indices(word string) []byte {
	idx := make([]byte, 0, len(word))
	for i := 0; i < len(word); i++ {
		if c := word[i]; validLetter[c] {
			idx = append(idx, Upper(c)-'A')
		}
	}
	return idx
}
