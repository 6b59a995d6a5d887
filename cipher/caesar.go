package cipher

import (
	"strings"
)

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// Rotate shifts every letter of text by amount positions, wrapping around
// the alphabet. Letters come out uppercase and whitespace is kept; any
// other character is dropped.
func Rotate(text string, amount int) string {
	amount %= Size
	if amount < 0 {
		amount += Size
	}

	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case validLetter[c]:
			b.WriteByte(byte((int(Upper(c)-'A')+amount)%Size) + 'A')
		case isSpace(c):
			b.WriteByte(c)
		}
	}
	return b.String()
}

// CaesarKey returns the substitution key equivalent to a rotation by amount.
func CaesarKey(amount int) Key {
	amount %= Size
	if amount < 0 {
		amount += Size
	}
	var k Key
	for i := range k {
		k[i] = byte((i+amount)%Size) + 'A'
	}
	return k
}
