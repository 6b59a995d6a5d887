// Package dict holds the word list used to recognise plausible English
// when brute forcing a Caesar shift.
package dict

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strconv"

	"github.com/jmccarv/quadcrack/cipher"

	E "github.com/sagernet/sing/common/exceptions"
)

type Dictionary struct {
	words map[string]int
}

// Given a line of a word list like:
// word [xxx]
// where word is a word made of letters and xxx is an optional number
// giving how frequently the word appears in English text
//
// return the cleaned word and its frequency (1 when absent)
func parseLine(line []byte) (string, int, error) {
	l := bytes.Fields(line)
	if len(l) == 0 || len(l) > 2 {
		return "", 0, E.New("invalid input (", len(l), " fields)")
	}

	w := cipher.Clean(string(l[0]))
	if w == "" {
		return "", 0, E.New("invalid input (no letters in ", strconv.Quote(string(l[0])), ")")
	}

	freq := 1
	if len(l) == 2 {
		f, err := strconv.Atoi(string(l[1]))
		if err != nil {
			return "", 0, E.New("invalid input (invalid number)")
		}
		freq = f
	}
	return w, freq, nil
}

// Load reads a word list. Words are stored cleaned and uppercase.
func Load(r io.Reader) (*Dictionary, error) {
	d := &Dictionary{words: make(map[string]int)}

	s := bufio.NewScanner(r)
	lno := 0
	for s.Scan() {
		lno++
		line := bytes.TrimSpace(s.Bytes())
		if len(line) == 0 {
			continue
		}
		w, freq, err := parseLine(line)
		if err != nil {
			return nil, E.Cause(err, "line ", lno)
		}
		d.words[w] += freq
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return d, nil
}

func LoadFile(fn string) (*Dictionary, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := Load(f)
	if err != nil {
		return nil, E.Cause(err, "load ", fn)
	}
	return d, nil
}

// New builds a dictionary from a list of words.
func New(words ...string) *Dictionary {
	d := &Dictionary{words: make(map[string]int, len(words))}
	for _, w := range words {
		if w = cipher.Clean(w); w != "" {
			d.words[w]++
		}
	}
	return d
}

func (d *Dictionary) Len() int {
	return len(d.words)
}

// Contains reports whether word, once cleaned, is in the dictionary.
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.words[cipher.Clean(word)]
	return ok
}

// Freq returns how often word appears in English text, 0 if unknown.
func (d *Dictionary) Freq(word string) int {
	return d.words[cipher.Clean(word)]
}

// Count returns how many of words are in the dictionary.
func (d *Dictionary) Count(words []string) int {
	n := 0
	for _, w := range words {
		if d.Contains(w) {
			n++
		}
	}
	return n
}
