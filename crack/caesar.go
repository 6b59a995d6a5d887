package crack

import (
	"sort"
	"strings"

	"github.com/jmccarv/quadcrack/cipher"
	"github.com/jmccarv/quadcrack/dict"
)

// CaesarCandidate is a shift under which most words of a text are
// dictionary words.
type CaesarCandidate struct {
	Shift   int
	Key     cipher.Key // decryption key for Shift
	Text    string
	Matches int // words found in the dictionary
	Freq    int // summed dictionary frequency of those words
}

// CaesarCandidates tries all 26 rotations of text. A rotation qualifies
// when more than half of the words, counted with integer division, are in
// d. Words are cleaned before rotating and rejoined with single spaces.
//
// The most matches come first; among equal matches the rotation made of
// more common words wins, then the smaller shift.
func CaesarCandidates(d *dict.Dictionary, text string) []CaesarCandidate {
	fields := strings.Fields(text)
	words := make([]string, len(fields))
	for i, f := range fields {
		words[i] = cipher.Clean(f)
	}
	threshold := len(words) / 2

	var found []CaesarCandidate
	shifted := make([]string, len(words))
	for shift := 0; shift < cipher.Size; shift++ {
		matches, freq := 0, 0
		for i, w := range words {
			shifted[i] = cipher.Rotate(w, shift)
			if d.Contains(shifted[i]) {
				matches++
				freq += d.Freq(shifted[i])
			}
		}
		if matches > threshold {
			found = append(found, CaesarCandidate{
				Shift:   shift,
				Key:     cipher.CaesarKey(shift),
				Text:    strings.Join(shifted, " "),
				Matches: matches,
				Freq:    freq,
			})
		}
	}

	sort.SliceStable(found, func(i, j int) bool {
		if found[i].Matches != found[j].Matches {
			return found[i].Matches > found[j].Matches
		}
		return found[i].Freq > found[j].Freq
	})
	return found
}
