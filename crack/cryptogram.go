package crack

import (
	"github.com/jmccarv/quadcrack/cipher"
	"github.com/jmccarv/quadcrack/quadgram"
)

type codeWord struct {
	letters []byte // alphabet positions
	freq    int    // occurrences in the ciphertext
}

// cryptogram is ciphertext reduced to what scoring needs: the distinct
// words of four or more letters, in order of first appearance.
type cryptogram struct {
	words     []*codeWord
	nrLetters int // letters across all scored words, counting repeats
	longest   int
}

func newCryptogram(text string) cryptogram {
	cg := cryptogram{}
	unique := make(map[string]*codeWord)

	for _, w := range cipher.CleanWords(text) {
		// Shorter words have no quadgram and always score zero
		if len(w) < 4 {
			continue
		}
		cg.nrLetters += len(w)

		if x, ok := unique[w]; ok {
			x.freq++
			continue
		}
		cw := &codeWord{letters: cipher.Indices(w), freq: 1}
		unique[w] = cw
		cg.words = append(cg.words, cw)
		if len(w) > cg.longest {
			cg.longest = len(w)
		}
	}
	return cg
}

// score decodes every word through key into buf and sums the quadgram
// scores. buf must hold at least cg.longest bytes.
func (cg cryptogram) score(s *quadgram.Scorer, key *cipher.Key, buf []byte) float64 {
	score := 0.0
	for _, w := range cg.words {
		dec := buf[:len(w.letters)]
		for i, c := range w.letters {
			dec[i] = key[c] - 'A'
		}
		score += s.ScoreIndices(dec) * float64(w.freq)
	}
	return score
}

func (cg cryptogram) buffer() []byte {
	return make([]byte, cg.longest)
}
