// Package quadgram scores text by how closely its four-letter sequences
// follow the frequencies observed in a reference corpus.
package quadgram

import (
	"math"
	"strings"

	"github.com/jmccarv/quadcrack/cipher"

	E "github.com/sagernet/sing/common/exceptions"
)

// UnknownScore is the score of a quadgram that was never observed, or whose
// observed count is zero.
const UnknownScore = -10.0

const (
	n3        = cipher.Size * cipher.Size * cipher.Size
	tableSize = n3 * cipher.Size
)

// Record is one line of a quadgram table.
type Record struct {
	Quadgram string
	Count    int64
}

// Scorer holds log10(count/total) for every quadgram. It is immutable and
// safe for concurrent use.
type Scorer struct {
	scores []float64
	known  int
	total  uint64
}

func index(q string) (int, bool) {
	if len(q) != 4 {
		return 0, false
	}
	idx := 0
	for i := 0; i < 4; i++ {
		c := q[i]
		if !cipher.IsLetter(c) {
			return 0, false
		}
		idx = idx*cipher.Size + int(cipher.Upper(c)-'A')
	}
	return idx, true
}

// New builds a scorer from records. Repeated quadgrams add up.
func New(records []Record) (*Scorer, error) {
	counts := make(map[int]uint64, len(records))
	var total uint64
	for _, r := range records {
		idx, ok := index(r.Quadgram)
		if !ok {
			return nil, E.New("invalid quadgram ", r.Quadgram)
		}
		if r.Count < 0 {
			return nil, E.New("negative count ", r.Count, " for ", r.Quadgram)
		}
		counts[idx] += uint64(r.Count)
		total += uint64(r.Count)
	}

	s := &Scorer{
		scores: make([]float64, tableSize),
		total:  total,
	}
	for i := range s.scores {
		s.scores[i] = UnknownScore
	}
	for idx, n := range counts {
		if n == 0 {
			continue
		}
		s.scores[idx] = math.Log10(float64(n) / float64(total))
		s.known++
	}
	return s, nil
}

// Len returns the number of quadgrams with a non-zero count.
func (s *Scorer) Len() int {
	return s.known
}

// Total returns the sum of all counts.
func (s *Scorer) Total() uint64 {
	return s.total
}

// Lookup returns the score of a single quadgram.
func (s *Scorer) Lookup(quad string) float64 {
	idx, ok := index(quad)
	if !ok {
		return UnknownScore
	}
	return s.scores[idx]
}

// Score sums the score of every overlapping four-letter window of word.
// Words shorter than four letters score zero.
func (s *Scorer) Score(word string) float64 {
	score := 0.0
	for i := 0; i+4 <= len(word); i++ {
		score += s.Lookup(word[i : i+4])
	}
	return score
}

// ScoreText splits text on whitespace and sums the score of each word.
func (s *Scorer) ScoreText(text string) float64 {
	score := 0.0
	for _, w := range strings.Fields(text) {
		score += s.Score(w)
	}
	return score
}

// Englishness cleans text into words first, then scores it. Words are
// scored one at a time so no quadgram spans a word boundary; joining the
// cleaned words into one run before scoring would change every score.
func (s *Scorer) Englishness(text string) float64 {
	score := 0.0
	for _, w := range cipher.CleanWords(text) {
		score += s.Score(w)
	}
	return score
}

// ScoreIndices is Score for a word already converted to alphabet positions.
func (s *Scorer) ScoreIndices(word []byte) float64 {
	if len(word) < 4 {
		return 0
	}
	idx := ((int(word[0])*cipher.Size+int(word[1]))*cipher.Size+int(word[2]))*cipher.Size + int(word[3])
	score := s.scores[idx]
	for _, c := range word[4:] {
		idx = (idx%n3)*cipher.Size + int(c)
		score += s.scores[idx]
	}
	return score
}
