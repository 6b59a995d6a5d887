package crack

import (
	"sort"

	"github.com/jmccarv/quadcrack/cipher"
)

// Set keeps the best N candidates seen, highest score first. A key is only
// kept once, and among equal scores the earlier candidate stays ahead.
type Set struct {
	set  []Candidate
	seen map[cipher.Key]bool
	nr   int
}

func NewSet(size int) *Set {
	if size < 1 {
		size = 1
	}
	return &Set{make([]Candidate, 0, size+1), make(map[cipher.Key]bool), size}
}

// Add returns true if c made it into the set.
func (ss *Set) Add(c Candidate) bool {
	if ss.seen[c.Key] {
		return false
	}
	ss.seen[c.Key] = true

	if len(ss.set) >= ss.nr {
		if c.Score <= ss.set[len(ss.set)-1].Score {
			return false
		}
	}

	ss.set = append(ss.set, c)
	sort.SliceStable(ss.set, func(i, j int) bool { return ss.set[i].Score > ss.set[j].Score })

	if len(ss.set) > ss.nr {
		ss.set = ss.set[:ss.nr]
	}

	return true
}

// Candidates returns the kept candidates, best first.
func (ss *Set) Candidates() []Candidate {
	return append([]Candidate(nil), ss.set...)
}

func (ss *Set) Len() int {
	return len(ss.set)
}
