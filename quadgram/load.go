package quadgram

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strconv"

	E "github.com/sagernet/sing/common/exceptions"
)

var (
	ErrMissingComma = E.New("missing comma")
	ErrBadCount     = E.New("invalid count")
	ErrBadQuadgram  = E.New("invalid quadgram")
)

// Given a line of a quadgram table like:
// TION,13168375
// where the first field is exactly four letters and the second is how often
// that sequence appears in English text
//
// return the parsed record
func parseLine(line []byte) (Record, error) {
	l := bytes.SplitN(line, []byte(","), 2)
	r := Record{}

	if len(l) != 2 {
		return r, ErrMissingComma
	}

	q := bytes.ToUpper(bytes.TrimSpace(l[0]))
	if _, ok := index(string(q)); !ok {
		return r, E.Cause(ErrBadQuadgram, strconv.Quote(string(l[0])))
	}
	r.Quadgram = string(q)

	n, err := strconv.ParseInt(string(bytes.TrimSpace(l[1])), 10, 64)
	if err != nil || n < 0 {
		return r, E.Cause(ErrBadCount, strconv.Quote(string(l[1])))
	}
	r.Count = n

	return r, nil
}

// Read parses a quadgram table, one QUAD,count record per line. Blank lines
// and lines starting with '#' are ignored. The first malformed line aborts
// the read.
func Read(rd io.Reader) ([]Record, error) {
	var records []Record
	s := bufio.NewScanner(rd)
	lno := 0
	for s.Scan() {
		lno++
		line := bytes.TrimSpace(s.Bytes())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		r, err := parseLine(line)
		if err != nil {
			return nil, E.Cause(err, "line ", lno)
		}
		records = append(records, r)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// Load reads a quadgram table and builds a scorer from it.
func Load(rd io.Reader) (*Scorer, error) {
	records, err := Read(rd)
	if err != nil {
		return nil, err
	}
	return New(records)
}

// LoadFile is Load for a file on disk.
func LoadFile(fn string) (*Scorer, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, E.Cause(err, "load ", fn)
	}
	return s, nil
}
