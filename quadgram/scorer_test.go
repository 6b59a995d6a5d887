package quadgram

import (
	"math"
	"os"
	"strings"
	"testing"

	"github.com/jmccarv/quadcrack/cipher"

	"github.com/stretchr/testify/require"
)

func sampleScorer(t *testing.T) *Scorer {
	t.Helper()
	f, err := os.Open("testdata/sample.txt")
	require.NoError(t, err)
	defer f.Close()
	s, err := Load(f)
	require.NoError(t, err)
	return s
}

func TestUnknownScoreValue(t *testing.T) {
	require.Equal(t, -10.0, UnknownScore)
}

func TestLookup(t *testing.T) {
	s := sampleScorer(t)
	require.Equal(t, 5, s.Len())
	require.Equal(t, uint64(300), s.Total())

	require.Equal(t, math.Log10(100.0/300.0), s.Lookup("TION"))
	require.Equal(t, math.Log10(20.0/300.0), s.Lookup("ETHER"[:4]))
	require.Equal(t, s.Lookup("TION"), s.Lookup("tion"))
	require.Equal(t, UnknownScore, s.Lookup("ZZZZ"))
	require.Equal(t, UnknownScore, s.Lookup("TIO"))
	require.Equal(t, UnknownScore, s.Lookup("TI-N"))
}

func TestScore(t *testing.T) {
	s := sampleScorer(t)

	require.Zero(t, s.Score(""))
	require.Zero(t, s.Score("THE"))
	require.Equal(t, s.Lookup("TION"), s.Score("TION"))

	// ATION = ATIO + TION
	require.Equal(t, s.Lookup("ATIO")+s.Lookup("TION"), s.Score("ATION"))

	// THERE = THER + HERE
	require.Equal(t, s.Lookup("THER")+s.Lookup("HERE"), s.Score("THERE"))

	// QUIZ has no known windows
	require.Equal(t, UnknownScore, s.Score("QUIZ"))
	require.Equal(t, 3*UnknownScore, s.Score("QUIZZE"))
}

func TestScoreText(t *testing.T) {
	s := sampleScorer(t)
	want := s.Score("NATION") + s.Score("THERE") + s.Score("IS")
	require.Equal(t, want, s.ScoreText("NATION  THERE\tIS\n"))
	require.Zero(t, s.ScoreText(""))
	require.Zero(t, s.ScoreText("   "))
	require.Zero(t, s.ScoreText("A BE SEA"))
}

func TestScoreTextDeterministic(t *testing.T) {
	s := sampleScorer(t)
	text := strings.Repeat("THERE IS A NATION OF ETHER ", 50)
	a := s.ScoreText(text)
	b := s.ScoreText(text)
	require.Equal(t, math.Float64bits(a), math.Float64bits(b))
}

func TestEnglishness(t *testing.T) {
	s := sampleScorer(t)
	require.Equal(t, s.ScoreText("THERE NATION"), s.Englishness("There, nation!"))
	require.Equal(t, s.ScoreText("DONT"), s.Englishness("don't 123"))
}

func TestScoreIndices(t *testing.T) {
	s := sampleScorer(t)
	for _, w := range []string{"", "THE", "TION", "NATIONETHER", "QUIZZICAL", "THERETHEREHERE"} {
		require.Equal(t, s.Score(w), s.ScoreIndices(cipher.Indices(w)), w)
	}
}

func TestEmptyTable(t *testing.T) {
	s, err := New(nil)
	require.NoError(t, err)
	require.Zero(t, s.Len())
	require.Equal(t, UnknownScore, s.Lookup("TION"))
	require.Equal(t, 2*UnknownScore, s.ScoreText("NATION"[1:]+" THE"))
}

func TestNew(t *testing.T) {
	s, err := New([]Record{{"TION", 3}, {"tion", 1}, {"HERE", 0}})
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())
	require.Zero(t, s.Lookup("TION"))
	require.Equal(t, UnknownScore, s.Lookup("HERE"))

	_, err = New([]Record{{"TIO", 1}})
	require.Error(t, err)
	_, err = New([]Record{{"TION", -1}})
	require.Error(t, err)
}
