package crack

import (
	"strings"
	"testing"

	"github.com/jmccarv/quadcrack/dict"

	"github.com/stretchr/testify/require"
)

func TestCaesarCandidates(t *testing.T) {
	d := dict.New("the", "quick", "brown", "fox")

	found := CaesarCandidates(d, "Wkh txlfn, eurzq ira!")
	require.Len(t, found, 1)
	require.Equal(t, 23, found[0].Shift)
	require.Equal(t, "THE QUICK BROWN FOX", found[0].Text)
	require.Equal(t, 4, found[0].Matches)
	require.Equal(t, found[0].Text, found[0].Key.Apply("WKH TXLFN EURZQ IRA"))
}

func TestCaesarCandidatesRanking(t *testing.T) {
	// "ab" rotated by one reads "bc", the more common word
	d, err := dict.Load(strings.NewReader("ab 5\nbc 50\ncd 50\n"))
	require.NoError(t, err)

	found := CaesarCandidates(d, "ab")
	require.Len(t, found, 3)
	require.Equal(t, []int{1, 2, 0}, []int{found[0].Shift, found[1].Shift, found[2].Shift})
	require.Equal(t, []int{50, 50, 5}, []int{found[0].Freq, found[1].Freq, found[2].Freq})
	for _, c := range found {
		require.Equal(t, c.Text, c.Key.Apply("AB"))
	}
}

func TestCaesarCandidatesThreshold(t *testing.T) {
	d := dict.New("the", "quick")

	// two of four words is not more than half
	require.Empty(t, CaesarCandidates(d, "the quick xxxx yyyy"))
	require.Len(t, CaesarCandidates(d, "the quick xxxx"), 1)
	require.Empty(t, CaesarCandidates(d, ""))
}
