package crack

import (
	"sync"
	"testing"

	"github.com/jmccarv/quadcrack/cipher"
	"github.com/jmccarv/quadcrack/quadgram"

	"github.com/stretchr/testify/require"
)

// English letter frequencies, A-Z
var letterFreq = [cipher.Size]float64{
	0.08167, 0.01492, 0.02782, 0.04253, 0.12702, 0.02228, 0.02015, // A-G
	0.06094, 0.06966, 0.00153, 0.00772, 0.04025, 0.02406, 0.06749, // H-N
	0.07507, 0.01929, 0.00095, 0.05987, 0.06327, 0.09056, 0.02758, // O-U
	0.00978, 0.0236, 0.0015, 0.01974, 0.00074, // V-Z
}

var (
	englishOnce   sync.Once
	englishTable  *quadgram.Scorer
	englishTabErr error
)

// englishScorer returns a table covering every quadgram, each counted as if
// letters were drawn independently with English frequencies.
func englishScorer(t *testing.T) *quadgram.Scorer {
	t.Helper()
	englishOnce.Do(func() {
		records := make([]quadgram.Record, 0, cipher.Size*cipher.Size*cipher.Size*cipher.Size+2)
		q := make([]byte, 4)
		for a := 0; a < cipher.Size; a++ {
			for b := 0; b < cipher.Size; b++ {
				for c := 0; c < cipher.Size; c++ {
					for d := 0; d < cipher.Size; d++ {
						q[0], q[1], q[2], q[3] = byte('A'+a), byte('A'+b), byte('A'+c), byte('A'+d)
						p := letterFreq[a] * letterFreq[b] * letterFreq[c] * letterFreq[d]
						records = append(records, quadgram.Record{Quadgram: string(q), Count: int64(p*1e10) + 1})
					}
				}
			}
		}
		records = append(records, quadgram.Record{Quadgram: "TION", Count: 100}, quadgram.Record{Quadgram: "THER", Count: 80})
		englishTable, englishTabErr = quadgram.New(records)
	})
	require.NoError(t, englishTabErr)
	return englishTable
}
