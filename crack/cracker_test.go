package crack

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/jmccarv/quadcrack/cipher"
	"github.com/jmccarv/quadcrack/quadgram"

	"github.com/stretchr/testify/require"
)

func TestCrackCaesarFox(t *testing.T) {
	scorer := englishScorer(t)
	plain := "THE QUICK BROWN FOX"
	ciphertext := cipher.Rotate(plain, 3)
	require.Equal(t, foxCiphertext, ciphertext)

	trueKey := cipher.CaesarKey(-3)
	require.Equal(t, plain, trueKey.Apply(ciphertext))
	trueScore := scorer.Englishness(plain)

	c := NewCracker(scorer, Options{})
	res, err := c.Crack(context.Background(), rand.New(rand.NewPCG(2024, 1)), ciphertext)
	require.NoError(t, err)
	require.True(t, res.Key.Valid())
	require.Equal(t, DefaultRestarts, res.Restarts)
	require.GreaterOrEqual(t, res.Score, trueScore)
	require.Equal(t, res.Key.Apply(ciphertext), res.Plaintext)
	require.InDelta(t, scorer.Englishness(res.Plaintext), res.Score, 1e-9)
	require.Equal(t, res.Key, res.EncryptionKey().Inverse())
}

func TestCrackReproducible(t *testing.T) {
	scorer := englishScorer(t)
	text := "Xli uymgo fvsar jsb nyqtw sziv xli pedc hsk."
	c := NewCracker(scorer, Options{Restarts: 8, Patience: 300, TopN: 3})

	a, err := c.Crack(context.Background(), rand.New(rand.NewPCG(9, 9)), text)
	require.NoError(t, err)
	b, err := c.Crack(context.Background(), rand.New(rand.NewPCG(9, 9)), text)
	require.NoError(t, err)

	require.Equal(t, a.Key, b.Key)
	require.Equal(t, a.Score, b.Score)
	require.Equal(t, a.Top, b.Top)
}

func TestCrackParallelMatchesSequential(t *testing.T) {
	scorer := englishScorer(t)
	text := "Xli uymgo fvsar jsb nyqtw sziv xli pedc hsk."

	seq := NewCracker(scorer, Options{Restarts: 12, Patience: 300, TopN: 5})
	par := NewCracker(scorer, Options{Restarts: 12, Patience: 300, TopN: 5, Parallel: 4})

	a, err := seq.Crack(context.Background(), rand.New(rand.NewPCG(77, 3)), text)
	require.NoError(t, err)
	b, err := par.Crack(context.Background(), rand.New(rand.NewPCG(77, 3)), text)
	require.NoError(t, err)

	require.Equal(t, a.Key, b.Key)
	require.Equal(t, a.Score, b.Score)
	require.Equal(t, a.Top, b.Top)
	require.Equal(t, 12, b.Restarts)
}

func TestCrackEmptyTable(t *testing.T) {
	empty, err := quadgram.New(nil)
	require.NoError(t, err)

	var first cipher.Key
	for _, parallel := range []int{1, 3, 8} {
		t.Run(fmt.Sprintf("parallel=%d", parallel), func(t *testing.T) {
			var (
				mu    sync.Mutex
				steps []int
			)
			c := NewCracker(empty, Options{
				Restarts: 5,
				Patience: 100,
				Parallel: parallel,
				TopN:     5,
				OnTrajectory: func(cand Candidate) {
					mu.Lock()
					steps = append(steps, cand.Steps)
					mu.Unlock()
				},
			})
			res, err := c.Crack(context.Background(), rand.New(rand.NewPCG(1, 2)), foxCiphertext)
			require.NoError(t, err)
			require.True(t, res.Key.Valid())
			require.Equal(t, 4*quadgram.UnknownScore, res.Score)
			require.Equal(t, []int{100, 100, 100, 100, 100}, steps)

			// every key ties, so the first trajectory wins however they ran
			require.Equal(t, 0, res.Top[0].Restart)
			require.Equal(t, res.Key, res.Top[0].Key)
			for i, cand := range res.Top {
				require.Equal(t, i, cand.Restart)
			}
			if parallel == 1 {
				first = res.Key
			} else {
				require.Equal(t, first, res.Key)
			}
		})
	}
}

func TestCrackDegenerateText(t *testing.T) {
	scorer := englishScorer(t)
	for _, text := range []string{"", "1234 -- !?", "a an the"} {
		c := NewCracker(scorer, Options{Restarts: 3, Patience: 20, TopN: 3})
		res, err := c.Crack(context.Background(), rand.New(rand.NewPCG(5, 5)), text)
		require.NoError(t, err)
		require.Zero(t, res.Score)
		require.Equal(t, 0, res.Top[0].Restart)
		require.Equal(t, cipher.Clean(text) == "", res.Plaintext == text)
	}
}

func TestCrackCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewCracker(englishScorer(t), Options{})
	_, err := c.Crack(ctx, rand.New(rand.NewPCG(1, 1)), foxCiphertext)
	require.ErrorIs(t, err, context.Canceled)
}

func TestCrackCancelledAfterFirst(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := NewCracker(englishScorer(t), Options{
		Restarts: 10,
		Patience: 100,
		OnTrajectory: func(Candidate) {
			cancel()
		},
	})
	res, err := c.Crack(ctx, rand.New(rand.NewPCG(1, 1)), foxCiphertext)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 1, res.Restarts)
	require.True(t, res.Key.Valid())
	require.Equal(t, res.Key.Apply(foxCiphertext), res.Plaintext)
}
