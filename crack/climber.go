package crack

import (
	"context"
	"math/rand/v2"

	"github.com/jmccarv/quadcrack/cipher"
	"github.com/jmccarv/quadcrack/quadgram"
)

// DefaultPatience is how many consecutive non-improving swaps end a
// trajectory.
const DefaultPatience = 1000

// how often a trajectory looks at its context
const checkEvery = 256

// Climber runs a single hill-climbing trajectory: start from a random key,
// try random swaps of two letters, keep a swap only when it strictly raises
// the score, and stop after Patience failures in a row.
type Climber struct {
	Scorer   *quadgram.Scorer
	Patience int

	// Observe, when set, is called with step 0 for the starting key and
	// then after every proposed swap, with the score of the key held.
	Observe func(step int, score float64)
}

func (c *Climber) patience() int {
	if c.Patience > 0 {
		return c.Patience
	}
	return DefaultPatience
}

// Climb searches for a key that decrypts ciphertext into English-looking
// text. If ctx ends first, the key held at that point is returned along
// with ctx.Err().
func (c *Climber) Climb(ctx context.Context, r *rand.Rand, ciphertext string) (Candidate, error) {
	return c.climb(ctx, r, newCryptogram(ciphertext))
}

func (c *Climber) climb(ctx context.Context, r *rand.Rand, cg cryptogram) (Candidate, error) {
	patience := c.patience()
	buf := cg.buffer()

	key := cipher.RandomKey(r)
	best := cg.score(c.Scorer, &key, buf)

	if c.Observe != nil {
		c.Observe(0, best)
	}

	failures, step := 0, 0
	for failures < patience {
		if step%checkEvery == 0 && ctx.Err() != nil {
			return Candidate{Key: key, Score: best, Steps: step}, ctx.Err()
		}

		// j is drawn from the 25 positions other than i
		i := r.IntN(cipher.Size)
		j := r.IntN(cipher.Size - 1)
		if j >= i {
			j++
		}

		next := key
		if err := next.Swap(i, j); err != nil {
			return Candidate{Key: key, Score: best, Steps: step}, err
		}
		score := cg.score(c.Scorer, &next, buf)
		step++

		if score > best {
			key, best = next, score
			failures = 0
		} else {
			failures++
		}

		if c.Observe != nil {
			c.Observe(step, best)
		}
	}

	return Candidate{Key: key, Score: best, Steps: step}, nil
}
