package crack

import (
	"context"
	"io"
	"math/rand/v2"
	"time"

	"github.com/jmccarv/quadcrack/cipher"
	"github.com/jmccarv/quadcrack/quadgram"

	E "github.com/sagernet/sing/common/exceptions"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// DefaultRestarts is the number of independent trajectories per crack.
const DefaultRestarts = 25

var ErrNoTrajectory = E.New("no trajectory completed")

type Options struct {
	Restarts int // independent trajectories, DefaultRestarts when zero
	Patience int // see Climber, DefaultPatience when zero
	Parallel int // trajectories run at once, 1 when zero
	TopN     int // candidates kept in Result.Top, 1 when zero

	Logger logrus.FieldLogger

	// OnTrajectory is called as each trajectory ends. With Parallel > 1 it
	// may be called from several goroutines at once.
	OnTrajectory func(Candidate)
}

// Cracker recovers substitution keys by running many hill-climbing
// trajectories and keeping the best.
type Cracker struct {
	scorer  *quadgram.Scorer
	options Options
}

func NewCracker(scorer *quadgram.Scorer, options Options) *Cracker {
	if options.Restarts < 1 {
		options.Restarts = DefaultRestarts
	}
	if options.Patience < 1 {
		options.Patience = DefaultPatience
	}
	if options.Parallel < 1 {
		options.Parallel = 1
	}
	if options.TopN < 1 {
		options.TopN = 1
	}
	if options.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		options.Logger = l
	}
	return &Cracker{scorer: scorer, options: options}
}

type Result struct {
	Key       cipher.Key // decryption key
	Score     float64
	Plaintext string
	Top       []Candidate // best first, Top[0] has Key and Score
	Restarts  int         // trajectories that ran to completion
	Elapsed   time.Duration
}

// EncryptionKey returns the key that would have produced the ciphertext.
func (r Result) EncryptionKey() cipher.Key {
	return r.Key.Inverse()
}

// Crack runs the configured number of trajectories against ciphertext.
// One seed per trajectory is drawn from r before any of them start, so the
// result for a given r does not depend on Options.Parallel.
//
// When ctx ends early the result covers the trajectories gathered so far
// and the context error is returned alongside it.
func (c *Cracker) Crack(ctx context.Context, r *rand.Rand, ciphertext string) (Result, error) {
	start := time.Now()
	n := c.options.Restarts

	seeds := make([][2]uint64, n)
	for i := range seeds {
		seeds[i] = [2]uint64{r.Uint64(), r.Uint64()}
	}

	cg := newCryptogram(ciphertext)
	c.options.Logger.WithFields(logrus.Fields{
		"words":    len(cg.words),
		"letters":  cg.nrLetters,
		"restarts": n,
		"parallel": c.options.Parallel,
	}).Debug("cracking")

	climber := &Climber{Scorer: c.scorer, Patience: c.options.Patience}
	results := make([]*Candidate, n)
	completed := make([]bool, n)

	var g errgroup.Group
	g.SetLimit(c.options.Parallel)
	for i := 0; i < n; i++ {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			rng := rand.New(rand.NewPCG(seeds[i][0], seeds[i][1]))
			cand, err := climber.climb(ctx, rng, cg)
			cand.Restart = i
			results[i] = &cand
			if err != nil {
				return err
			}
			completed[i] = true

			c.options.Logger.WithFields(logrus.Fields{
				"restart": i,
				"score":   cand.Score,
				"steps":   cand.Steps,
			}).Debug("trajectory done")
			if c.options.OnTrajectory != nil {
				c.options.OnTrajectory(cand)
			}
			return nil
		})
	}
	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}

	res := Result{Elapsed: time.Since(start)}
	set := NewSet(c.options.TopN)
	var best *Candidate
	for i, cand := range results {
		if cand == nil {
			continue
		}
		if completed[i] {
			res.Restarts++
		}
		set.Add(*cand)
		if best == nil || cand.Score > best.Score {
			best = cand
		}
	}
	if best == nil {
		if err == nil {
			err = ErrNoTrajectory
		}
		return Result{}, err
	}

	res.Key = best.Key
	res.Score = best.Score
	res.Plaintext = best.Key.Apply(ciphertext)
	res.Top = set.Candidates()
	return res, err
}
