package crack

import (
	"fmt"

	"github.com/jmccarv/quadcrack/cipher"
)

// Candidate is the outcome of one hill-climbing trajectory. Key decrypts:
// it is applied directly to ciphertext letters.
type Candidate struct {
	Key     cipher.Key
	Score   float64
	Restart int // index of the trajectory that produced it
	Steps   int // swaps proposed before the trajectory stopped
}

// Decrypt applies the candidate key to ciphertext.
func (c Candidate) Decrypt(ciphertext string) string {
	return c.Key.Apply(ciphertext)
}

func (c Candidate) String() string {
	return fmt.Sprintf("Score: %0.4f  Restart: %d", c.Score, c.Restart)
}
