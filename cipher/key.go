package cipher

import (
	"bytes"
	"math/rand/v2"
	"regexp"
	"strings"

	E "github.com/sagernet/sing/common/exceptions"
)

var (
	ErrSameIndex      = E.New("swap positions must differ")
	ErrIndexRange     = E.New("swap position out of range")
	ErrNotPermutation = E.New("key is not a permutation of A-Z")
)

// Key is a substitution over the 26 letters: position i holds the image of
// the letter 'A'+i. A Key obtained from this package is always a
// permutation of A-Z.
type Key [Size]byte

// IdentityKey maps every letter to itself.
func IdentityKey() Key {
	var k Key
	copy(k[:], Alphabet)
	return k
}

// NewKey validates raw and returns it as a Key.
func NewKey(raw [Size]byte) (Key, error) {
	k := Key(raw)
	for i := range k {
		k[i] = Upper(k[i])
	}
	if !k.Valid() {
		return Key{}, E.Cause(ErrNotPermutation, string(bytes.ReplaceAll(raw[:], []byte{0}, []byte("_"))))
	}
	return k, nil
}

// RandomKey returns a uniformly random permutation drawn from r.
func RandomKey(r *rand.Rand) Key {
	k := IdentityKey()
	r.Shuffle(Size, func(i, j int) {
		k[i], k[j] = k[j], k[i]
	})
	return k
}

var rxMapping = regexp.MustCompile(`\s*([A-Z]+=[A-Z]+)(?:[ ,]|$)`)

// ParseKey reads a key either as 26 letters ("QWERTY...") or as a list of
// mappings such as "ABC=QWE D=R" that together cover every letter.
// The left side of a mapping is the source letter, the right side its image.
func ParseKey(s string) (Key, error) {
	line := bytes.ToUpper([]byte(strings.TrimSpace(s)))
	if !bytes.ContainsRune(line, '=') {
		letters := Clean(string(line))
		if len(letters) != Size || len(letters) != len(bytes.Join(bytes.Fields(line), nil)) {
			return Key{}, E.New("invalid key ", s, ": want ", Size, " letters")
		}
		var raw [Size]byte
		copy(raw[:], letters)
		return NewKey(raw)
	}

	mappings := rxMapping.FindAllSubmatch(line, -1)
	if len(mappings) == 0 {
		return Key{}, E.New("invalid key map ", s)
	}

	var raw [Size]byte
	for _, m := range mappings {
		kv := bytes.SplitN(m[1], []byte("="), 2)
		if len(kv) != 2 || len(kv[0]) != len(kv[1]) {
			return Key{}, E.New("invalid key map ", string(m[1]), " in ", s)
		}

		// kv[0] is the letter being substituted
		// kv[1] is what it becomes
		for i, from := range kv[0] {
			if raw[from-'A'] != 0 && raw[from-'A'] != kv[1][i] {
				return Key{}, E.New("letter ", string(from), " mapped twice in ", s)
			}
			raw[from-'A'] = kv[1][i]
		}
	}
	return NewKey(raw)
}

// Valid reports whether k is a permutation of A-Z.
func (k Key) Valid() bool {
	var used [Size]bool
	for _, c := range k {
		if c < 'A' || c > 'Z' || used[c-'A'] {
			return false
		}
		used[c-'A'] = true
	}
	return true
}

// Swap exchanges positions i and j.
func (k *Key) Swap(i, j int) error {
	if i < 0 || i >= Size || j < 0 || j >= Size {
		return ErrIndexRange
	}
	if i == j {
		return ErrSameIndex
	}
	k[i], k[j] = k[j], k[i]
	return nil
}

// Inverse returns the key that undoes k.
func (k Key) Inverse() Key {
	var inv Key
	for i, c := range k {
		inv[c-'A'] = byte('A' + i)
	}
	return inv
}

// Apply substitutes every ASCII letter of text through k. Letters come out
// uppercase; all other bytes are passed through unchanged.
func (k Key) Apply(text string) string {
	out := make([]byte, len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if validLetter[c] {
			c = k[Upper(c)-'A']
		}
		out[i] = c
	}
	return string(out)
}

func (k Key) String() string {
	return string(k[:])
}

// Pairs formats k as "A=Q B=W ...", skipping letters that map to themselves.
func (k Key) Pairs() string {
	var ret []string
	for i, c := range k {
		if c == byte('A'+i) {
			continue
		}
		ret = append(ret, string([]byte{byte('A' + i), '=', c}))
	}
	return strings.Join(ret, " ")
}
