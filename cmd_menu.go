package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"github.com/jmccarv/quadcrack/cipher"
	"github.com/jmccarv/quadcrack/crack"
	"github.com/jmccarv/quadcrack/dict"
	"github.com/jmccarv/quadcrack/quadgram"

	E "github.com/sagernet/sing/common/exceptions"
	"github.com/spf13/cobra"
)

var commandMenu = &cobra.Command{
	Use:   "menu",
	Short: "Interactive menu over every cipher tool",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m := newMenu(os.Stdin, os.Stdout)
		return m.run()
	},
}

func init() {
	mainCommand.AddCommand(commandMenu)
}

func seededRand(s uint64) *rand.Rand {
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}

type menu struct {
	in  *bufio.Scanner
	out io.Writer
	rng *rand.Rand

	loadScorer     func() (*quadgram.Scorer, error)
	loadDictionary func() (*dict.Dictionary, error)
	scorer         *quadgram.Scorer
	dictionary     *dict.Dictionary

	options crack.Options
}

func newMenu(in io.Reader, out io.Writer) *menu {
	return &menu{
		in:             bufio.NewScanner(in),
		out:            out,
		rng:            newRand(),
		loadScorer:     loadScorer,
		loadDictionary: loadDictionary,
		options: crack.Options{
			Restarts: cfg.Crack.Restarts,
			Patience: cfg.Crack.Patience,
			Parallel: cfg.Crack.Parallel,
			Logger:   logger,
		},
	}
}

func (m *menu) printMenu() {
	fmt.Fprintln(m.out, "Ciphers Menu")
	fmt.Fprintln(m.out, "------------")
	fmt.Fprintln(m.out, "C - Encrypt with Caesar Cipher")
	fmt.Fprintln(m.out, "D - Decrypt Caesar Cipher")
	fmt.Fprintln(m.out, "E - Compute English-ness Score")
	fmt.Fprintln(m.out, "A - Apply Random Substitution Cipher")
	fmt.Fprintln(m.out, "S - Decrypt Substitution Cipher from Console")
	fmt.Fprintln(m.out, "F - Decrypt Substitution Cipher from File")
	fmt.Fprintln(m.out, "R - Set Random Seed for Testing")
	fmt.Fprintln(m.out, "X - Exit Program")
}

// run reads commands until X or end of input.
func (m *menu) run() error {
	fmt.Fprintln(m.out, "Welcome to Ciphers!")
	fmt.Fprintln(m.out, "-------------------")
	fmt.Fprintln(m.out)

	for {
		m.printMenu()
		command, ok := m.prompt("\nEnter a command (case does not matter): ")
		if !ok {
			return m.in.Err()
		}
		fmt.Fprintln(m.out)

		var err error
		switch strings.ToUpper(strings.TrimSpace(command)) {
		case "C":
			err = m.caesarEncrypt()
		case "D":
			err = m.caesarDecrypt()
		case "E":
			err = m.englishness()
		case "A":
			err = m.randomSubst()
		case "S":
			err = m.crackConsole()
		case "F":
			err = m.crackFile()
		case "R":
			err = m.seed()
		case "X":
			return nil
		}
		if err != nil {
			fmt.Fprintln(m.out, "Error:", err)
		}
		fmt.Fprintln(m.out)
	}
}

func (m *menu) prompt(msg string) (string, bool) {
	if msg != "" {
		fmt.Fprint(m.out, msg)
	}
	if !m.in.Scan() {
		return "", false
	}
	return m.in.Text(), true
}

func (m *menu) promptLine(msg string) (string, error) {
	line, ok := m.prompt(msg)
	if !ok {
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	fmt.Fprintln(m.out)
	return line, nil
}

func (m *menu) getScorer() (*quadgram.Scorer, error) {
	if m.scorer == nil {
		s, err := m.loadScorer()
		if err != nil {
			return nil, err
		}
		m.scorer = s
	}
	return m.scorer, nil
}

func (m *menu) getDictionary() (*dict.Dictionary, error) {
	if m.dictionary == nil {
		d, err := m.loadDictionary()
		if err != nil {
			return nil, err
		}
		m.dictionary = d
	}
	return m.dictionary, nil
}

func (m *menu) seed() error {
	line, err := m.promptLine("Enter a non-negative integer to seed the random number generator: ")
	if err != nil {
		return err
	}
	s, err := strconv.ParseUint(strings.TrimSpace(line), 10, 64)
	if err != nil {
		return E.New("invalid seed ", strconv.Quote(line))
	}
	m.rng = seededRand(s)
	return nil
}

func (m *menu) caesarEncrypt() error {
	text, err := m.promptLine("Enter the text to encrypt: ")
	if err != nil {
		return err
	}
	amount, err := m.promptLine("Enter the number of characters to rotate by: ")
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(strings.TrimSpace(amount))
	if err != nil {
		return E.New("invalid rotation ", strconv.Quote(amount))
	}
	fmt.Fprintln(m.out, cipher.Rotate(text, n))
	return nil
}

func (m *menu) caesarDecrypt() error {
	d, err := m.getDictionary()
	if err != nil {
		return err
	}
	text, err := m.promptLine("Enter the text to Caesar decrypt: ")
	if err != nil {
		return err
	}
	found := crack.CaesarCandidates(d, text)
	for _, c := range found {
		fmt.Fprintln(m.out, c.Text)
	}
	if len(found) == 0 {
		fmt.Fprintln(m.out, "No good decryptions found")
	}
	return nil
}

func (m *menu) englishness() error {
	s, err := m.getScorer()
	if err != nil {
		return err
	}
	text, err := m.promptLine("Enter a string for englishness scoring: ")
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Englishness Score:", s.Englishness(text))
	return nil
}

func (m *menu) randomSubst() error {
	text, err := m.promptLine("Enter the text to encrypt: ")
	if err != nil {
		return err
	}
	key := cipher.RandomKey(m.rng)
	fmt.Fprintln(m.out, key.Apply(text))
	return nil
}

func (m *menu) crackText(text string) (crack.Result, error) {
	s, err := m.getScorer()
	if err != nil {
		return crack.Result{}, err
	}
	return crack.NewCracker(s, m.options).Crack(context.Background(), m.rng, text)
}

func (m *menu) crackConsole() error {
	text, err := m.promptLine("Enter the text to substitution decrypt: ")
	if err != nil {
		return err
	}
	res, err := m.crackText(text)
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, res.Plaintext)
	return nil
}

// crackFile reads an input and an output file name, without prompting.
func (m *menu) crackFile() error {
	in, ok := m.prompt("")
	if !ok {
		return io.ErrUnexpectedEOF
	}
	out, ok := m.prompt("")
	if !ok {
		return io.ErrUnexpectedEOF
	}

	text, err := os.ReadFile(strings.TrimSpace(in))
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Decrypting...")

	res, err := m.crackText(string(text))
	if err != nil {
		return err
	}
	return os.WriteFile(strings.TrimSpace(out), []byte(res.Plaintext), 0o644)
}
