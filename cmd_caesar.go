package main

import (
	"fmt"
	"os"

	"github.com/jmccarv/quadcrack/cipher"
	"github.com/jmccarv/quadcrack/crack"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	caesarShift int
	caesarIn    string
	caesarKey   bool
)

var commandCaesar = &cobra.Command{
	Use:   "caesar",
	Short: "Caesar cipher tools",
}

var commandCaesarEncrypt = &cobra.Command{
	Use:   "encrypt [TEXT...]",
	Short: "Rotate every letter by --shift positions",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readText(args, caesarIn)
		if err != nil {
			return err
		}
		fmt.Println(cipher.Rotate(text, caesarShift))
		return nil
	},
}

var commandCaesarDecrypt = &cobra.Command{
	Use:   "decrypt [TEXT...]",
	Short: "Try every shift and print those that read as dictionary words",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDictionary()
		if err != nil {
			return err
		}
		text, err := readText(args, caesarIn)
		if err != nil {
			return err
		}
		found := crack.CaesarCandidates(d, text)
		for _, c := range found {
			logger.WithFields(logrus.Fields{
				"shift": c.Shift,
				"freq":  c.Freq,
			}).Debug(c.Matches, " dictionary words")
			if caesarKey {
				dumpKey(os.Stdout, c.Key)
			}
			fmt.Println(c.Text)
		}
		if len(found) == 0 {
			fmt.Println("No good decryptions found")
		}
		return nil
	},
}

func init() {
	commandCaesarEncrypt.Flags().IntVarP(&caesarShift, "shift", "s", 3, "number of characters to rotate by")
	commandCaesarDecrypt.Flags().BoolVarP(&caesarKey, "show-key", "k", false, "print the key of each decryption")
	for _, command := range []*cobra.Command{commandCaesarEncrypt, commandCaesarDecrypt} {
		command.Flags().StringVarP(&caesarIn, "in", "i", "", "read text from file")
		commandCaesar.AddCommand(command)
	}
	mainCommand.AddCommand(commandCaesar)
}
