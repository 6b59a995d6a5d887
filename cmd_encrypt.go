package main

import (
	"fmt"
	"os"

	"github.com/jmccarv/quadcrack/cipher"

	E "github.com/sagernet/sing/common/exceptions"
	"github.com/spf13/cobra"
)

var (
	substKey     string
	substIn      string
	substShowKey bool
)

var commandEncrypt = &cobra.Command{
	Use:   "encrypt [TEXT...]",
	Short: "Encrypt with a substitution cipher, random unless --key is given",
	RunE: func(cmd *cobra.Command, args []string) error {
		return substitute(args, false)
	},
}

var commandDecrypt = &cobra.Command{
	Use:   "decrypt [TEXT...]",
	Short: "Decrypt a substitution cipher with a known encryption key",
	RunE: func(cmd *cobra.Command, args []string) error {
		if substKey == "" {
			return E.New("decrypt needs --key")
		}
		return substitute(args, true)
	},
}

func init() {
	for _, command := range []*cobra.Command{commandEncrypt, commandDecrypt} {
		command.Flags().StringVar(&substKey, "key", "", "26 letter key, or mappings like ABC=XYZ, giving the image of each plain letter")
		command.Flags().StringVarP(&substIn, "in", "i", "", "read text from file")
		command.Flags().BoolVarP(&substShowKey, "show-key", "k", false, "print the key used")
		mainCommand.AddCommand(command)
	}
}

func substitute(args []string, decrypt bool) error {
	var key cipher.Key
	if substKey != "" {
		var err error
		if key, err = cipher.ParseKey(substKey); err != nil {
			return err
		}
	} else {
		key = cipher.RandomKey(newRand())
	}

	text, err := readText(args, substIn)
	if err != nil {
		return err
	}

	if substShowKey {
		fmt.Fprintln(os.Stdout, au.Cyan("plain "), cipher.Alphabet)
		fmt.Fprintln(os.Stdout, au.Cyan("cipher"), key)
	}
	if decrypt {
		key = key.Inverse()
	}
	fmt.Fprintln(os.Stdout, key.Apply(text))
	return nil
}
