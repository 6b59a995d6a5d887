package main

import (
	"io"
	"os"
	"strings"
)

// readText returns the text to work on: the contents of fn when given,
// otherwise the arguments joined by spaces, otherwise all of stdin.
func readText(args []string, fn string) (string, error) {
	if fn != "" {
		b, err := os.ReadFile(fn)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(b), "\r\n"), nil
}
