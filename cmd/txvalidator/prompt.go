package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

// promptPrivateKey reads a secret from the terminal without echoing it.
func promptPrivateKey(prompt string) (string, error) {
	stdin := int(os.Stdin.Fd())
	if !term.IsTerminal(stdin) {
		return "", errors.New("--private-key is required when stdin is not a terminal")
	}

	initialTermState, err := term.GetState(stdin)
	if err != nil {
		return "", errors.WithStack(err)
	}

	// Restore the terminal if interrupted while echo is off.
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-interrupt:
			_ = term.Restore(stdin, initialTermState)
			os.Exit(1)
		case <-done:
		}
	}()
	defer signal.Stop(interrupt)

	fmt.Print(prompt)
	secret, err := term.ReadPassword(stdin)
	fmt.Println()
	if err != nil {
		return "", errors.WithStack(err)
	}
	return string(secret), nil
}
