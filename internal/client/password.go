package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/MKhiriev/go-crypter/models"
)

// PasswordEnv is read before falling back to the interactive prompt.
const PasswordEnv = "CRYPTER_PASSWORD"

// TerminalPassword reads the password from PasswordEnv or, when it is unset,
// from the terminal without echo.
type TerminalPassword struct {
	prompt io.Writer
}

func NewTerminalPassword(prompt io.Writer) *TerminalPassword {
	return &TerminalPassword{prompt: prompt}
}

func (p *TerminalPassword) Password(ctx context.Context) (string, error) {
	if v, ok := os.LookupEnv(PasswordEnv); ok {
		return v, nil
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("%w: no terminal to read the password from, set %s", models.ErrInvalidInput, PasswordEnv)
	}

	fmt.Fprint(p.prompt, "Secret key: ")
	pw, err := term.ReadPassword(fd)
	fmt.Fprintln(p.prompt)
	if err != nil {
		return "", fmt.Errorf("%w: read password: %w", models.ErrIO, err)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	return strings.TrimRight(string(pw), "\r\n"), nil
}

// StaticPassword always returns the same password.
type StaticPassword string

func (p StaticPassword) Password(context.Context) (string, error) {
	return string(p), nil
}
