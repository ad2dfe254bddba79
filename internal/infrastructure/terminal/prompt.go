// Package terminal collects portal credentials interactively.
package terminal

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"GPAConverter/internal/ports"
)

// Prompter reads the username from stdin and the password without echo.
// Prompts go to stderr, keeping stdout clean for the report.
type Prompter struct{}

var _ ports.CredentialPrompter = Prompter{}

// Prompt asks for both credentials. It refuses to run when stdin is not a
// terminal, so scripted runs fail fast instead of hanging on a read.
func (Prompter) Prompt() (string, string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", "", fmt.Errorf("stdin is not a terminal; set -username and CAGR_PASSWORD (or a .env file)")
	}

	fmt.Fprint(os.Stderr, "Username: ")
	username, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", "", fmt.Errorf("read username: %w", err)
	}

	fmt.Fprint(os.Stderr, "Password: ")
	secret, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", "", fmt.Errorf("read password: %w", err)
	}

	return strings.TrimSpace(username), string(secret), nil
}
