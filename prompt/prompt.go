// Package prompt asks the user for cipher settings on a terminal
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"mvcipher/crypto"
)

// ErrNoInput is returned when the input ends before an answer is given.
var ErrNoInput = errors.New("no more input")

const (
	keywordQuestion = "Please input a word to use as key (letters only)"
	keywordRetry    = "ERROR: Key must be all letters and at least 3 characters long"
	modeQuestion    = "Encrypt or decrypt? (1, 2)"
)

type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	errOut *color.Color
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:     bufio.NewReader(in),
		out:    out,
		errOut: color.New(color.FgRed),
	}
}

// String prints msg and returns the next line without its line terminator.
func (p *Prompter) String(msg string) (string, error) {
	fmt.Fprintf(p.out, "%s -> ", msg)

	line, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read answer: %w", err)
		}
		if line == "" {
			return "", ErrNoInput
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Int asks until the answer parses as an integer.
func (p *Prompter) Int(msg string) (int, error) {
	for {
		answer, err := p.String(msg)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(answer))
		if err == nil {
			return n, nil
		}
		p.errOut.Fprintf(p.out, "%q is not a number\n", strings.TrimSpace(answer))
	}
}

// Keyword asks until a valid keyword is entered.
func (p *Prompter) Keyword() (crypto.Keyword, error) {
	msg := keywordQuestion
	for {
		answer, err := p.String(msg)
		if err != nil {
			return crypto.Keyword{}, err
		}
		key, err := crypto.NewKeyword(answer)
		if err == nil {
			return key, nil
		}
		msg = p.errOut.Sprint(keywordRetry)
	}
}

// Mode asks until 1 (encrypt) or 2 (decrypt) is entered.
func (p *Prompter) Mode() (crypto.Mode, error) {
	for {
		choice, err := p.Int(modeQuestion)
		if err != nil {
			return 0, err
		}
		mode, err := crypto.ModeFromMenu(choice)
		if err == nil {
			return mode, nil
		}
	}
}

// Files asks for the input and output file names for mode.
func (p *Prompter) Files(mode crypto.Mode) (string, string, error) {
	in, err := p.nonEmpty(fmt.Sprintf("Name of file to %s", mode))
	if err != nil {
		return "", "", err
	}
	out, err := p.nonEmpty("Name of output file")
	if err != nil {
		return "", "", err
	}
	return in, out, nil
}

func (p *Prompter) nonEmpty(msg string) (string, error) {
	for {
		answer, err := p.String(msg)
		if err != nil {
			return "", err
		}
		if answer = strings.TrimSpace(answer); answer != "" {
			return answer, nil
		}
	}
}
