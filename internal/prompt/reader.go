package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/chzyer/readline"
)

// ScannerReader reads lines from a plain io.Reader.
type ScannerReader struct {
	scanner *bufio.Scanner
}

// NewScannerReader wraps r.
func NewScannerReader(r io.Reader) *ScannerReader {
	return &ScannerReader{scanner: bufio.NewScanner(r)}
}

// Readline returns the next line, or io.EOF once r is exhausted.
func (s *ScannerReader) Readline() (string, error) {
	if s.scanner.Scan() {
		return s.scanner.Text(), nil
	}
	if err := s.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// TerminalReader reads lines from an interactive terminal with line editing.
type TerminalReader struct {
	rl *readline.Instance
}

// NewTerminalReader starts a readline session on the process terminal.
func NewTerminalReader(prompt string) (*TerminalReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize terminal input: %w", err)
	}
	return &TerminalReader{rl: rl}, nil
}

// Readline returns the next line. Ctrl-C yields ErrInterrupted.
func (t *TerminalReader) Readline() (string, error) {
	line, err := t.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", ErrInterrupted
	}
	return line, err
}

// Close restores the terminal.
func (t *TerminalReader) Close() error {
	return t.rl.Close()
}
