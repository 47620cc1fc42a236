package menu

import (
	"context"
	"strconv"
	"strings"
	"time"
)

// promptLine prints label and reads one line with surrounding whitespace removed.
func (s *Session) promptLine(label string) (string, error) {
	line, err := s.promptRaw(label)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptRaw reads one line as typed. Only the line terminator is dropped.
func (s *Session) promptRaw(label string) (string, error) {
	s.printf("%s", label)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", errEndOfInput
	}
	return strings.TrimSuffix(s.in.Text(), "\r"), nil
}

// promptInt repeats the prompt until the answer parses as an integer.
func (s *Session) promptInt(label string) (int, error) {
	for {
		line, err := s.promptLine(label)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err == nil {
			return n, nil
		}
		s.println("Please enter a whole number.")
	}
}

func (s *Session) promptPassword(label string) (string, error) {
	// Passwords are compared exactly, spaces included
	if s.readPassword == nil {
		return s.promptRaw(label)
	}

	s.printf("%s", label)
	password, err := s.readPassword()
	s.println("")
	if err != nil {
		return "", err
	}
	return password, nil
}

// loading shows a short progress animation. A zero delay skips it.
func (s *Session) loading(ctx context.Context, text string) {
	if s.loadingDelay <= 0 {
		return
	}

	step := s.loadingDelay / 3
	for i := 0; i < 3; i++ {
		s.printf("%s%s\r", text, strings.Repeat(".", i+1))
		select {
		case <-ctx.Done():
			return
		case <-time.After(step):
		}
	}
	s.printf("%s\r", strings.Repeat(" ", len(text)+3))
}
