package utils

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReadLine reads one line from r without its trailing newline. A final line without a
// newline is returned as is.
func ReadLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// Confirm asks question on w and reports whether the answer read from r is yes.
func Confirm(r io.Reader, w io.Writer, question string) (bool, error) {
	if _, err := fmt.Fprintf(w, "%s [y/N]: ", question); err != nil {
		return false, fmt.Errorf("Confirm: %w", err)
	}

	answer, err := ReadLine(r)
	if err != nil {
		return false, fmt.Errorf("Confirm: failed to read answer: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
