package ladder

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// FromFile builds an Index from a plain-text vocabulary file, one word per
// line. Lines are whitespace-trimmed and blank lines are skipped; the
// resulting list passes through New, so malformed words surface the usual
// wordset construction errors.
func FromFile(path string) (*Index, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ladder: open vocabulary: %w", err)
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		words = append(words, line)
	}
	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("ladder: read vocabulary: %w", err)
	}

	return New(words)
}
