package trie

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// InsertFrom inserts one word per line read from r. Blank lines and lines
// starting with '#' are skipped. It returns the number of words that were
// not already present, counted up to the first error.
func (t *Trie) InsertFrom(r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	before, line := t.size, 0
	for scanner.Scan() {
		line++
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		if err := t.Insert(word); err != nil {
			return t.size - before, fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return t.size - before, fmt.Errorf("failed to read words: %w", err)
	}
	return t.size - before, nil
}
