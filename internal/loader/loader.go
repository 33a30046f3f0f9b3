// Package loader reads models, tools and mappings from plain text files
// holding one entry per line.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pthm/aquality/internal/relation"
)

// DefaultSeparator separates concept and construct on a mapping line
const DefaultSeparator = ":"

// maxLineSize bounds a single input line
const maxLineSize = 1 << 20

// LoadUniqueLines reads the trimmed, non-empty, distinct lines of a file
func LoadUniqueLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lines, err := ReadUniqueLines(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return lines, nil
}

// ReadUniqueLines returns the trimmed, non-empty lines of r.
// Duplicates are dropped, keeping the first occurrence.
func ReadUniqueLines(r io.Reader) ([]string, error) {
	var lines []string
	seen := make(map[string]bool)

	err := eachLine(r, func(line string) {
		if seen[line] {
			return
		}
		seen[line] = true
		lines = append(lines, line)
	})
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// LoadMapping reads a mapping file using sep between concept and construct
func LoadMapping(path, sep string) (*relation.Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := ReadMapping(f, sep)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return m, nil
}

// ReadMapping parses one concept/construct pair per line of r.
// Tokens past the second are ignored. Lines without a separator or with an
// empty concept or construct are skipped.
func ReadMapping(r io.Reader, sep string) (*relation.Mapping, error) {
	if sep == "" {
		sep = DefaultSeparator
	}

	var pairs []relation.Pair
	err := eachLine(r, func(line string) {
		if p, ok := ParsePair(line, sep); ok {
			pairs = append(pairs, p)
		}
	})
	if err != nil {
		return nil, err
	}
	return relation.NewMapping(pairs...), nil
}

// ParsePair splits a single mapping line
func ParsePair(line, sep string) (relation.Pair, bool) {
	tokens := strings.Split(strings.TrimSpace(line), sep)
	if len(tokens) < 2 {
		return relation.Pair{}, false
	}

	concept := strings.TrimSpace(tokens[0])
	construct := strings.TrimSpace(tokens[1])
	if concept == "" || construct == "" {
		return relation.Pair{}, false
	}
	return relation.Pair{Concept: concept, Construct: construct}, true
}

// eachLine calls fn for every trimmed, non-empty line of r
func eachLine(r io.Reader, fn func(line string)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fn(line)
	}
	return scanner.Err()
}
