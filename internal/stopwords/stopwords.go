// Package stopwords loads the stop-word list used to clean vocabulary queries.
package stopwords

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrUnreadable matches any UnreadableError via errors.Is.
var ErrUnreadable = errors.New("unreadable stop-word list")

// UnreadableError reports that the stop-word list could not be loaded.
// Vocabulary queries fall back to no filtering when they see it.
type UnreadableError struct {
	Path string
	Err  error
}

func (e *UnreadableError) Error() string {
	return fmt.Sprintf("stop-word list %q: %v", e.Path, e.Err)
}

func (e *UnreadableError) Unwrap() error { return e.Err }

func (e *UnreadableError) Is(target error) bool {
	return target == ErrUnreadable
}

// Set is a lower-cased stop-word set. The zero value filters nothing.
type Set map[string]struct{}

// Contains reports whether word (already lower-cased) is a stop word.
func (s Set) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Load reads one stop word per line from path.
func Load(path string) (Set, error) {
	if path == "" {
		return nil, &UnreadableError{Path: path, Err: errors.New("no path configured")}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &UnreadableError{Path: path, Err: err}
	}
	defer f.Close()

	set, err := Read(f)
	if err != nil {
		return nil, &UnreadableError{Path: path, Err: err}
	}
	return set, nil
}

// Read parses a stop-word list. Blank lines are skipped and entries are
// lower-cased so lookups match lower-cased tokens.
func Read(r io.Reader) (Set, error) {
	lower := cases.Lower(language.Und)
	set := make(Set)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		set[lower.String(word)] = struct{}{}
	}
	return set, scanner.Err()
}
