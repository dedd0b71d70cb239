package piewheel

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoEntries is returned by NewMenu when the label list is empty. Callers
// should treat it as a configuration error and exit before opening a window.
var ErrNoEntries = errors.New("piewheel: menu has no entries")

// Entry is one selectable item: a single-line display string.
type Entry struct {
	Text string
}

// Menu is an ordered, immutable sequence of entries. One wedge per entry.
type Menu struct {
	entries []Entry
}

// NewMenu builds a menu from the given labels. Labels must be non-empty;
// an empty list yields ErrNoEntries.
func NewMenu(labels []string) (*Menu, error) {
	if len(labels) == 0 {
		return nil, ErrNoEntries
	}
	entries := make([]Entry, 0, len(labels))
	for i, label := range labels {
		if label == "" {
			return nil, fmt.Errorf("piewheel: entry %d is empty", i)
		}
		entries = append(entries, Entry{Text: label})
	}
	return &Menu{entries: entries}, nil
}

// Len returns the number of entries, which is also the wedge count.
func (m *Menu) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Label returns the display string of entry i.
func (m *Menu) Label(i int) string {
	return m.entries[i].Text
}

// ReadEntries reads one label per line from r. Trailing CR/LF is trimmed and
// blank lines are skipped, so piping `printf "One\nTwo\n\nThree\n"` yields
// three labels. Labels are UTF-8 and passed through untouched.
func ReadEntries(r io.Reader) ([]string, error) {
	var labels []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}
		labels = append(labels, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("piewheel: error reading entries: %w", err)
	}
	return labels, nil
}
