package piewheel

import (
	"errors"
	"strings"
	"testing"
)

// --- ReadEntries tests ---

func TestReadEntries(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"simple", "One\nTwo\nThree\n", []string{"One", "Two", "Three"}},
		{"blank lines skipped", "One\n\nTwo\n\n\nThree\n", []string{"One", "Two", "Three"}},
		{"crlf trimmed", "One\r\nTwo\r\n", []string{"One", "Two"}},
		{"no trailing newline", "One\nTwo", []string{"One", "Two"}},
		{"utf-8 passthrough", "écran\n日本語\n", []string{"écran", "日本語"}},
		{"interior spaces kept", "Open File\n Save As \n", []string{"Open File", " Save As "}},
		{"empty input", "", nil},
		{"only blanks", "\n\r\n\n", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadEntries(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("ReadEntries: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ReadEntries = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("entry %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("device gone")
}

func TestReadEntries_ReadError(t *testing.T) {
	if _, err := ReadEntries(failingReader{}); err == nil {
		t.Error("ReadEntries on a failing reader returned nil error")
	}
}

// --- Menu tests ---

func TestNewMenu(t *testing.T) {
	menu, err := NewMenu([]string{"One", "Two", "Three"})
	if err != nil {
		t.Fatalf("NewMenu: %v", err)
	}
	if menu.Len() != 3 {
		t.Errorf("Len() = %d, want 3", menu.Len())
	}
	for i, want := range []string{"One", "Two", "Three"} {
		if got := menu.Label(i); got != want {
			t.Errorf("Label(%d) = %q, want %q", i, got, want)
		}
	}
}

func TestNewMenu_Empty(t *testing.T) {
	if _, err := NewMenu(nil); !errors.Is(err, ErrNoEntries) {
		t.Errorf("NewMenu(nil) error = %v, want ErrNoEntries", err)
	}
	if _, err := NewMenu([]string{}); !errors.Is(err, ErrNoEntries) {
		t.Errorf("NewMenu(empty) error = %v, want ErrNoEntries", err)
	}
}

func TestNewMenu_EmptyLabel(t *testing.T) {
	_, err := NewMenu([]string{"One", "", "Three"})
	if err == nil {
		t.Fatal("NewMenu with an empty label returned nil error")
	}
	if errors.Is(err, ErrNoEntries) {
		t.Error("empty label misreported as ErrNoEntries")
	}
}

func TestMenu_NilLen(t *testing.T) {
	var m *Menu
	if m.Len() != 0 {
		t.Errorf("nil menu Len() = %d, want 0", m.Len())
	}
}
