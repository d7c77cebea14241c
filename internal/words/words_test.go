package words

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeList(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write list: %v", err)
	}
	return path
}

func TestLoadParsesFile(t *testing.T) {
	path := writeList(t, "crane\n  hello \n\n# a comment\nWorld\nhi\n")

	l, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got, want := l.Len(), 4; got != want {
		t.Fatalf("Len = %d, want %d", got, want)
	}
	want := []string{"crane", "hello", "World", "hi"}
	for i, w := range want {
		if got := l.At(i); got != w {
			t.Errorf("At(%d) = %q, want %q", i, got, w)
		}
	}
}

func TestLoadKeepsCaseAndLength(t *testing.T) {
	path := writeList(t, "World\nhi\n")
	l, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !l.Contains("World") {
		t.Errorf("Contains(World) = false, want true")
	}
	if l.Contains("world") {
		t.Errorf("Contains(world) = true, want false (no case folding)")
	}
	if !l.Contains("hi") {
		t.Errorf("Contains(hi) = false, want true (short words stay in)")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatal("Load of missing file succeeded, want error")
	}
}

func TestLoadEmptyList(t *testing.T) {
	path := writeList(t, "# only comments\n\n   \n")
	_, err := Load(path)
	if !errors.Is(err, ErrEmptyList) {
		t.Fatalf("Load = %v, want ErrEmptyList", err)
	}
}

func TestDefaultListLoads(t *testing.T) {
	l, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if l.Len() < 100 {
		t.Fatalf("Len = %d, want a playable list", l.Len())
	}
	if !l.Contains("hello") {
		t.Error("default list is missing hello")
	}
}

func TestNewListContains(t *testing.T) {
	l := NewList([]string{"alpha", "beta"})
	if !l.Contains("alpha") || !l.Contains("beta") {
		t.Error("Contains misses listed words")
	}
	if l.Contains("gamma") {
		t.Error("Contains(gamma) = true, want false")
	}
}
