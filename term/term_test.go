package term

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsTerminal_RegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if IsTerminal(f) {
		t.Error("Expected regular file not to be a terminal")
	}
}

func TestWidth_FallsBackForNonTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if got := Width(f); got != defaultWidth {
		t.Errorf("Expected fallback width %d, got %d", defaultWidth, got)
	}
}
