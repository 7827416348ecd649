package hasher

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestContentHash_Stable(t *testing.T) {
	a := ContentHash([]byte("<svg/>"))
	b := ContentHash([]byte("<svg/>"))
	if a != b {
		t.Fatalf("hash not stable: %s vs %s", a, b)
	}
	if len(a) != HexLen {
		t.Errorf("len: got %d, want %d", len(a), HexLen)
	}
	if a == ContentHash([]byte("<svg />")) {
		t.Error("different inputs hashed equal")
	}
}

func TestContentHash_EmptyInput(t *testing.T) {
	// xxHash64 of the empty input with seed 0.
	if got := ContentHash(nil); got != "ef46db3751d8e999" {
		t.Errorf("got %s", got)
	}
}

func TestContentHashReader_MatchesContentHash(t *testing.T) {
	data := strings.Repeat("icon", 1000)
	got, err := ContentHashReader(strings.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if want := ContentHash([]byte(data)); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestFileHash(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icon.svg")
	if err := os.WriteFile(path, []byte("<svg/>"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := FileHash(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := ContentHash([]byte("<svg/>")); got != want {
		t.Errorf("got %s, want %s", got, want)
	}

	if _, err := FileHash(filepath.Join(t.TempDir(), "missing.svg")); err == nil {
		t.Error("expected error for missing file")
	}
}
