package fileopener

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestOSFileOpener(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")
	opener := NewOSFileOpener()

	write := func(open func(string) (io.WriteCloser, error), s string) {
		t.Helper()
		w, err := open(path)
		if err != nil {
			t.Fatalf("open %s: %v", path, err)
		}
		if _, err := io.WriteString(w, s); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
		if err := w.Close(); err != nil {
			t.Fatalf("close %s: %v", path, err)
		}
	}

	write(opener.OpenTruncate, "first\n")
	write(opener.OpenAppend, "second\n")

	r, err := opener.OpenRead(path)
	if err != nil {
		t.Fatalf("OpenRead() unexpected error = %v", err)
	}
	b, _ := io.ReadAll(r)
	r.Close()
	if got := string(b); got != "first\nsecond\n" {
		t.Errorf("after truncate+append content = %q, want %q", got, "first\nsecond\n")
	}

	write(opener.OpenTruncate, "third\n")
	b, _ = os.ReadFile(path)
	if got := string(b); got != "third\n" {
		t.Errorf("after truncate content = %q, want %q", got, "third\n")
	}

	if _, err := opener.OpenRead(filepath.Join(dir, "missing.txt")); !os.IsNotExist(err) {
		t.Errorf("OpenRead(missing) error = %v, want not-exist", err)
	}
	if _, err := opener.OpenTruncate(filepath.Join(dir, "no", "such", "dir.txt")); err == nil {
		t.Error("OpenTruncate() into a missing directory expected an error, got nil")
	}
}

func TestOSFileOpener_ReturnsOSFiles(t *testing.T) {
	// A child process only inherits a redirect directly when it is an *os.File.
	w, err := NewOSFileOpener().OpenTruncate(filepath.Join(t.TempDir(), "f"))
	if err != nil {
		t.Fatalf("OpenTruncate() unexpected error = %v", err)
	}
	defer w.Close()
	if _, ok := w.(*os.File); !ok {
		t.Errorf("OpenTruncate() returned %T, want *os.File", w)
	}
}
