package testutil

import (
	"bytes"
	"io"
	"os"

	"github.com/AntonioJCosta/myshell/internal/core/ports"
)

// MemFile is an in-memory redirect target that remembers whether it was closed.
type MemFile struct {
	bytes.Buffer
	Closed bool
}

// Close marks the file closed.
func (f *MemFile) Close() error {
	f.Closed = true
	return nil
}

// MockFileOpener is an in-memory ports.FileOpener. Files maps names to
// contents; reading a name absent from Files fails with os.ErrNotExist.
// Writes are kept in Opened by name. Setting ReadOnly makes every write open fail.
type MockFileOpener struct {
	Files    map[string]string
	Opened   map[string]*MemFile
	ReadOnly bool
}

// NewMockFileOpener creates a MockFileOpener with the given existing files.
func NewMockFileOpener(files map[string]string) *MockFileOpener {
	if files == nil {
		files = map[string]string{}
	}
	return &MockFileOpener{Files: files, Opened: map[string]*MemFile{}}
}

func (m *MockFileOpener) OpenRead(name string) (io.ReadCloser, error) {
	content, ok := m.Files[name]
	if !ok {
		return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrNotExist}
	}
	f := &MemFile{}
	f.WriteString(content)
	m.Opened[name] = f
	return f, nil
}

func (m *MockFileOpener) OpenTruncate(name string) (io.WriteCloser, error) {
	if m.ReadOnly {
		return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
	}
	f := &MemFile{}
	m.Opened[name] = f
	m.Files[name] = ""
	return &syncingFile{MemFile: f, name: name, files: m.Files}, nil
}

func (m *MockFileOpener) OpenAppend(name string) (io.WriteCloser, error) {
	if m.ReadOnly {
		return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
	}
	f := &MemFile{}
	f.WriteString(m.Files[name])
	m.Opened[name] = f
	return &syncingFile{MemFile: f, name: name, files: m.Files}, nil
}

// syncingFile writes through to the opener's Files map so later opens see
// earlier writes.
type syncingFile struct {
	*MemFile
	name  string
	files map[string]string
}

func (f *syncingFile) Write(p []byte) (int, error) {
	n, err := f.MemFile.Write(p)
	f.files[f.name] = f.MemFile.String()
	return n, err
}

var _ ports.FileOpener = (*MockFileOpener)(nil)
