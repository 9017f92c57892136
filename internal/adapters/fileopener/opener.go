package fileopener

import (
	"io"
	"os"

	"github.com/AntonioJCosta/myshell/internal/core/ports"
)

const targetPerm = 0644

// OSFileOpener opens redirection targets on the real file system. The files
// it returns are *os.File, so a child process inherits them directly.
type OSFileOpener struct{}

// NewOSFileOpener creates a new OSFileOpener.
func NewOSFileOpener() ports.FileOpener {
	return &OSFileOpener{}
}

func (o *OSFileOpener) OpenRead(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

func (o *OSFileOpener) OpenTruncate(name string) (io.WriteCloser, error) {
	return os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, targetPerm)
}

func (o *OSFileOpener) OpenAppend(name string) (io.WriteCloser, error) {
	return os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, targetPerm)
}
