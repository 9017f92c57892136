package ports

import "io"

// FileOpener opens redirection targets.
type FileOpener interface {
	OpenRead(name string) (io.ReadCloser, error)
	OpenTruncate(name string) (io.WriteCloser, error)
	OpenAppend(name string) (io.WriteCloser, error)
}
