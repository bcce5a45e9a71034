package resource

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

var (
	ErrNotFound   = errors.New("resource not found")
	ErrUnreadable = errors.New("resource unreadable")
)

// A Resource is the whole content of one file plus the metadata
// needed for the response headers. Files are read into memory in one
// go, so the largest servable file is bounded by available memory.
type Resource struct {
	Data    []byte
	Size    int64
	ModTime time.Time
}

// A Resolver opens files below a single directory. Names that would
// escape it through "..", absolute paths or symlinks are not found.
// A Resolver is safe for concurrent use.
type Resolver struct {
	root *os.Root
}

func Open(dir string) (*Resolver, error) {
	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, err
	}
	return &Resolver{root: root}, nil
}

func (rs *Resolver) Dir() string {
	return rs.root.Name()
}

func (rs *Resolver) Close() error {
	return rs.root.Close()
}

// Resolve reads the named file. Failing to open it, or naming a
// directory, yields ErrNotFound; failing after the open yields
// ErrUnreadable.
func (rs *Resolver) Resolve(name string) (*Resource, error) {
	file, err := rs.root.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrNotFound, name)
	}

	data := make([]byte, info.Size())
	if _, err := io.ReadFull(file, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	return &Resource{
		Data:    data,
		Size:    int64(len(data)),
		ModTime: info.ModTime(),
	}, nil
}
