package turtleshell

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"time"
)

// CreateFile creates an empty file at path, or sets the access and
// modification times of an existing node to now without opening it.
func (s *Shell) CreateFile(ctx context.Context, path string) (err error) {
	start := time.Now()
	defer func() { s.trace("touch", start, err, path) }()

	if err := ctx.Err(); err != nil {
		return cancelled("touch", KindFileCreate, err)
	}

	// Only a missing path is opened. Opening an existing node could fail on a
	// read-only file or block on a FIFO.
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, s.fileMode)
		if err != nil {
			return newError("touch", KindFileCreate, "failed to create file", path, err)
		}
		if err := f.Close(); err != nil {
			return newError("touch", KindFileCreate, "failed to create file", path, err)
		}
	}

	now := time.Now()
	if err := os.Chtimes(path, now, now); err != nil {
		return newError("touch", KindFileCreate, "failed to update file times", path, err)
	}
	return nil
}

// CreateDirectory creates a single directory. It fails if path exists or
// a parent is missing, unless the Shell was built with Options.Parents.
func (s *Shell) CreateDirectory(ctx context.Context, path string) (err error) {
	start := time.Now()
	defer func() { s.trace("mkdir", start, err, path) }()

	if err := ctx.Err(); err != nil {
		return cancelled("mkdir", KindDirectoryCreate, err)
	}

	if s.parents {
		err = os.MkdirAll(path, s.dirMode)
	} else {
		err = os.Mkdir(path, s.dirMode)
	}
	if err != nil {
		return newError("mkdir", KindDirectoryCreate, "failed to create directory", path, err)
	}
	return nil
}
