package turtleshell

import (
	"context"
	"os"
	"time"
)

// List returns the names of the entries directly under dir, in the order
// the OS enumerates them. An empty dir lists the current working directory,
// resolved at call time.
func (s *Shell) List(ctx context.Context, dir string) (names []string, err error) {
	start := time.Now()
	defer func() { s.trace("ls", start, err, dir) }()

	if err := ctx.Err(); err != nil {
		return nil, cancelled("ls", KindDirectoryRead, err)
	}

	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, newError("ls", KindDirectoryRead, "failed to read directory contents", dir, err)
		}
		dir = wd
	}

	f, err := os.Open(dir)
	if err != nil {
		return nil, newError("ls", KindDirectoryRead, "failed to read directory contents", dir, err)
	}
	defer f.Close()

	names, err = f.Readdirnames(-1)
	if err != nil {
		return nil, newError("ls", KindDirectoryRead, "failed to read directory contents", dir, err)
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}
