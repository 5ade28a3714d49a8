package turtleshell

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// Move moves or renames files and directories. The last argument is the
// destination.
//
// With two arguments the source is renamed to the destination path. If the
// destination exists and only one of the two is a directory the move is
// rejected with a TypeMismatch error and neither path is touched. With more
// arguments every source is moved into the destination directory under its
// base name, concurrently.
//
// Moves across devices are not supported and fail without falling back to
// copy and delete.
func (s *Shell) Move(ctx context.Context, args ...string) (err error) {
	if len(args) < 2 {
		return argumentError("mv", KindMoveArgument)
	}

	start := time.Now()
	defer func() { s.trace("mv", start, err, args...) }()

	if err := ctx.Err(); err != nil {
		return cancelled("mv", KindFileMove, err)
	}

	sources, dest := args[:len(args)-1], args[len(args)-1]
	if len(sources) == 1 {
		return moveFile(sources[0], dest)
	}

	if err := requireDirectory(dest); err != nil {
		return newError("mv", KindFileMove, "failed to move file", dest, err)
	}

	return s.fanOut(ctx, "mv", KindFileMove, len(sources), func(i int) error {
		return moveFile(sources[i], filepath.Join(dest, filepath.Base(sources[i])))
	})
}

func moveFile(src, dst string) error {
	srcInfo, err := os.Lstat(src)
	if err != nil {
		return newError("mv", KindFileMove, "failed to move file", src, err)
	}

	dstInfo, err := os.Lstat(dst)
	switch {
	case err == nil:
		if srcInfo.IsDir() && !dstInfo.IsDir() {
			return typeMismatch(src, dst, "cannot overwrite non-directory with directory")
		}
		if !srcInfo.IsDir() && dstInfo.IsDir() {
			return typeMismatch(src, dst, "cannot overwrite directory with non-directory")
		}
	case !errors.Is(err, fs.ErrNotExist):
		return newError("mv", KindFileMove, "failed to move file", dst, err)
	}

	if err := os.Rename(src, dst); err != nil {
		if isCrossDevice(err) {
			return newError("mv", KindFileMove, "cross-device move not supported", src, err)
		}
		return newError("mv", KindFileMove, "failed to move file", src, err)
	}
	return nil
}

func typeMismatch(src, dst, cause string) *Error {
	return &Error{
		Op:     "mv",
		Kind:   KindTypeMismatch,
		Cause:  cause,
		Path:   src,
		Detail: dst,
	}
}
