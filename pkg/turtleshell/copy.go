package turtleshell

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
	"time"
)

// Copy copies files. The last argument is the destination.
//
// With two arguments the source file is copied to the destination path,
// creating or truncating it. With more, every source is copied into the
// destination directory under its base name, concurrently. Sources are
// never removed.
func (s *Shell) Copy(ctx context.Context, args ...string) (err error) {
	if len(args) < 2 {
		return argumentError("cp", KindCopyArgument)
	}

	start := time.Now()
	defer func() { s.trace("cp", start, err, args...) }()

	if err := ctx.Err(); err != nil {
		return cancelled("cp", KindFileCopy, err)
	}

	sources, dest := args[:len(args)-1], args[len(args)-1]
	if len(sources) == 1 {
		return copyFile(sources[0], dest)
	}

	if err := requireDirectory(dest); err != nil {
		return newError("cp", KindFileCopy, "failed to copy file", dest, err)
	}

	return s.fanOut(ctx, "cp", KindFileCopy, len(sources), func(i int) error {
		return copyFile(sources[i], filepath.Join(dest, filepath.Base(sources[i])))
	})
}

// copyFile copies the content and permission bits of src to dst, also when
// dst already exists.
func copyFile(src, dst string) error {
	fail := func(err error) error {
		return newError("cp", KindFileCopy, "failed to copy file", src, err)
	}

	in, err := os.Open(src)
	if err != nil {
		return fail(err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fail(err)
	}
	if info.IsDir() {
		return fail(&fs.PathError{Op: "copy", Path: src, Err: syscall.EISDIR})
	}

	// Truncating dst would destroy src when both name the same file.
	if dstInfo, err := os.Stat(dst); err == nil && os.SameFile(info, dstInfo) {
		return fail(fmt.Errorf("%s and %s are the same file", src, dst))
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fail(err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fail(err)
	}

	// Explicitly check close error to prevent silent data loss
	if err := out.Close(); err != nil {
		return fail(err)
	}

	// O_TRUNC keeps the mode of an existing dst.
	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return fail(err)
	}
	return nil
}

// requireDirectory returns an error unless path names an existing directory.
func requireDirectory(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return &fs.PathError{Op: "stat", Path: path, Err: syscall.ENOTDIR}
	}
	return nil
}
