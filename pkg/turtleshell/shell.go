package turtleshell

import (
	"context"
	"os"
	"time"

	"go.uber.org/zap"
)

// Default option values.
const (
	DefaultConcurrency = 16
	DefaultFileMode    = os.FileMode(0644)
	DefaultDirMode     = os.FileMode(0755)
)

// Facade defines the shell-like filesystem operations.
// This allows callers to substitute the filesystem in tests.
type Facade interface {
	List(ctx context.Context, dir string) ([]string, error)
	ReadAll(ctx context.Context, paths ...string) ([]string, error)
	Copy(ctx context.Context, args ...string) error
	Move(ctx context.Context, args ...string) error
	CreateFile(ctx context.Context, path string) error
	CreateDirectory(ctx context.Context, path string) error
}

// Options configures a Shell. Zero values select the defaults.
type Options struct {
	// Concurrency bounds the number of files processed at once by
	// multi-path operations.
	Concurrency int
	// FileMode is the permission used by CreateFile for new files.
	FileMode os.FileMode
	// DirMode is the permission used by CreateDirectory.
	DirMode os.FileMode
	// Parents makes CreateDirectory create missing parents and accept
	// an existing directory, like mkdir -p.
	Parents bool
	Logger  *zap.Logger
}

// Shell implements Facade on top of the local filesystem.
// It holds no state between calls and is safe for concurrent use.
type Shell struct {
	concurrency int
	fileMode    os.FileMode
	dirMode     os.FileMode
	parents     bool
	log         *zap.Logger
}

// New creates a Shell with the given options.
func New(opts Options) *Shell {
	s := &Shell{
		concurrency: opts.Concurrency,
		fileMode:    opts.FileMode,
		dirMode:     opts.DirMode,
		parents:     opts.Parents,
		log:         opts.Logger,
	}
	if s.concurrency <= 0 {
		s.concurrency = DefaultConcurrency
	}
	if s.fileMode == 0 {
		s.fileMode = DefaultFileMode
	}
	if s.dirMode == 0 {
		s.dirMode = DefaultDirMode
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	return s
}

// Default returns a Shell with default options.
func Default() *Shell {
	return New(Options{})
}

// trace logs the outcome of one operation.
func (s *Shell) trace(op string, start time.Time, err error, paths ...string) {
	fields := []zap.Field{
		zap.String("op", op),
		zap.Strings("paths", paths),
		zap.Duration("elapsed", time.Since(start)),
	}
	if err != nil {
		s.log.Debug("operation failed", append(fields, zap.Error(err))...)
		return
	}
	s.log.Debug("operation completed", fields...)
}

var _ Facade = (*Shell)(nil)
