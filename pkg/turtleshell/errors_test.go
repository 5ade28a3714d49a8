package turtleshell

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	osErr := &fs.PathError{Op: "open", Path: "x.txt", Err: fs.ErrNotExist}

	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "wraps os error",
			err:  newError("cat", KindFileRead, "failed to read file", "x.txt", osErr),
			want: "cat: failed to read file: open x.txt: file does not exist",
		},
		{
			name: "argument error",
			err:  argumentError("mv", KindMoveArgument),
			want: "mv: not enough arguments: usage: mv source ... dest",
		},
		{
			name: "no detail",
			err:  &Error{Op: "ls", Kind: KindDirectoryRead, Cause: "failed to read directory contents"},
			want: "ls: failed to read directory contents",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestErrorIsMatchesKind(t *testing.T) {
	err := newError("cp", KindFileCopy, "failed to copy file", "a", fs.ErrPermission)

	assert.ErrorIs(t, err, ErrFileCopy)
	assert.ErrorIs(t, err, fs.ErrPermission)
	assert.False(t, errors.Is(err, ErrFileMove))
	assert.False(t, errors.Is(err, ErrCopyArgument))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "TypeMismatchError", KindTypeMismatch.String())
	assert.Equal(t, "DirectoryCreateError", KindDirectoryCreate.String())
	assert.Equal(t, "UnknownError", Kind(0).String())
}
