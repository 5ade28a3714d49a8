//go:build unix

package turtleshell

import (
	"errors"

	"golang.org/x/sys/unix"
)

// isCrossDevice reports whether err is the EXDEV returned by rename(2)
// when source and destination live on different filesystems.
func isCrossDevice(err error) bool {
	return errors.Is(err, unix.EXDEV)
}
