//go:build windows

package turtleshell

import (
	"errors"

	"golang.org/x/sys/windows"
)

// isCrossDevice reports whether err is the error MoveFileEx returns when
// source and destination are on different volumes.
func isCrossDevice(err error) bool {
	return errors.Is(err, windows.ERROR_NOT_SAME_DEVICE)
}
