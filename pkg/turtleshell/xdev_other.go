//go:build !unix && !windows

package turtleshell

func isCrossDevice(err error) bool { return false }
