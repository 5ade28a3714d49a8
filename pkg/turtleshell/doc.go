// Package turtleshell exposes shell-like operations on the local
// filesystem: ls, cat, cp, mv, touch and mkdir.
//
// Every operation is a thin pass-through to the operating system. Failures
// are returned as *Error values whose message reads
// "<op>: <cause>: <os message>"; match them by kind with errors.Is against
// the ErrX sentinels. Operations over several paths run concurrently and
// report the first failure. Nothing is rolled back: a copy that fails on
// the third of five files leaves the first two in place.
//
// Any operation can be run in the background with Start:
//
//	sh := turtleshell.Default()
//	task := turtleshell.Start(func() (string, error) {
//		return sh.Read(ctx, "README.md")
//	})
//	text, err := task.Wait(ctx)
package turtleshell
