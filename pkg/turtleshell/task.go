package turtleshell

import "context"

// Task is the deferred result of an operation started with Start.
type Task[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// Start runs fn on its own goroutine and returns a Task that completes
// with fn's result.
//
//	sh := turtleshell.Default()
//	task := turtleshell.Start(func() ([]string, error) {
//		return sh.List(ctx, "")
//	})
//	names, err := task.Wait(ctx)
func Start[T any](fn func() (T, error)) *Task[T] {
	t := &Task[T]{done: make(chan struct{})}
	go func() {
		defer close(t.done)
		t.value, t.err = fn()
	}()
	return t
}

// Done returns a channel that is closed once the operation has completed.
func (t *Task[T]) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the operation completes or ctx is done. When ctx ends
// first the operation keeps running and ctx's error is returned.
func (t *Task[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-t.done:
		return t.value, t.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
