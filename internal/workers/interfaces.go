// Package workers runs independent transfer tasks with bounded concurrency.
// Each task transfers one item; chunks within a task stay sequential and
// tasks share no state.
package workers

import "context"

// Task is one unit of work run by a [TransferPool].
//
// Example implementation:
//
//	type upload struct{ path string }
//
//	func (u *upload) Name() string { return u.path }
//	func (u *upload) Run(ctx context.Context) error {
//	    // encrypt and send u.path
//	}
type Task interface {
	Name() string
	Run(ctx context.Context) error
}

// TaskFunc adapts a named function to [Task].
type TaskFunc struct {
	Label string
	Fn    func(ctx context.Context) error
}

func (t TaskFunc) Name() string {
	return t.Label
}

func (t TaskFunc) Run(ctx context.Context) error {
	return t.Fn(ctx)
}
