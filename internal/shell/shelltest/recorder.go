// Package shelltest provides a recording shell.Runner for tests.
package shelltest

import (
	"context"

	"github.com/nomoyu/create-prev-app/internal/shell"
)

// Recorder remembers every Cmd it is asked to run. Fn, when set, decides the
// outcome of each call and may touch the filesystem to mimic the real tool.
type Recorder struct {
	Calls []shell.Cmd
	Fn    func(c shell.Cmd) error
}

func (r *Recorder) Run(_ context.Context, c shell.Cmd) error {
	r.Calls = append(r.Calls, c)
	if r.Fn != nil {
		return r.Fn(c)
	}
	return nil
}

// Names returns the program name of every recorded call, in order.
func (r *Recorder) Names() []string {
	names := make([]string, 0, len(r.Calls))
	for _, c := range r.Calls {
		names = append(names, c.Name)
	}
	return names
}

// FailOn returns an Fn that fails every call to the named program.
func FailOn(name string, err error) func(shell.Cmd) error {
	return func(c shell.Cmd) error {
		if c.Name == name {
			return err
		}
		return nil
	}
}
