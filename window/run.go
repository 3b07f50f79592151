package window

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// Run drives a Watcher from a stream of navigation URLs, one per line, as
// emitted by the host window process. End of stream means the window was
// closed. Exactly one Result is returned per run.
func Run(ctx context.Context, w *Watcher, events io.Reader) Result {
	scanner := bufio.NewScanner(events)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return Result{Err: err}
		}
		if res, done := w.Navigate(scanner.Text()); done {
			return *res
		}
	}
	if err := scanner.Err(); err != nil {
		return Result{Err: fmt.Errorf("read navigation events: %w", err)}
	}
	if res := w.Closed(); res != nil {
		return *res
	}
	return Result{Err: UserTerminatedErr}
}
