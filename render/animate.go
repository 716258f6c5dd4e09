package render

import (
	"context"
	"fmt"

	"github.com/Naveen-Savi08/Maze-Solver/route"
)

// Frame receives the overlay after step marked path[step].
type Frame func(step int, o *Overlay) error

// Animate marks path one cell per step, calling fn after each step.
// Start and Goal steps still produce a frame even though nothing is marked.
// It stops early when ctx is done or fn fails.
func Animate(ctx context.Context, o *Overlay, path route.Path, fn Frame) error {
	if o == nil {
		return ErrOverlayNil
	}
	for step, c := range path {
		if err := ctx.Err(); err != nil {
			return err
		}
		o.MarkCell(c)
		if fn == nil {
			continue
		}
		if err := fn(step, o); err != nil {
			return fmt.Errorf("render: frame %d at %v: %w", step, c, err)
		}
	}

	return nil
}
