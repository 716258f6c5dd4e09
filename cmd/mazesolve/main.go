// Command mazesolve generates mazes, solves them with DFS and A*, and serves
// the same over HTTP.
//
//	mazesolve solve --seed 7 --algorithm all --png maze.png
//	mazesolve solve --maze board.txt --algorithm astar --animate
//	mazesolve serve --addr :8080
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
