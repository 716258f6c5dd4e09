package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Naveen-Savi08/Maze-Solver/grid"
	"github.com/Naveen-Savi08/Maze-Solver/mazegen"
	"github.com/Naveen-Savi08/Maze-Solver/render"
	"github.com/Naveen-Savi08/Maze-Solver/route"
	"github.com/Naveen-Savi08/Maze-Solver/solver"
)

type solveFlags struct {
	width     int
	height    int
	barriers  int
	seed      int64
	algorithm string
	cellSize  int

	mazeFile        string
	pngFile         string
	dotFile         string
	animate         bool
	delay           time.Duration
	requireSolvable bool
}

func newSolveCmd(a *app) *cobra.Command {
	f := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Generate (or read) a maze and solve it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.solve(cmd, f)
		},
	}

	fl := cmd.Flags()
	fl.IntVar(&f.width, "width", mazegen.DefaultWidth, "maze width")
	fl.IntVar(&f.height, "height", mazegen.DefaultHeight, "maze height")
	fl.IntVar(&f.barriers, "barriers", mazegen.DefaultBarriers, "number of wall cells")
	fl.Int64Var(&f.seed, "seed", 0, "random seed, 0 picks one from the clock")
	fl.StringVar(&f.algorithm, "algorithm", "all", "dfs, astar or all")
	fl.IntVar(&f.cellSize, "cell-size", render.DefaultCellSize, "PNG cell size in pixels")
	fl.StringVar(&f.mazeFile, "maze", "", "read the board from a text file of S . # G cells")
	fl.StringVar(&f.pngFile, "png", "", "write a PNG rendering to this file")
	fl.StringVar(&f.dotFile, "dot", "", "write a Graphviz rendering to this file")
	fl.BoolVar(&f.animate, "animate", false, "print the route one step at a time")
	fl.DurationVar(&f.delay, "delay", time.Second, "pause between animation steps")
	fl.BoolVar(&f.requireSolvable, "require-solvable", false, "regenerate until the goal is reachable")

	return cmd
}

// apply copies the flags the user set over the loaded configuration.
func (f *solveFlags) apply(cmd *cobra.Command, a *app) {
	fl := cmd.Flags()
	if fl.Changed("width") {
		a.cfg.Width = f.width
	}
	if fl.Changed("height") {
		a.cfg.Height = f.height
	}
	if fl.Changed("barriers") {
		a.cfg.Barriers = f.barriers
	}
	if fl.Changed("seed") {
		a.cfg.Seed = f.seed
	}
	if fl.Changed("algorithm") {
		a.cfg.Algorithm = f.algorithm
	}
	if fl.Changed("cell-size") {
		a.cfg.CellSize = f.cellSize
	}
}

func (a *app) solve(cmd *cobra.Command, f *solveFlags) error {
	f.apply(cmd, a)
	if err := a.cfg.Validate(); err != nil {
		return err
	}
	algs, err := a.cfg.Algorithms()
	if err != nil {
		return err
	}

	g, start, goal, err := a.board(f)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, alg := range algs {
		res, err := solver.Run(alg, g, start, goal)
		if err != nil {
			return err
		}
		a.log.WithFields(logrus.Fields{
			"algorithm": string(alg),
			"found":     res.Found,
			"cost":      res.Cost,
			"expanded":  res.Expanded,
		}).Info("maze solved")

		o, err := render.NewOverlay(g)
		if err != nil {
			return err
		}
		if err := report(cmd.Context(), out, o, alg, res, f); err != nil {
			return err
		}
		if err := a.writeFiles(o, alg, res, f, len(algs) > 1); err != nil {
			return err
		}
	}

	return nil
}

// board reads f.mazeFile or generates a fresh maze.
func (a *app) board(f *solveFlags) (*grid.Grid, grid.Coord, grid.Coord, error) {
	if f.mazeFile != "" {
		data, err := os.ReadFile(f.mazeFile)
		if err != nil {
			return nil, grid.Coord{}, grid.Coord{}, err
		}
		g, err := grid.ParseString(string(data))
		if err != nil {
			return nil, grid.Coord{}, grid.Coord{}, fmt.Errorf("%s: %w", f.mazeFile, err)
		}
		start, goal, ok := g.Endpoints()
		if !ok {
			return nil, grid.Coord{}, grid.Coord{}, fmt.Errorf("%s: board needs one S and one G cell", f.mazeFile)
		}
		return g, start, goal, nil
	}

	opts := []mazegen.Option{
		mazegen.WithSize(a.cfg.Width, a.cfg.Height),
		mazegen.WithBarriers(a.cfg.Barriers),
		mazegen.WithSeed(a.cfg.Seed),
	}
	if f.requireSolvable {
		opts = append(opts, mazegen.WithRequireSolvable(grid.Conn4, 1000))
	}
	m, err := mazegen.Generate(opts...)
	if err != nil {
		return nil, grid.Coord{}, grid.Coord{}, err
	}
	a.log.WithFields(logrus.Fields{
		"seed":     m.Seed,
		"width":    a.cfg.Width,
		"height":   a.cfg.Height,
		"barriers": a.cfg.Barriers,
	}).Info("maze generated")

	return m.Grid, m.Start, m.Goal, nil
}

// report prints one algorithm's outcome in the classic console layout.
func report(ctx context.Context, out io.Writer, o *render.Overlay, alg solver.Algorithm, res route.Result, f *solveFlags) error {
	if !res.Found {
		fmt.Fprint(out, render.Text(o))
		fmt.Fprintf(out, "%s: no path from start to goal (%d nodes expanded)\n", alg.Title(), res.Expanded)
		return nil
	}

	if f.animate {
		err := render.Animate(ctx, o, res.Path, func(step int, o *render.Overlay) error {
			fmt.Fprintf(out, "%s step %d:\n%s\n", alg.Title(), step, render.Text(o))
			return sleep(ctx, f.delay)
		})
		if err != nil {
			return err
		}
	} else {
		o.Mark(res.Path)
	}

	fmt.Fprintf(out, "%s Path:\n%s", alg.Title(), render.Text(o))
	fmt.Fprintf(out, "Visited Nodes: %s\n", res.Path)
	fmt.Fprintf(out, "Time to find the goal using %s: %d minutes\n", alg.Title(), res.Cost)

	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// writeFiles emits the optional PNG and DOT renderings. With several
// algorithms the algorithm name is appended to each file name.
func (a *app) writeFiles(o *render.Overlay, alg solver.Algorithm, res route.Result, f *solveFlags, suffix bool) error {
	if f.pngFile != "" {
		name := outputName(f.pngFile, alg, suffix)
		file, err := os.Create(name)
		if err != nil {
			return err
		}
		err = render.PNG(file, o, render.WithCellSize(a.cfg.CellSize))
		if cerr := file.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return err
		}
		a.log.WithField("file", name).Info("png written")
	}

	if f.dotFile != "" {
		name := outputName(f.dotFile, alg, suffix)
		doc, err := render.DOT(o, res.Path, alg.Connectivity())
		if err != nil {
			return err
		}
		if err := os.WriteFile(name, []byte(doc), 0o644); err != nil {
			return err
		}
		a.log.WithField("file", name).Info("dot written")
	}

	return nil
}

// outputName turns "maze.png" into "maze-astar.png" when suffix is set.
func outputName(path string, alg solver.Algorithm, suffix bool) string {
	if !suffix {
		return path
	}
	ext := filepath.Ext(path)

	return strings.TrimSuffix(path, ext) + "-" + string(alg) + ext
}
