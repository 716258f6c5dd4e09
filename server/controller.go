package server

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Naveen-Savi08/Maze-Solver/config"
	"github.com/Naveen-Savi08/Maze-Solver/grid"
	"github.com/Naveen-Savi08/Maze-Solver/mazegen"
	"github.com/Naveen-Savi08/Maze-Solver/render"
	"github.com/Naveen-Savi08/Maze-Solver/solver"
)

// Sentinel errors reported to clients.
var (
	// ErrNoEndpoints indicates a board without a Start or a Goal cell.
	ErrNoEndpoints = errors.New("server: board needs one S and one G cell")

	// ErrBadFormat indicates an unsupported render format.
	ErrBadFormat = errors.New("server: format must be text, png or dot")

	// ErrBadQuery indicates a query parameter that is not an integer.
	ErrBadQuery = errors.New("server: malformed query parameter")
)

// MazeController serves maze generation, solving and rendering.
type MazeController struct {
	cfg config.Config
	log logrus.FieldLogger
}

// NewMazeController creates a controller using cfg for defaults.
func NewMazeController(cfg config.Config, log logrus.FieldLogger) *MazeController {
	return &MazeController{cfg: cfg, log: log}
}

// Register mounts the routes on route.
func (c *MazeController) Register(route *gin.RouterGroup) {
	route.GET("/maze", c.generate)
	route.POST("/solve", c.solve)
	route.POST("/render", c.render)
}

func badRequest(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
}

func queryInt(ctx *gin.Context, key string, def int) (int, error) {
	raw, ok := ctx.GetQuery(key)
	if !ok {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def, fmt.Errorf("%w: %s=%q", ErrBadQuery, key, raw)
	}
	return v, nil
}

// generate handles GET /maze?width=&height=&barriers=&seed=.
func (c *MazeController) generate(ctx *gin.Context) {
	width, err := queryInt(ctx, "width", c.cfg.Width)
	if err != nil {
		badRequest(ctx, err)
		return
	}
	height, err := queryInt(ctx, "height", c.cfg.Height)
	if err != nil {
		badRequest(ctx, err)
		return
	}
	barriers, err := queryInt(ctx, "barriers", c.cfg.Barriers)
	if err != nil {
		badRequest(ctx, err)
		return
	}
	seed, err := queryInt(ctx, "seed", int(c.cfg.Seed))
	if err != nil {
		badRequest(ctx, err)
		return
	}

	m, err := mazegen.Generate(
		mazegen.WithSize(width, height),
		mazegen.WithBarriers(barriers),
		mazegen.WithSeed(int64(seed)),
	)
	if err != nil {
		badRequest(ctx, err)
		return
	}

	c.log.WithFields(logrus.Fields{
		"request_id": requestID(ctx),
		"seed":       m.Seed,
		"width":      width,
		"height":     height,
	}).Debug("maze generated")

	ctx.JSON(http.StatusOK, MazeResponse{
		Seed:   m.Seed,
		Width:  m.Grid.Width,
		Height: m.Grid.Height,
		Rows:   m.Grid.Rows(),
		Start:  toPoint(m.Start),
		Goal:   toPoint(m.Goal),
	})
}

// board parses the request rows and locates the endpoints.
func board(rows []string) (*grid.Grid, grid.Coord, grid.Coord, error) {
	g, err := grid.Parse(rows)
	if err != nil {
		return nil, grid.Coord{}, grid.Coord{}, err
	}
	start, goal, ok := g.Endpoints()
	if !ok {
		return nil, grid.Coord{}, grid.Coord{}, ErrNoEndpoints
	}
	return g, start, goal, nil
}

func algorithms(name string) ([]solver.Algorithm, error) {
	return config.Config{Algorithm: name}.Algorithms()
}

// solve handles POST /solve.
func (c *MazeController) solve(ctx *gin.Context) {
	var request SolveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}
	g, start, goal, err := board(request.Rows)
	if err != nil {
		badRequest(ctx, err)
		return
	}
	algs, err := algorithms(request.Algorithm)
	if err != nil {
		badRequest(ctx, err)
		return
	}

	response := SolveResponse{ID: requestID(ctx)}
	for _, a := range algs {
		res, err := solver.Run(a, g, start, goal)
		if err != nil {
			badRequest(ctx, err)
			return
		}
		c.log.WithFields(logrus.Fields{
			"request_id": response.ID,
			"algorithm":  string(a),
			"found":      res.Found,
			"cost":       res.Cost,
			"expanded":   res.Expanded,
		}).Info("maze solved")

		response.Results = append(response.Results, SolveResult{
			Algorithm: string(a),
			Found:     res.Found,
			Path:      toPoints(res.Path),
			Cost:      res.Cost,
			Expanded:  res.Expanded,
		})
	}

	ctx.JSON(http.StatusOK, response)
}

// render handles POST /render?format=text|png|dot. The first requested
// algorithm draws the route.
func (c *MazeController) render(ctx *gin.Context) {
	format := ctx.DefaultQuery("format", "text")
	switch format {
	case "text", "png", "dot":
	default:
		badRequest(ctx, fmt.Errorf("%w: got %q", ErrBadFormat, format))
		return
	}

	var request SolveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, err)
		return
	}
	g, start, goal, err := board(request.Rows)
	if err != nil {
		badRequest(ctx, err)
		return
	}
	algs, err := algorithms(request.Algorithm)
	if err != nil {
		badRequest(ctx, err)
		return
	}
	a := algs[0]
	res, err := solver.Run(a, g, start, goal)
	if err != nil {
		badRequest(ctx, err)
		return
	}

	o, err := render.NewOverlay(g)
	if err != nil {
		badRequest(ctx, err)
		return
	}
	o.Mark(res.Path)

	c.log.WithFields(logrus.Fields{
		"request_id": requestID(ctx),
		"algorithm":  string(a),
		"format":     format,
		"found":      res.Found,
	}).Info("maze rendered")

	switch format {
	case "png":
		var buf bytes.Buffer
		if err := render.PNG(&buf, o, render.WithCellSize(c.cfg.CellSize)); err != nil {
			ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
			return
		}
		ctx.Data(http.StatusOK, "image/png", buf.Bytes())
	case "dot":
		doc, err := render.DOT(o, res.Path, a.Connectivity())
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
			return
		}
		ctx.Data(http.StatusOK, "text/vnd.graphviz; charset=utf-8", []byte(doc))
	default:
		ctx.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(render.Text(o)))
	}
}
