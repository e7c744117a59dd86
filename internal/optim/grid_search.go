// Package optim searches parameter grids for the best value of a run metric.
package optim

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrEmptyGrid = errors.New("optim: grid has no points")

// maxAxisPoints caps the values one axis may take.
const maxAxisPoints = 10000

// Axis is one searched parameter and the values it takes.
type Axis struct {
	Name   string
	Values []float64
}

// ParseAxis reads "name=min:max:step". The max is included when it falls on
// the grid.
func ParseAxis(spec string) (Axis, error) {
	name, rng, ok := strings.Cut(spec, "=")
	if !ok || name == "" {
		return Axis{}, fmt.Errorf("optim: axis %q: want name=min:max:step", spec)
	}
	parts := strings.Split(rng, ":")
	if len(parts) != 3 {
		return Axis{}, fmt.Errorf("optim: axis %q: want name=min:max:step", spec)
	}

	var v [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Axis{}, fmt.Errorf("optim: axis %q: %w", spec, err)
		}
		v[i] = f
	}
	min, max, step := v[0], v[1], v[2]
	for _, f := range v {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return Axis{}, fmt.Errorf("optim: axis %q: bounds and step must be finite", spec)
		}
	}
	if step <= 0 || max < min {
		return Axis{}, fmt.Errorf("optim: axis %q: need step > 0 and max >= min", spec)
	}
	if min+step == min {
		return Axis{}, fmt.Errorf("optim: axis %q: step %g too small to advance from %g", spec, step, min)
	}
	// The end tolerance is in steps so an on-grid max survives rounding.
	n := math.Floor((max-min)/step+1e-9) + 1
	if n > maxAxisPoints {
		return Axis{}, fmt.Errorf("optim: axis %q: %.0f points exceeds limit of %d", spec, n, maxAxisPoints)
	}

	axis := Axis{Name: strings.TrimSpace(name), Values: make([]float64, int(n))}
	for k := range axis.Values {
		axis.Values[k] = min + float64(k)*step
	}
	return axis, nil
}

// Evaluate scores one grid point; lower is better. Points that return an
// error are skipped.
type Evaluate func(point map[string]float64) (float64, error)

type GridSearch struct {
	axes []Axis
}

func NewGridSearch(axes ...Axis) *GridSearch {
	return &GridSearch{axes: axes}
}

// Size is the number of grid points.
func (g *GridSearch) Size() int {
	if len(g.axes) == 0 {
		return 0
	}
	n := 1
	for _, a := range g.axes {
		n *= len(a.Values)
	}
	return n
}

// Search evaluates every grid point and returns the one with the lowest
// score. It stops early when ctx is cancelled.
func (g *GridSearch) Search(ctx context.Context, eval Evaluate) (map[string]float64, float64, error) {
	if g.Size() == 0 {
		return nil, 0, ErrEmptyGrid
	}

	best := math.Inf(1)
	var bestParams map[string]float64

	if err := g.searchRecursive(ctx, 0, make(map[string]float64), eval, &best, &bestParams); err != nil {
		return nil, 0, err
	}
	if bestParams == nil {
		return nil, 0, fmt.Errorf("optim: no grid point could be evaluated")
	}
	return bestParams, best, nil
}

func (g *GridSearch) searchRecursive(
	ctx context.Context,
	depth int,
	current map[string]float64,
	eval Evaluate,
	best *float64,
	bestParams *map[string]float64,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if depth == len(g.axes) {
		val, err := eval(current)
		if err != nil || math.IsNaN(val) {
			return nil
		}
		if val < *best {
			*best = val
			*bestParams = make(map[string]float64, len(current))
			for k, v := range current {
				(*bestParams)[k] = v
			}
		}
		return nil
	}

	axis := g.axes[depth]
	for _, val := range axis.Values {
		current[axis.Name] = val
		if err := g.searchRecursive(ctx, depth+1, current, eval, best, bestParams); err != nil {
			return err
		}
	}
	delete(current, axis.Name)
	return nil
}
