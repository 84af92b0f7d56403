package layout

import (
	"math"

	"github.com/matzehuels/collage/pkg/config"
	"github.com/matzehuels/collage/pkg/errors"
)

const eps = 1e-12

// ChooseGrid returns the grid for n images on an area of the given aspect
// ratio (width / height) under policy.
func ChooseGrid(n int, aspect float64, policy config.GridPolicy) (Grid, error) {
	if n <= 0 {
		return Grid{}, errors.New(errors.ErrCodeEmptyInput, "no images to lay out")
	}
	if aspect <= 0 || math.IsNaN(aspect) || math.IsInf(aspect, 0) {
		return Grid{}, errors.New(errors.ErrCodeInvalidConfiguration, "canvas aspect ratio must be positive, got %v", aspect)
	}

	switch policy {
	case config.GridSquare:
		return squareGrid(n), nil
	case config.GridFit, "":
		return fitGrid(n, aspect), nil
	}
	return Grid{}, errors.New(errors.ErrCodeInvalidConfiguration, "--grid: unknown policy %q", policy)
}

// fitGrid picks the divisor pair of n closest in log-aspect to aspect.
// Rows are tried in ascending order and only a strictly better score
// replaces the current best, so ties resolve to fewer rows.
func fitGrid(n int, aspect float64) Grid {
	target := math.Log(aspect)
	best := Grid{Rows: 1, Columns: n}
	bestScore := math.Inf(1)

	for rows := 1; rows <= n; rows++ {
		if n%rows != 0 {
			continue
		}
		cols := n / rows
		score := math.Abs(math.Log(float64(cols)/float64(rows)) - target)
		if score < bestScore-eps {
			best = Grid{Rows: rows, Columns: cols}
			bestScore = score
		}
	}
	return best
}

// squareGrid uses floor(sqrt(n)) columns and enough rows to hold n.
func squareGrid(n int) Grid {
	cols := int(math.Sqrt(float64(n)))
	for (cols+1)*(cols+1) <= n {
		cols++
	}
	for cols > 1 && cols*cols > n {
		cols--
	}
	rows := (n + cols - 1) / cols
	return Grid{Rows: rows, Columns: cols}
}
