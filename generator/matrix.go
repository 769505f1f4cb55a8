package generator

import (
	"math"

	"github.com/katalvlaran/casegen/model"
)

// Matrix draws a grid for v.
//
// Rows and columns resolve like array sizes (linked default 3); a square
// matrix copies rows into cols. Cells start at zero and are filled from
// [CellMin ?? 0, CellMax ?? 100]: diagonal fills [i][i], triangular fills
// i <= j, sparse fills 10-30% of the cells without replacement, everything
// else fills every cell. Symmetric mirrors the upper triangle of a square
// matrix downward as the last step.
func (g *Generator) Matrix(v model.Variable, c *model.MatrixConstraint, values model.Values) model.Grid {
	rows := g.size(v, sizeSpec{
		what:      "rows",
		mode:      c.RowsType,
		linked:    c.LinkedRowVariable,
		min:       c.MinRows,
		max:       c.MaxRows,
		defMin:    defaultMinSize,
		defMax:    defaultMaxSize,
		defLinked: defaultLinkedMatrixSize,
	}, values)

	var cols int64
	if c.MatrixType == model.MatrixSquare {
		cols = rows
	} else {
		cols = g.size(v, sizeSpec{
			what:      "cols",
			mode:      c.ColsType,
			linked:    c.LinkedColVariable,
			min:       c.MinCols,
			max:       c.MaxCols,
			defMin:    defaultMinSize,
			defMax:    defaultMaxSize,
			defLinked: defaultLinkedMatrixSize,
		}, values)
	}

	if rows > 0 && cols > maxCells/rows {
		was := [2]int64{rows, cols}
		if rows == cols {
			rows = int64(math.Sqrt(float64(maxCells)))
			cols = rows
		} else {
			cols = max(1, maxCells/rows)
			rows = min(rows, maxCells/cols)
		}
		g.note(v, "%dx%d matrix exceeds the cell limit, using %dx%d", was[0], was[1], rows, cols)
	}

	lo := orDefault(c.CellMin, defaultCellMin)
	hi := orDefault(c.CellMax, defaultCellMax)
	if lo > hi && rows > 0 && cols > 0 {
		g.note(v, "cell range [%d, %d] is empty, using %d", lo, hi, lo)
	}

	grid := make(model.Grid, rows)
	for i := range grid {
		grid[i] = make([]int64, cols)
	}
	nr, nc := int(rows), int(cols)

	switch c.MatrixType {
	case model.MatrixDiagonal:
		for i := 0; i < min(nr, nc); i++ {
			grid[i][i] = g.between(lo, hi)
		}
	case model.MatrixTriangular:
		for i := 0; i < nr; i++ {
			for j := i; j < nc; j++ {
				grid[i][j] = g.between(lo, hi)
			}
		}
	case model.MatrixSparse:
		total := nr * nc
		k := int(float64(total) * (sparseMinFill + g.cfg.rng.Float64()*sparseFillSpread))
		if k > 0 {
			for _, idx := range g.cfg.rng.Perm(total)[:k] {
				grid[idx/nc][idx%nc] = g.between(lo, hi)
			}
		}
	default:
		for i := 0; i < nr; i++ {
			for j := 0; j < nc; j++ {
				grid[i][j] = g.between(lo, hi)
			}
		}
	}

	if c.Symmetric {
		if nr == nc {
			for i := 0; i < nr; i++ {
				for j := i + 1; j < nc; j++ {
					grid[j][i] = grid[i][j]
				}
			}
		} else {
			g.note(v, "symmetric ignored on a non-square %dx%d matrix", nr, nc)
		}
	}

	return grid
}
