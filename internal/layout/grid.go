// Package layout computes the responsive metrics for the flyer product grid.
// The same arithmetic drives the studio preview and the server-rendered
// document, so both stay pixel-identical for a given product count.
package layout

import "math"

const (
	MaxColumns    = 5
	MaxCellHeight = 280
	MinAvailable  = 200
)

type Metrics struct {
	Columns   int
	Rows      int
	Padding   float64
	Gap       float64
	RowHeight float64
	BaseSize  float64
}

// Compute derives grid metrics from the item count and the container/header
// geometry. Pure and deterministic; callers recompute on every count or size
// change instead of caching (image loads can shift the measured header).
func Compute(itemCount int, containerHeight, headerHeight float64) Metrics {
	total := itemCount
	if total < 1 {
		total = 1
	}

	columns := int(math.Ceil(math.Sqrt(float64(total))))
	if columns < 1 {
		columns = 1
	}
	if columns > MaxColumns {
		columns = MaxColumns
	}

	rows := int(math.Ceil(float64(total) / float64(columns)))
	if rows < 1 {
		rows = 1
	}

	// Tighter spacing as the grid grows; the higher threshold wins.
	padding, gap := 30.0, 20.0
	if rows > 6 {
		padding, gap = 20.0, 15.0
	}
	if rows > 9 {
		padding, gap = 10.0, 5.0
	}

	available := containerHeight - headerHeight - padding*2
	if available < MinAvailable {
		available = MinAvailable
	}

	cell := (available - gap*float64(rows-1)) / float64(rows)
	if math.IsNaN(cell) || math.IsInf(cell, 0) || cell <= 0 {
		cell = available / float64(rows)
	}
	if cell > MaxCellHeight {
		cell = MaxCellHeight
	}

	base := cell / 11
	if cell < 90 {
		base = cell / 9
	}

	return Metrics{
		Columns:   columns,
		Rows:      rows,
		Padding:   padding,
		Gap:       gap,
		RowHeight: cell,
		BaseSize:  base,
	}
}
