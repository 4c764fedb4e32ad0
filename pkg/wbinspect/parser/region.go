package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Region is the bounding box of non-empty cells, 0-based and inclusive.
type Region struct {
	MinRow, MaxRow int
	MinCol, MaxCol int
}

// Width returns the number of columns in the region.
func (r Region) Width() int { return r.MaxCol - r.MinCol + 1 }

// Height returns the number of rows in the region, header included.
func (r Region) Height() int { return r.MaxRow - r.MinRow + 1 }

// Range returns the region in Excel notation (e.g., "A1:D10").
func (r Region) Range() string {
	startCell, _ := excelize.CoordinatesToCellName(r.MinCol+1, r.MinRow+1)
	endCell, _ := excelize.CoordinatesToCellName(r.MaxCol+1, r.MaxRow+1)
	return fmt.Sprintf("%s:%s", startCell, endCell)
}

// FindDataRegion finds the bounding box of non-empty cells.
// It returns false when every cell is empty.
func FindDataRegion(rows [][]string) (Region, bool) {
	r := Region{MinRow: -1, MaxRow: -1, MinCol: -1, MaxCol: -1}

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell != "" {
				if r.MinRow < 0 || rowIdx < r.MinRow {
					r.MinRow = rowIdx
				}
				if r.MaxRow < 0 || rowIdx > r.MaxRow {
					r.MaxRow = rowIdx
				}
				if r.MinCol < 0 || colIdx < r.MinCol {
					r.MinCol = colIdx
				}
				if r.MaxCol < 0 || colIdx > r.MaxCol {
					r.MaxCol = colIdx
				}
			}
		}
	}

	return r, r.MinRow >= 0
}
