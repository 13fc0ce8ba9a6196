package output

// findDataBounds finds the bounding box of non-empty cells.
// minRow is -1 when every cell is empty.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}

// cropToData trims empty rows and columns from the edges of a grid.
// Every returned row has the same width.
func cropToData(rows [][]string) [][]string {
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return nil
	}

	width := maxCol - minCol + 1
	cropped := make([][]string, 0, maxRow-minRow+1)
	for rowIdx := minRow; rowIdx <= maxRow; rowIdx++ {
		out := make([]string, width)
		row := rows[rowIdx]
		for colIdx := minCol; colIdx <= maxCol && colIdx < len(row); colIdx++ {
			out[colIdx-minCol] = row[colIdx]
		}
		cropped = append(cropped, out)
	}
	return cropped
}
