package stats

import "fmt"

///////////////////////////////////////////////////////////////////////////////
/// JUEGO DE POSICION
///////////////////////////////////////////////////////////////////////////////

// The positional heatmap layouts
const (
	PositionalFull       = "full"
	PositionalHorizontal = "horizontal"
	PositionalVertical   = "vertical"
)

/**
* BinStatisticPositional calculates binned statistics for the Juego de
* Posición zones. positionalX (7 values) and positionalY (6 values) are
* the zone edges from the pitch dimensions.
*
* The 'full' layout returns five panels: the bottom and top wing rows,
* the 3x2 middle block, and the two penalty areas. Points on shared zone
* edges are counted once by binning over a larger grid and slicing out
* the panel, rather than by binning each panel separately.
 */
func BinStatisticPositional(x, y, values []float64, space *Space,
	positionalX, positionalY []float64, positional, statistic string) ([]*BinResult, error) {

	if len(positionalX) != 7 || len(positionalY) != 6 {
		return nil, fmt.Errorf("expected 7 positional x edges and 6 positional y edges, got %d and %d",
			len(positionalX), len(positionalY))
	}

	px := positionalX
	py := positionalY

	switch positional {
	case PositionalFull:
		// bottom and top rows: bin with a three row grid and keep the
		// outer rows
		yEdge := []float64{py[0], py[1], py[4], py[5]}
		rows, err := BinStatistic(x, y, values, space, statistic,
			&Options{XEdges: px, YEdges: yEdge})
		if err != nil {
			return nil, err
		}
		bottom := slicePanel(rows, 0, 1, 0, rows.NX())
		top := slicePanel(rows, 2, 3, 0, rows.NX())

		// middle block: surround it with the wing rows and the penalty
		// area columns then slice out the interior
		xEdge := []float64{px[0], px[1], px[3], px[5], px[6]}
		middle, err := BinStatistic(x, y, values, space, statistic,
			&Options{XEdges: xEdge, YEdges: py})
		if err != nil {
			return nil, err
		}
		mid := slicePanel(middle, 1, 4, 1, 3)

		// penalty areas
		xEdge = []float64{px[0], px[1], px[2], px[5], px[6]}
		yEdge = []float64{py[0], py[1], py[4], py[5]}
		pen, err := BinStatistic(x, y, values, space, statistic,
			&Options{XEdges: xEdge, YEdges: yEdge})
		if err != nil {
			return nil, err
		}
		left := slicePanel(pen, 1, 2, 0, 1)
		right := slicePanel(pen, 1, 2, 3, 4)

		return []*BinResult{bottom, top, mid, left, right}, nil

	case PositionalHorizontal:
		result, err := BinStatistic(x, y, values, space, statistic,
			&Options{XEdges: []float64{px[0], px[6]}, YEdges: py})
		if err != nil {
			return nil, err
		}
		return []*BinResult{result}, nil

	case PositionalVertical:
		result, err := BinStatistic(x, y, values, space, statistic,
			&Options{XEdges: px, YEdges: []float64{py[0], py[5]}})
		if err != nil {
			return nil, err
		}
		return []*BinResult{result}, nil

	default:
		return nil, fmt.Errorf("positional must be one of 'full', 'vertical' or 'horizontal', got %q", positional)
	}
}

// slicePanel cuts rows [j0,j1) and columns [i0,i1) out of a result
func slicePanel(r *BinResult, j0, j1, i0, i1 int) *BinResult {
	statGrid := make([][]float64, 0, j1-j0)
	for j := j0; j < j1; j++ {
		statGrid = append(statGrid, append([]float64(nil), r.Statistic[j][i0:i1]...))
	}
	return &BinResult{
		Statistic: statGrid,
		XEdges:    append([]float64(nil), r.XEdges[i0:i1+1]...),
		YEdges:    append([]float64(nil), r.YEdges[j0:j1+1]...),
		CX:        append([]float64(nil), r.CX[i0:i1]...),
		CY:        append([]float64(nil), r.CY[j0:j1]...),
	}
}
