package stats

import (
	"fmt"
	"math"
)

///////////////////////////////////////////////////////////////////////////////
/// FLOW
///////////////////////////////////////////////////////////////////////////////

// The supported flow arrow sizings
const (
	ArrowSame    = "same"
	ArrowScale   = "scale"
	ArrowAverage = "average"
)

/**
* FlowResult holds one arrow per grid cell that received at least one
* start location: the cell centre, the arrow end point in pitch
* coordinates and the count of events starting in the cell.
 */
type FlowResult struct {
	CX, CY     []float64
	EndX, EndY []float64
	Counts     []float64
}

/**
* Flow bins the start locations and calculates the average movement per
* cell: the circular mean of the angles and the mean distance. The
* arrow length is the same for every cell ('same'), scaled by the mean
* distance up to arrowLength ('scale'), or the mean distance itself
* ('average').
 */
func Flow(xstart, ystart, xend, yend []float64, space *Space,
	arrowType string, arrowLength float64, opt *Options) (*FlowResult, error) {

	angle, distance, err := AngleAndDistance(xstart, ystart, xend, yend, space.InvertY)
	if err != nil {
		return nil, err
	}

	bsDistance, err := BinStatistic(xstart, ystart, distance, space, StatMean, opt)
	if err != nil {
		return nil, err
	}
	bsAngle, err := BinStatisticReduce(xstart, ystart, angle, space, CircularMean, opt)
	if err != nil {
		return nil, err
	}
	bsCount, err := BinStatistic(xstart, ystart, nil, space, StatCount, opt)
	if err != nil {
		return nil, err
	}

	// the largest mean distance, for scaled arrows
	var maxDist float64
	for _, row := range bsDistance.Statistic {
		for _, v := range row {
			if !math.IsNaN(v) {
				maxDist = math.Max(maxDist, v)
			}
		}
	}

	result := &FlowResult{}
	for j := 0; j < bsAngle.NY(); j++ {
		for i := 0; i < bsAngle.NX(); i++ {
			a := bsAngle.Statistic[j][i]
			if math.IsNaN(a) {
				continue
			}
			var d float64
			switch arrowType {
			case ArrowSame:
				d = arrowLength
			case ArrowScale:
				if maxDist > 0 {
					d = bsDistance.Statistic[j][i] * arrowLength / maxDist
				}
			case ArrowAverage:
				d = bsDistance.Statistic[j][i]
			default:
				return nil, fmt.Errorf("invalid arrow type %q, should be one of 'same', 'scale', 'average'", arrowType)
			}
			cx := bsAngle.CX[i]
			cy := bsAngle.CY[j]
			endX := cx + math.Cos(a)*d
			endY := cy + math.Sin(a)*d
			if space.InvertY {
				endY = cy - math.Sin(a)*d
			}
			result.CX = append(result.CX, cx)
			result.CY = append(result.CY, cy)
			result.EndX = append(result.EndX, endX)
			result.EndY = append(result.EndY, endY)
			result.Counts = append(result.Counts, bsCount.Statistic[j][i])
		}
	}
	return result, nil
}
