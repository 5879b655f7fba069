package chart

///////////////////////////////////////////////////////////////////////////////
/// CHART
///////////////////////////////////////////////////////////////////////////////

// Paint order shared by the chart types. Grid lines sit under the data,
// labels always on top.
const (
	zBackground = 0.5
	zRings      = 1.0
	zGridLines  = 1.5
	zValues     = 2.0
	zMarkers    = 2.5
	zLabels     = 3.0
)
