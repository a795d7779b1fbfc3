package pathfind

import "github.com/katalvlaran/pixelgrid/geom"

// CostFunc maps a pixel value to the cost of crossing one unit of
// distance through it. Non-positive or infinite costs mark the value
// impassable.
type CostFunc[T comparable] func(value T) float64

// Metric selects the distance heuristic used by the search.
type Metric int

const (
	// Euclidean is straight-line distance, admissible for any movement.
	Euclidean Metric = iota

	// Manhattan is |dx|+|dy|, the natural fit for cardinal-only movement.
	Manhattan

	// Chebyshev is max(|dx|,|dy|), the natural fit for diagonal movement.
	Chebyshev
)

// Dist returns the metric distance between a and b.
func (m Metric) Dist(a, b geom.Point) float64 {
	switch m {
	case Manhattan:
		return float64(geom.ManhattanDist(a, b))
	case Chebyshev:
		return float64(geom.ChebyshevDist(a, b))
	}

	return geom.Dist(a, b)
}

// String returns the metric's name.
func (m Metric) String() string {
	switch m {
	case Euclidean:
		return "Euclidean"
	case Manhattan:
		return "Manhattan"
	case Chebyshev:
		return "Chebyshev"
	}

	return "?"
}

// Options configures a search.
type Options struct {
	// Metric is the heuristic distance measure.
	Metric Metric

	// Diagonals permits movement across corner-touching leaves.
	Diagonals bool
}

// DefaultOptions returns the baseline configuration: Euclidean metric,
// cardinal movement only.
func DefaultOptions() Options {
	return Options{Metric: Euclidean}
}

// Option mutates Options.
type Option func(*Options)

// WithMetric selects the heuristic metric.
func WithMetric(m Metric) Option {
	return func(o *Options) { o.Metric = m }
}

// WithDiagonals permits diagonal movement between corner-touching
// leaves.
func WithDiagonals() Option {
	return func(o *Options) { o.Diagonals = true }
}

// Result describes a completed search.
type Result struct {
	// Path is the waypoint sequence from start to goal: the start pixel,
	// the centers of the intermediate leaves, and the goal pixel.
	Path []geom.Point

	// Cost is the accumulated edge cost of the path.
	Cost float64

	// Considered is the number of leaves expanded during the search.
	Considered int
}
