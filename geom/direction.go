package geom

// Direction is one of the eight compass directions in the 2D plane.
// North points toward +y, East toward +x.
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// CardinalDirections lists N, E, S, W in clockwise order.
var CardinalDirections = []Direction{North, East, South, West}

// DiagonalDirections lists NE, SE, SW, NW in clockwise order.
var DiagonalDirections = []Direction{NorthEast, SouthEast, SouthWest, NorthWest}

// AllDirections lists all eight directions in clockwise order from North.
var AllDirections = []Direction{
	North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest,
}

// Unit returns the unit vector for this direction.
func (d Direction) Unit() Point {
	switch d {
	case North:
		return Point{0, 1}
	case NorthEast:
		return Point{1, 1}
	case East:
		return Point{1, 0}
	case SouthEast:
		return Point{1, -1}
	case South:
		return Point{0, -1}
	case SouthWest:
		return Point{-1, -1}
	case West:
		return Point{-1, 0}
	case NorthWest:
		return Point{-1, 1}
	}

	return Point{}
}

// IsCardinal reports whether d is one of N, E, S, W.
func (d Direction) IsCardinal() bool {
	switch d {
	case North, East, South, West:
		return true
	}

	return false
}

// IsDiagonal reports whether d is one of NE, SE, SW, NW.
func (d Direction) IsDiagonal() bool {
	return !d.IsCardinal()
}

// Opposite returns the direction rotated by 180 degrees.
func (d Direction) Opposite() Direction {
	return (d + 4) % 8
}

// Move returns point translated in this direction by the given amount.
func (d Direction) Move(p Point, by int) Point {
	return p.Add(d.Unit().Mul(by))
}

// String returns the direction's compass name.
func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case NorthEast:
		return "NE"
	case East:
		return "E"
	case SouthEast:
		return "SE"
	case South:
		return "S"
	case SouthWest:
		return "SW"
	case West:
		return "W"
	case NorthWest:
		return "NW"
	}

	return "?"
}
