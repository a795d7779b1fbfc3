package pixmap

// NodePath is a compact encoding of the quadrant choices leading from
// the root to a node: two bits per level, depth stored in the upper
// bits. The zero value, RootPath, addresses the root itself.
//
// Paths stay valid across mutations only as long as the tree shape along
// them is unchanged; they are cheap bookmarks, not stable handles.
type NodePath uint64

const (
	pathMask  = uint64(1)<<48 - 1
	depthBits = 48
)

// RootPath addresses the root node.
const RootPath NodePath = 0

// MaxPathDepth is the deepest level a NodePath can address.
const MaxPathDepth = 24

// Depth returns the number of quadrant choices encoded in the path.
func (p NodePath) Depth() int {
	return int(uint64(p) >> depthBits)
}

// Bits returns the raw quadrant bits of the path.
func (p NodePath) Bits() uint64 {
	return uint64(p) & pathMask
}

// IsRoot reports whether the path addresses the root.
func (p NodePath) IsRoot() bool {
	return p == RootPath
}

// QuadrantAt returns the quadrant chosen at the given zero-based level.
// The result is meaningless when level >= Depth.
func (p NodePath) QuadrantAt(level int) Quadrant {
	return Quadrant((p.Bits() >> (2 * level)) & 0b11)
}

// Append returns the path extended by one more quadrant choice.
func (p NodePath) Append(q Quadrant) NodePath {
	depth := p.Depth()
	bits := p.Bits() | uint64(q)<<(2*depth)

	return NodePath(uint64(depth+1)<<depthBits | bits)
}

// Parent returns the path with the last quadrant choice removed.
// The root's parent is the root.
func (p NodePath) Parent() NodePath {
	return p.Truncate(1)
}

// Truncate returns the path with the last count quadrant choices removed.
func (p NodePath) Truncate(count int) NodePath {
	depth := p.Depth()
	if count > depth {
		count = depth
	}
	depth -= count
	bits := p.Bits() & (uint64(1)<<(2*depth) - 1)

	return NodePath(uint64(depth)<<depthBits | bits)
}

// Tail returns the last quadrant choice of the path. ok is false for the
// root path.
func (p NodePath) Tail() (q Quadrant, ok bool) {
	if p.IsRoot() {
		return 0, false
	}

	return p.QuadrantAt(p.Depth() - 1), true
}
