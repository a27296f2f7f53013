package tree

// Spot is one placement of a node in the outline. A node under
// several parents holds one spot per placement; the parent link chains
// to the parent node's own spot.
type Spot struct {
	Node   *Node
	Parent *Spot
}

// GenerateSpots recursively builds spot references for this branch.
// Pass nil for a root node.
func (n *Node) GenerateSpots(parent *Spot) *Spot {
	spot := &Spot{Node: n, Parent: parent}
	n.spots[spot] = true
	for _, child := range n.children {
		child.GenerateSpots(spot)
	}
	return spot
}

// Spots returns this node's placement tokens.
func (n *Node) Spots() []*Spot {
	res := make([]*Spot, 0, len(n.spots))
	for spot := range n.spots {
		res = append(res, spot)
	}
	return res
}

// RemoveSpot drops one placement token.
func (n *Node) RemoveSpot(spot *Spot) {
	delete(n.spots, spot)
}

// Parents returns the distinct parent nodes across every placement.
// A root placement contributes a nil entry.
func (n *Node) Parents() []*Node {
	seen := map[*Node]bool{}
	var res []*Node
	for spot := range n.spots {
		var parent *Node
		if spot.Parent != nil {
			parent = spot.Parent.Node
		}
		if !seen[parent] {
			seen[parent] = true
			res = append(res, parent)
		}
	}
	return res
}
