package tree

// Model holds every node of a document by uid and performs the second
// phase of loading: linking child uid references into live structure.
type Model struct {
	nodes map[string]*Node
	order []string
}

func NewModel() *Model {
	return &Model{nodes: map[string]*Node{}}
}

// Add registers a node, replacing any previous node with the same uid.
func (m *Model) Add(n *Node) {
	if _, ok := m.nodes[n.UID]; !ok {
		m.order = append(m.order, n.UID)
	}
	m.nodes[n.UID] = n
}

// Node looks up a node by uid.
func (m *Model) Node(uid string) (*Node, bool) {
	n, ok := m.nodes[uid]
	return n, ok
}

// Len returns the node count.
func (m *Model) Len() int { return len(m.nodes) }

// Nodes returns every node in insertion order.
func (m *Model) Nodes() []*Node {
	res := make([]*Node, 0, len(m.order))
	for _, uid := range m.order {
		res = append(res, m.nodes[uid])
	}
	return res
}

// LinkAll resolves child uid references on every node.
func (m *Model) LinkAll() error {
	for _, uid := range m.order {
		if err := m.nodes[uid].LinkChildren(m.nodes); err != nil {
			return err
		}
	}
	return nil
}

// Roots returns the nodes no other node lists as a child, in
// insertion order.
func (m *Model) Roots() []*Node {
	childUIDs := map[string]bool{}
	for _, n := range m.nodes {
		for _, child := range n.children {
			childUIDs[child.UID] = true
		}
	}
	var res []*Node
	for _, uid := range m.order {
		if !childUIDs[uid] {
			res = append(res, m.nodes[uid])
		}
	}
	return res
}

// GenerateSpots rebuilds placement tokens for the whole model,
// starting from the roots.
func (m *Model) GenerateSpots() {
	for _, n := range m.nodes {
		n.spots = map[*Spot]bool{}
	}
	for _, root := range m.Roots() {
		root.GenerateSpots(nil)
	}
}
