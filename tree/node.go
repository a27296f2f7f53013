package tree

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/outline-format/go-outline/nodefmt"
)

// Record is the persisted form of a node. Children are referenced by
// uid and resolved to live links after the full node set is loaded.
type Record struct {
	Format   string            `yaml:"format" json:"format"`
	UID      string            `yaml:"uid" json:"uid"`
	Data     map[string]string `yaml:"data" json:"data"`
	Children []string          `yaml:"children,omitempty" json:"children,omitempty"`
}

// Node is one outline node: stored field values, an ordered child
// list and a shared reference to its format. Rendering has no logic
// here; it delegates to the format with this node's data.
type Node struct {
	UID    string
	Data   map[string]string
	Format *nodefmt.NodeFormat

	children  []*Node
	childUIDs []string
	spots     map[*Spot]bool
}

// NewNode builds a node from a persisted record. A nil record starts
// an empty node with a fresh uid.
func NewNode(format *nodefmt.NodeFormat, rec *Record) *Node {
	n := &Node{
		Format: format,
		Data:   map[string]string{},
		spots:  map[*Spot]bool{},
	}
	if rec != nil {
		n.UID = rec.UID
		if rec.Data != nil {
			n.Data = rec.Data
		}
		n.childUIDs = rec.Children
	}
	if n.UID == "" {
		n.UID = newUID()
	}
	return n
}

// uids are hex only, no dashes
func newUID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// LinkChildren resolves this node's persisted child uids into live
// links. Call once per node after every node is built.
func (n *Node) LinkChildren(byUID map[string]*Node) error {
	children := make([]*Node, 0, len(n.childUIDs))
	for _, uid := range n.childUIDs {
		child, ok := byUID[uid]
		if !ok {
			return fmt.Errorf("%w: %q in children of %q", ErrUnknownUID, uid, n.UID)
		}
		children = append(children, child)
	}
	n.children = children
	n.childUIDs = nil
	return nil
}

// Children returns the ordered child list.
func (n *Node) Children() []*Node {
	res := make([]*Node, len(n.children))
	copy(res, n.children)
	return res
}

// NumChildren returns the child count.
func (n *Node) NumChildren() int { return len(n.children) }

// AppendChild adds a child at the end of the child list.
func (n *Node) AppendChild(child *Node) {
	n.children = append(n.children, child)
}

// RemoveChild drops the first occurrence of child from the child
// list, reporting whether it was present.
func (n *Node) RemoveChild(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return true
		}
	}
	return false
}

// Record returns the persisted form of this node.
func (n *Node) Record() *Record {
	rec := &Record{
		Format: n.Format.Name,
		UID:    n.UID,
		Data:   n.Data,
	}
	for _, child := range n.children {
		rec.Children = append(rec.Children, child.UID)
	}
	return rec
}

// Title renders this node's title line.
func (n *Node) Title() string {
	return n.Format.FormatTitle(n.Data)
}

// SetTitle updates this node's data from an edited title string,
// reporting whether anything changed. An unchanged title is a no-op.
func (n *Node) SetTitle(title string) bool {
	if title == n.Title() {
		return false
	}
	return n.Format.ExtractTitleData(title, n.Data)
}

// Output renders this node's output lines.
func (n *Node) Output(plainText, keepBlanks bool) []string {
	return n.Format.FormatOutput(n.Data, plainText, keepBlanks)
}

// Descend walks this node's branch top-down, calling fn for the node
// and every descendant. A node under multiple parents is visited once
// per placement.
func (n *Node) Descend(fn func(*Node)) {
	fn(n)
	for _, child := range n.children {
		child.Descend(fn)
	}
}
