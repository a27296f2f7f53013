// Package tree stores outline nodes and their linked structure. A
// node holds stored field values and an ordered child list; title and
// output rendering delegate to the node's format.
//
// Structure is a DAG rather than a strict tree: one node may sit under
// several parents. Each placement is a Spot token linking back to the
// parent's own spot.
//
// # Related Packages
//
//   - [github.com/outline-format/go-outline/nodefmt] node formats
//   - [github.com/outline-format/go-outline/treeio] document files
package tree
