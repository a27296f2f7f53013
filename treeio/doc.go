// Package treeio reads and writes outline documents. A document is a
// flat list of node formats plus a flat list of node records; loading
// is two-phase, building every node before linking child references.
//
// The on-disk form is YAML or JSON with the same shape. YAML input is
// a superset here, so a JSON document loads through the same reader.
//
// # Related Packages
//
//   - [github.com/outline-format/go-outline/tree] node structure
//   - [github.com/outline-format/go-outline/nodefmt] node formats
package treeio
