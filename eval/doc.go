// Package eval runs equations over a node's field values. Field names
// bind as expression variables; bad stored data fails evaluation with
// a validation error rather than producing a partial result.
//
// # Related Packages
//
//   - [github.com/outline-format/go-outline/field] value extraction
//   - [github.com/outline-format/go-outline/tree] node structure
package eval
