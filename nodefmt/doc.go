// Package nodefmt defines node formats: named, ordered collections of
// fields together with the line templates that render a node's data
// into its title and output lines.
//
// A template line embeds field references as "{*name*}" placeholders
// between literal text. Parsing resolves each placeholder against the
// format's field set; placeholders carrying a modifier character or
// naming an unknown field pass through as literal text.
//
// Rendering flows one way, from stored data to text. Title editing
// flows the other way: ExtractTitleData inverts the title template
// against an edited title string and writes the captured values back
// into node data.
//
// # Related Packages
//
//   - [github.com/outline-format/go-outline/field] field type variants
//   - [github.com/outline-format/go-outline/tree] node structure
package nodefmt
