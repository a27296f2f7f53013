// Package numlit parses and formats numeric literals against a small
// pattern language.
//
// Pattern characters:
//
//	#    optional digit
//	0    required digit
//	.    decimal point (unescaped)
//	,    decimal comma (unescaped)
//	\,   comma group separator
//	\.   dot group separator
//	' '  group separator (between digits)
//	-    optional sign
//	+    required sign
//	e E  exponent marker
//
// Any other character acts as a group separator and is only emitted
// between digits. The canonical form of a number, used for storage, is
// the shortest plain decimal string (strconv formatting).
//
// # Related Packages
//
//   - github.com/outline-format/go-outline/field - Number field type
package numlit
