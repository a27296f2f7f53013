// Package field implements the typed field variants used by node
// formats: Text, HtmlText, OneLineText, SpacedText, Number, Boolean,
// Choice, Combination and RegularExpression.
//
// Every variant converts between three representations of a value:
//
//	stored text  - the canonical, persisted form
//	editor text  - the form shown in and accepted from an edit surface
//	output text  - the rendered form, wrapped in the field's prefix
//	               and suffix
//
// Rendering never fails on bad data; it substitutes the ErrorMarker
// instead. Ingestion (StoredText, FormatEditorText) fails with
// ErrValidation, and installing a bad format specifier fails with
// ErrFormat before any state changes.
//
// # Related Packages
//
//   - github.com/outline-format/go-outline/nodefmt - line templates and node formats
//   - github.com/outline-format/go-outline/numlit - numeric literal service
//   - github.com/outline-format/go-outline/boollit - boolean literal service
package field
