// Package outline ties the document packages together for callers who
// just want to open, edit and save outline files.
//
// # Related Packages
//
//   - [github.com/outline-format/go-outline/treeio] document files
//   - [github.com/outline-format/go-outline/nodefmt] node formats
//   - [github.com/outline-format/go-outline/field] field type variants
package outline

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/outline-format/go-outline/treeio"
)

// Open loads an outline document from a YAML or JSON file.
func Open(path string) (*treeio.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return treeio.Read(f)
}

// Save stores a document, choosing JSON when the path carries a .json
// extension and YAML otherwise.
func Save(path string, doc *treeio.File) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return treeio.WriteJSON(f, doc)
	}
	return treeio.Write(f, doc)
}
