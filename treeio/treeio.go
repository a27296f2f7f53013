package treeio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/outline-format/go-outline/debug"
	"github.com/outline-format/go-outline/nodefmt"
	"github.com/outline-format/go-outline/tree"
)

// Document is the on-disk shape of an outline file.
type Document struct {
	Properties map[string]any  `yaml:"properties,omitempty" json:"properties,omitempty"`
	Formats    []*nodefmt.Data `yaml:"formats" json:"formats"`
	Nodes      []*tree.Record  `yaml:"nodes" json:"nodes"`
}

// File is a loaded outline document: live formats, the node model and
// the document properties.
type File struct {
	Properties map[string]any
	Model      *tree.Model

	formatOrder   []string
	formatsByName map[string]*nodefmt.NodeFormat
}

// Format looks up a node format by name.
func (f *File) Format(name string) (*nodefmt.NodeFormat, bool) {
	nf, ok := f.formatsByName[name]
	return nf, ok
}

// Formats returns the node formats in declared order.
func (f *File) Formats() []*nodefmt.NodeFormat {
	res := make([]*nodefmt.NodeFormat, 0, len(f.formatOrder))
	for _, name := range f.formatOrder {
		res = append(res, f.formatsByName[name])
	}
	return res
}

// AddFormat registers a node format, replacing any previous format
// with the same name.
func (f *File) AddFormat(nf *nodefmt.NodeFormat) {
	if _, ok := f.formatsByName[nf.Name]; !ok {
		f.formatOrder = append(f.formatOrder, nf.Name)
	}
	f.formatsByName[nf.Name] = nf
}

// Roots returns the document's top level nodes.
func (f *File) Roots() []*tree.Node {
	return f.Model.Roots()
}

// NewFile returns an empty document.
func NewFile() *File {
	return &File{
		Model:         tree.NewModel(),
		formatsByName: map[string]*nodefmt.NodeFormat{},
	}
}

// Read loads a document. The reader may hold YAML or JSON.
func Read(r io.Reader) (*File, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocument, err)
	}
	var doc Document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocument, err)
	}
	return FromDocument(&doc)
}

// FromDocument builds the live structures from a decoded document.
func FromDocument(doc *Document) (*File, error) {
	f := NewFile()
	f.Properties = doc.Properties
	for _, fd := range doc.Formats {
		nf, err := nodefmt.New(fd.Name, fd)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDocument, err)
		}
		f.AddFormat(nf)
	}
	for _, rec := range doc.Nodes {
		nf, ok := f.formatsByName[rec.Format]
		if !ok {
			return nil, fmt.Errorf("%w: %q on node %q", ErrUnknownFormat, rec.Format, rec.UID)
		}
		f.Model.Add(tree.NewNode(nf, rec))
	}
	if err := f.Model.LinkAll(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocument, err)
	}
	f.Model.GenerateSpots()
	if debug.IO() {
		debug.Logf("treeio: read %d formats, %d nodes, %d roots\n",
			len(f.formatOrder), f.Model.Len(), len(f.Roots()))
	}
	return f, nil
}

// ToDocument returns the persisted form of the live structures.
func (f *File) ToDocument() *Document {
	doc := &Document{Properties: f.Properties}
	for _, nf := range f.Formats() {
		doc.Formats = append(doc.Formats, nf.StoreFormat())
	}
	for _, n := range f.Model.Nodes() {
		doc.Nodes = append(doc.Nodes, n.Record())
	}
	return doc
}

// Write stores the document as YAML.
func Write(w io.Writer, f *File) error {
	d, err := yaml.Marshal(f.ToDocument())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDocument, err)
	}
	_, err = w.Write(d)
	return err
}

// WriteJSON stores the document as indented JSON.
func WriteJSON(w io.Writer, f *File) error {
	d, err := json.MarshalIndent(f.ToDocument(), "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDocument, err)
	}
	d = append(d, '\n')
	_, err = w.Write(d)
	return err
}
