package treeio

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const yamlDoc = `
formats:
  - formatname: TRIP
    fields:
      - fieldname: Name
        fieldtype: Text
      - fieldname: Date
        fieldtype: Text
    titleline: "{*Name*}: {*Date*}"
    outputlines:
      - "{*Name*}"
      - "{*Date*}"
nodes:
  - format: TRIP
    uid: root
    data:
      Name: Top
      Date: "2024-01-01"
    children: [a]
  - format: TRIP
    uid: a
    data:
      Name: Kid
`

func TestReadYAML(t *testing.T) {
	f, err := Read(strings.NewReader(yamlDoc))
	if err != nil {
		t.Fatal(err)
	}
	roots := f.Roots()
	if len(roots) != 1 {
		t.Fatalf("roots %d", len(roots))
	}
	if got := roots[0].Title(); got != "Top: 2024-01-01" {
		t.Errorf("got %q", got)
	}
	kids := roots[0].Children()
	if len(kids) != 1 || kids[0].UID != "a" {
		t.Fatalf("children %v", kids)
	}
	nf, ok := f.Format("TRIP")
	if !ok {
		t.Fatal("format missing")
	}
	if got := nf.TitleLineText(); got != "{*Name*}: {*Date*}" {
		t.Errorf("got %q", got)
	}
}

func TestReadJSON(t *testing.T) {
	doc := `{
	  "formats": [{
	    "formatname": "T",
	    "fields": [{"fieldname": "Name", "fieldtype": "Text"}],
	    "titleline": "{*Name*}"
	  }],
	  "nodes": [{"format": "T", "uid": "n1", "data": {"Name": "hello"}}]
	}`
	f, err := Read(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	n, ok := f.Model.Node("n1")
	if !ok {
		t.Fatal("node missing")
	}
	if got := n.Title(); got != "hello" {
		t.Errorf("got %q", got)
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	f, err := Read(strings.NewReader(yamlDoc))
	if err != nil {
		t.Fatal(err)
	}
	for _, write := range []func(*bytes.Buffer) error{
		func(b *bytes.Buffer) error { return Write(b, f) },
		func(b *bytes.Buffer) error { return WriteJSON(b, f) },
	} {
		var buf bytes.Buffer
		if err := write(&buf); err != nil {
			t.Fatal(err)
		}
		f2, err := Read(&buf)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(f.ToDocument(), f2.ToDocument()); diff != "" {
			t.Errorf("round trip (-want +got):\n%s", diff)
		}
	}
}

func TestReadErrors(t *testing.T) {
	if _, err := Read(strings.NewReader("nodes:\n  - format: NOPE\n    uid: x\n")); err == nil {
		t.Error("unknown format should fail")
	}
	bad := `
formats:
  - formatname: T
    fields:
      - fieldname: Name
nodes:
  - format: T
    uid: x
    children: [missing]
`
	if _, err := Read(strings.NewReader(bad)); err == nil {
		t.Error("dangling child uid should fail")
	}
}

func TestPatch(t *testing.T) {
	doc := []byte("a: 1\nb: keep\n")
	patch := []byte(`[{"op": "replace", "path": "/a", "value": 2}]`)
	out, err := Patch(doc, patch)
	if err != nil {
		t.Fatal(err)
	}
	var got map[string]any
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"a": float64(2), "b": "keep"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestMergePatch(t *testing.T) {
	out, err := MergePatch([]byte(`{"a": 1, "b": 2}`), []byte(`{"b": null, "c": 3}`))
	if err != nil {
		t.Fatal(err)
	}
	var got map[string]any
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"a": float64(1), "c": float64(3)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
