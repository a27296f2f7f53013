package outline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/outline-format/go-outline/field"
	"github.com/outline-format/go-outline/nodefmt"
	"github.com/outline-format/go-outline/tree"
	"github.com/outline-format/go-outline/treeio"
)

func sampleFile(t *testing.T) *treeio.File {
	t.Helper()
	f := treeio.NewFile()
	nf, err := nodefmt.New("NOTE", &nodefmt.Data{
		Name:        "NOTE",
		Fields:      []*field.Data{{Name: "Name"}},
		TitleLine:   "{*Name*}",
		OutputLines: []string{"{*Name*}"},
	})
	if err != nil {
		t.Fatal(err)
	}
	f.AddFormat(nf)
	f.Model.Add(tree.NewNode(nf, &tree.Record{
		UID: "n1", Data: map[string]string{"Name": "hello"},
	}))
	return f
}

func TestSaveOpen(t *testing.T) {
	doc := sampleFile(t)
	for _, name := range []string{"doc.yaml", "doc.json"} {
		path := filepath.Join(t.TempDir(), name)
		if err := Save(path, doc); err != nil {
			t.Fatal(err)
		}
		got, err := Open(path)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(doc.ToDocument(), got.ToDocument()); diff != "" {
			t.Errorf("%s round trip (-want +got):\n%s", name, diff)
		}
	}
}

func TestOpenMissing(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.yaml")); !os.IsNotExist(err) {
		t.Errorf("got %v", err)
	}
}
