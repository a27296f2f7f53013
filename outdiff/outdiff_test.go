package outdiff

import (
	"strings"
	"testing"

	"github.com/outline-format/go-outline/field"
	"github.com/outline-format/go-outline/nodefmt"
	"github.com/outline-format/go-outline/tree"
)

func TestLines(t *testing.T) {
	diffs := Lines("a\nb\nc\n", "a\nx\nc\n")
	if Same(diffs) {
		t.Fatal("change not detected")
	}
	got := Unified(diffs)
	for _, want := range []string{"  a\n", "- b\n", "+ x\n", "  c\n"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestLinesSame(t *testing.T) {
	if !Same(Lines("a\nb\n", "a\nb\n")) {
		t.Error("identical texts reported as changed")
	}
}

func TestNodes(t *testing.T) {
	nf, err := nodefmt.New("T", &nodefmt.Data{
		Name:        "T",
		Fields:      []*field.Data{{Name: "Name"}},
		TitleLine:   "{*Name*}",
		OutputLines: []string{"{*Name*}"},
	})
	if err != nil {
		t.Fatal(err)
	}
	from := tree.NewNode(nf, &tree.Record{UID: "a", Data: map[string]string{"Name": "old"}})
	to := tree.NewNode(nf, &tree.Record{UID: "b", Data: map[string]string{"Name": "new"}})
	diffs := Nodes(from, to)
	if Same(diffs) {
		t.Fatal("change not detected")
	}
	got := Unified(diffs)
	if !strings.Contains(got, "- old\n") || !strings.Contains(got, "+ new\n") {
		t.Errorf("unexpected diff:\n%s", got)
	}
}
