package tree

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/outline-format/go-outline/field"
	"github.com/outline-format/go-outline/nodefmt"
)

func testFormat(t *testing.T) *nodefmt.NodeFormat {
	t.Helper()
	nf, err := nodefmt.New("TRIP", &nodefmt.Data{
		Name: "TRIP",
		Fields: []*field.Data{
			{Name: "Name"},
			{Name: "Date"},
		},
		TitleLine:   "{*Name*}: {*Date*}",
		OutputLines: []string{"{*Name*}", "{*Date*}"},
	})
	if err != nil {
		t.Fatal(err)
	}
	return nf
}

func TestNewNodeGeneratesUID(t *testing.T) {
	nf := testFormat(t)
	a := NewNode(nf, nil)
	b := NewNode(nf, nil)
	if a.UID == "" || a.UID == b.UID {
		t.Errorf("uids %q %q", a.UID, b.UID)
	}
	for _, r := range a.UID {
		if r == '-' {
			t.Errorf("uid %q contains a dash", a.UID)
		}
	}
}

func TestTitleDelegation(t *testing.T) {
	nf := testFormat(t)
	n := NewNode(nf, &Record{UID: "n1", Data: map[string]string{
		"Name": "Trip", "Date": "2024-01-01",
	}})
	if got := n.Title(); got != "Trip: 2024-01-01" {
		t.Errorf("got %q", got)
	}
	// unchanged title is a no-op
	if n.SetTitle("Trip: 2024-01-01") {
		t.Error("unchanged title reported as changed")
	}
	if !n.SetTitle("Hike: 2024-02-02") {
		t.Error("title change failed")
	}
	if n.Data["Name"] != "Hike" || n.Data["Date"] != "2024-02-02" {
		t.Errorf("data %v", n.Data)
	}
	want := []string{"Hike", "2024-02-02"}
	if diff := cmp.Diff(want, n.Output(false, false)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestLinkChildren(t *testing.T) {
	nf := testFormat(t)
	m := NewModel()
	m.Add(NewNode(nf, &Record{UID: "root", Children: []string{"a", "b"}}))
	m.Add(NewNode(nf, &Record{UID: "a"}))
	m.Add(NewNode(nf, &Record{UID: "b", Children: []string{"c"}}))
	m.Add(NewNode(nf, &Record{UID: "c"}))
	if err := m.LinkAll(); err != nil {
		t.Fatal(err)
	}
	roots := m.Roots()
	if len(roots) != 1 || roots[0].UID != "root" {
		t.Fatalf("roots %v", roots)
	}
	var uids []string
	roots[0].Descend(func(n *Node) { uids = append(uids, n.UID) })
	want := []string{"root", "a", "b", "c"}
	if diff := cmp.Diff(want, uids); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestLinkChildrenUnknownUID(t *testing.T) {
	nf := testFormat(t)
	m := NewModel()
	m.Add(NewNode(nf, &Record{UID: "root", Children: []string{"nope"}}))
	if err := m.LinkAll(); err == nil {
		t.Error("expected unknown uid error")
	}
}

func TestRecordRoundTrip(t *testing.T) {
	nf := testFormat(t)
	m := NewModel()
	m.Add(NewNode(nf, &Record{
		UID:      "root",
		Data:     map[string]string{"Name": "Top"},
		Children: []string{"a"},
	}))
	m.Add(NewNode(nf, &Record{UID: "a", Data: map[string]string{"Name": "Kid"}}))
	if err := m.LinkAll(); err != nil {
		t.Fatal(err)
	}
	root, _ := m.Node("root")
	want := &Record{
		Format:   "TRIP",
		UID:      "root",
		Data:     map[string]string{"Name": "Top"},
		Children: []string{"a"},
	}
	if diff := cmp.Diff(want, root.Record()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestSpotsAndParents(t *testing.T) {
	nf := testFormat(t)
	m := NewModel()
	// shared sits under both root1 and root2
	m.Add(NewNode(nf, &Record{UID: "root1", Children: []string{"shared"}}))
	m.Add(NewNode(nf, &Record{UID: "root2", Children: []string{"shared"}}))
	m.Add(NewNode(nf, &Record{UID: "shared"}))
	if err := m.LinkAll(); err != nil {
		t.Fatal(err)
	}
	m.GenerateSpots()
	shared, _ := m.Node("shared")
	if got := len(shared.Spots()); got != 2 {
		t.Fatalf("spots %d", got)
	}
	parents := map[string]bool{}
	for _, p := range shared.Parents() {
		if p != nil {
			parents[p.UID] = true
		}
	}
	if !parents["root1"] || !parents["root2"] {
		t.Errorf("parents %v", parents)
	}
	root1, _ := m.Node("root1")
	ps := root1.Parents()
	if len(ps) != 1 || ps[0] != nil {
		t.Errorf("root parents %v", ps)
	}
}

func TestRemoveChild(t *testing.T) {
	nf := testFormat(t)
	parent := NewNode(nf, nil)
	child := NewNode(nf, nil)
	parent.AppendChild(child)
	if !parent.RemoveChild(child) {
		t.Error("removal failed")
	}
	if parent.RemoveChild(child) {
		t.Error("second removal should report false")
	}
	if parent.NumChildren() != 0 {
		t.Errorf("children %d", parent.NumChildren())
	}
}
