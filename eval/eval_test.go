package eval

import (
	"errors"
	"testing"

	"github.com/outline-format/go-outline/field"
	"github.com/outline-format/go-outline/nodefmt"
	"github.com/outline-format/go-outline/tree"
)

func testNode(t *testing.T, data map[string]string) *tree.Node {
	t.Helper()
	nf, err := nodefmt.New("T", &nodefmt.Data{
		Name: "T",
		Fields: []*field.Data{
			{Name: "Name"},
			{Name: "Qty", Type: "Number"},
			{Name: "Price", Type: "Number"},
			{Name: "Done", Type: "Boolean"},
		},
		TitleLine: "{*Name*}",
	})
	if err != nil {
		t.Fatal(err)
	}
	return tree.NewNode(nf, &tree.Record{UID: "n1", Data: data})
}

func TestRunArithmetic(t *testing.T) {
	n := testNode(t, map[string]string{"Qty": "3", "Price": "2.5"})
	res, err := Run("Qty * Price", n, true)
	if err != nil {
		t.Fatal(err)
	}
	if got, ok := res.(float64); !ok || got != 7.5 {
		t.Errorf("got %v (%T)", res, res)
	}
}

func TestRunFieldFunc(t *testing.T) {
	n := testNode(t, map[string]string{"Name": "box", "Done": "true"})
	res, err := Run(`field("Name") + "!"`, n, true)
	if err != nil {
		t.Fatal(err)
	}
	if res != "box!" {
		t.Errorf("got %v", res)
	}
	res, err = Run("Done ? 1 : 0", n, true)
	if err != nil {
		t.Fatal(err)
	}
	if got, ok := res.(int); !ok || got != 1 {
		t.Errorf("got %v (%T)", res, res)
	}
}

func TestRunHelpers(t *testing.T) {
	n := testNode(t, map[string]string{"Name": "top"})
	child := testNode(t, map[string]string{"Name": "kid"})
	n.AppendChild(child)
	res, err := Run("childcount()", n, true)
	if err != nil {
		t.Fatal(err)
	}
	if got, ok := res.(int); !ok || got != 1 {
		t.Errorf("got %v (%T)", res, res)
	}
	res, err = Run("title()", n, true)
	if err != nil {
		t.Fatal(err)
	}
	if res != "top" {
		t.Errorf("got %v", res)
	}
}

func TestRunBlanks(t *testing.T) {
	n := testNode(t, map[string]string{})
	res, err := Run("Qty", n, true)
	if err != nil {
		t.Fatal(err)
	}
	if got, ok := res.(float64); !ok || got != 0 {
		t.Errorf("got %v (%T)", res, res)
	}
	res, err = Run("Qty", n, false)
	if err != nil {
		t.Fatal(err)
	}
	if res != nil {
		t.Errorf("got %v want nil", res)
	}
}

func TestRunBadData(t *testing.T) {
	n := testNode(t, map[string]string{"Qty": "not a number"})
	if _, err := Run("Qty + 1", n, true); !errors.Is(err, ErrEval) {
		t.Errorf("got %v want ErrEval", err)
	}
}

func TestRunUnknownField(t *testing.T) {
	n := testNode(t, map[string]string{})
	if _, err := Run(`field("Nope")`, n, true); !errors.Is(err, ErrEval) {
		t.Errorf("got %v want ErrEval", err)
	}
}
