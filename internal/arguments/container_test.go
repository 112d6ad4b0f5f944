package arguments

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func names(args []*Argument) []string {
	out := make([]string, 0, len(args))
	for _, a := range args {
		out = append(out, a.Name())
	}
	return out
}

func TestAddDuplicate(t *testing.T) {
	c := NewContainer()
	if err := c.Add(New("class", true, "", "", "")); err != nil {
		t.Fatalf("first Add error: %v", err)
	}
	err := c.Add(New("CLASS", true, "", "", ""))
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("second Add err = %v, want ErrDuplicate", err)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestFromSpecsDuplicate(t *testing.T) {
	_, err := FromSpecs([]Spec{{Name: "a"}, {Name: "A"}})
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("err = %v, want ErrDuplicate", err)
	}
	_, err = FromSpecs([]Spec{{Name: "a"}, {}})
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("err = %v, want ErrMalformed", err)
	}
}

func TestMissingOrder(t *testing.T) {
	c, err := FromSpecs([]Spec{
		{Name: "zeta"},
		{Name: "alpha", Required: boolPtr(false)},
		{Name: "mid"},
	})
	if err != nil {
		t.Fatalf("FromSpecs error: %v", err)
	}
	if diff := cmp.Diff([]string{"ZETA", "MID"}, names(c.Missing())); diff != "" {
		t.Errorf("Missing() mismatch (-want +got):\n%s", diff)
	}
	c.SetValue("Zeta", "")
	if diff := cmp.Diff([]string{"MID"}, names(c.Missing())); diff != "" {
		t.Errorf("Missing() after set mismatch (-want +got):\n%s", diff)
	}
}

func TestAddValues(t *testing.T) {
	c, _ := FromSpecs([]Spec{{Name: "class"}})
	c.AddValues(map[string]string{"CLASS": "Foo", "extra": "bar"})

	a, ok := c.Get("class")
	if !ok || a.Value() != "Foo" {
		t.Fatalf("class = %v, %v", a, ok)
	}
	e, ok := c.Get("EXTRA")
	if !ok {
		t.Fatal("extra argument not created")
	}
	if !e.IsSet() || e.Value() != "bar" {
		t.Errorf("extra: set=%v value=%q", e.IsSet(), e.Value())
	}
	if diff := cmp.Diff([]string{"CLASS", "EXTRA"}, names(c.All())); diff != "" {
		t.Errorf("All() mismatch (-want +got):\n%s", diff)
	}
}

func TestSetValueLastWins(t *testing.T) {
	c := NewContainer()
	c.SetValue("Class", "first")
	c.SetValue("CLASS", "second")
	if c.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", c.Len())
	}
	a, _ := c.Get("class")
	if a.Value() != "second" {
		t.Errorf("Value() = %q, want %q", a.Value(), "second")
	}
}

func TestUpdateNeverOverwrites(t *testing.T) {
	a, _ := FromSpecs([]Spec{
		{Name: "shared", Default: "mine"},
		{Name: "empty"},
	})
	b, _ := FromSpecs([]Spec{
		{Name: "shared", Default: "theirs", Required: boolPtr(false)},
		{Name: "empty", Default: "backfill"},
		{Name: "new", Default: "n"},
	})
	a.Update(b)

	shared, _ := a.Get("shared")
	if shared.Default() != "mine" || !shared.Required() {
		t.Errorf("shared overwritten: default=%q required=%v", shared.Default(), shared.Required())
	}
	empty, _ := a.Get("empty")
	if empty.Default() != "backfill" {
		t.Errorf("empty default = %q, want backfill", empty.Default())
	}
	adopted, _ := a.Get("new")
	theirs, _ := b.Get("new")
	if adopted != theirs {
		t.Error("unknown key should adopt the other container's argument by reference")
	}
	if diff := cmp.Diff([]string{"SHARED", "EMPTY", "NEW"}, names(a.All())); diff != "" {
		t.Errorf("All() mismatch (-want +got):\n%s", diff)
	}
}

func TestUpdateNil(t *testing.T) {
	c := NewContainer()
	c.Update(nil)
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
}

func TestClone(t *testing.T) {
	c, _ := FromSpecs([]Spec{{Name: "x"}})
	cp := c.Clone()
	cp.SetValue("x", "v")
	orig, _ := c.Get("x")
	if orig.IsSet() {
		t.Error("setting a value on the clone leaked into the original")
	}
}

func TestInputMissing(t *testing.T) {
	c, _ := FromSpecs([]Spec{{Name: "a"}, {Name: "b", Required: boolPtr(false)}, {Name: "c"}})
	var asked []string
	err := c.InputMissing(func(a *Argument) (string, error) {
		asked = append(asked, a.Question())
		return "v-" + a.Key(), nil
	})
	if err != nil {
		t.Fatalf("InputMissing error: %v", err)
	}
	want := []string{"Put the 'A' value", "Put the 'C' value"}
	if diff := cmp.Diff(want, asked); diff != "" {
		t.Errorf("questions mismatch (-want +got):\n%s", diff)
	}
	if len(c.Missing()) != 0 {
		t.Errorf("Missing() = %v, want none", names(c.Missing()))
	}

	boom := errors.New("boom")
	d, _ := FromSpecs([]Spec{{Name: "a"}})
	if err := d.InputMissing(func(*Argument) (string, error) { return "", boom }); !errors.Is(err, boom) {
		t.Errorf("err = %v, want wrapped boom", err)
	}
}
