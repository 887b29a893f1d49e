package bean_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-pectin/pkg/bean"
	"github.com/goliatone/go-pectin/pkg/list"
	"github.com/goliatone/go-pectin/pkg/testsupport"
	"github.com/goliatone/go-pectin/pkg/value"
)

type nested struct {
	String string
}

type address struct {
	City string
}

type root struct {
	String     string
	NestedBean *nested
	Tags       []string
	Age        int `bean:"years"`
	Address    address
	Secret     string `bean:"-"`
}

func TestNestedPropertyFollowsParent(t *testing.T) {
	t.Parallel()

	p := bean.NewProvider[root]()
	p.SetBean(&root{})

	str := bean.MustValueModel[string](p, "nestedBean.string")
	if str.Value() != "" || str.Mutable() {
		t.Fatalf("expected empty immutable model, got %q mutable=%v", str.Value(), str.Mutable())
	}

	var changes []value.Change[string]
	str.OnChange(func(c value.Change[string]) { changes = append(changes, c) })

	str.SetValue("ignored")
	if len(changes) != 0 {
		t.Fatalf("write to unresolved path fired %d changes", len(changes))
	}

	parent := bean.MustValueModel[*nested](p, "nestedBean")
	parent.SetValue(&nested{String: "abc"})

	if diff := cmp.Diff([]value.Change[string]{{Old: "", New: "abc"}}, changes); diff != "" {
		t.Fatalf("changes mismatch (-want +got):\n%s", diff)
	}
	if !str.Mutable() {
		t.Fatalf("expected nested model to become mutable")
	}
}

func TestUnknownPropertySuggestsName(t *testing.T) {
	t.Parallel()

	p := bean.NewProvider[root]()
	_, err := bean.ValueModel[string](p, "strng")
	if !errors.Is(err, bean.ErrUnknownProperty) {
		t.Fatalf("expected ErrUnknownProperty, got %v", err)
	}
	var unknown *bean.UnknownPropertyError
	if !errors.As(err, &unknown) || unknown.Suggestion != "string" {
		t.Fatalf("expected suggestion %q, got %v", "string", err)
	}

	if _, err := bean.ValueModel[string](p, "secret"); !errors.Is(err, bean.ErrUnknownProperty) {
		t.Fatalf("expected excluded field to be unknown, got %v", err)
	}
	if _, err := bean.ValueModel[string](p, "string.length"); !errors.Is(err, bean.ErrUnknownProperty) {
		t.Fatalf("expected path through scalar to be unknown, got %v", err)
	}
}

func TestModelTypeMustMatchProperty(t *testing.T) {
	t.Parallel()

	p := bean.NewProvider[root]()
	_, err := bean.ValueModel[string](p, "years")
	if !errors.Is(err, bean.ErrIncorrectPropertyType) {
		t.Fatalf("expected ErrIncorrectPropertyType, got %v", err)
	}
	if !strings.Contains(err.Error(), "int") {
		t.Fatalf("expected declared type in message, got %q", err)
	}
	if _, err := bean.ValueModel[int](p, "years"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSamePathReturnsSameModel(t *testing.T) {
	t.Parallel()

	p := bean.NewProvider[root]()
	a := bean.MustValueModel[string](p, "string")
	b := bean.MustValueModel[string](p, "string")
	if a != b {
		t.Fatalf("expected cached model")
	}
}

func TestBufferedCommitAndRevert(t *testing.T) {
	t.Parallel()

	b := &root{String: "before", Age: 30}
	p := bean.NewProvider[root]()
	p.SetBean(b)

	name := bean.MustValueModel[string](p, "string")
	age := bean.MustValueModel[int](p, "years")

	name.SetValue("after")
	if b.String != "before" {
		t.Fatalf("buffered write leaked into bean: %q", b.String)
	}
	if !p.Dirty().Value() || !name.Dirty() || age.Dirty() {
		t.Fatalf("unexpected dirty state provider=%v name=%v age=%v", p.Dirty().Value(), name.Dirty(), age.Dirty())
	}

	p.Revert()
	if name.Value() != "before" || p.Dirty().Value() {
		t.Fatalf("revert failed: %q dirty=%v", name.Value(), p.Dirty().Value())
	}

	name.SetValue("after")
	age.SetValue(31)
	p.Commit()
	if diff := cmp.Diff(root{String: "after", Age: 31}, *b); diff != "" {
		t.Fatalf("bean mismatch (-want +got):\n%s", diff)
	}
	if p.Dirty().Value() {
		t.Fatalf("expected clean provider after commit")
	}
}

func TestAutoCommitWritesThrough(t *testing.T) {
	t.Parallel()

	b := &root{}
	p := bean.NewProvider[root](bean.WithAutoCommit())
	name := bean.MustValueModel[string](p, "string")
	p.SetBean(b)

	name.SetValue("live")
	if b.String != "live" {
		t.Fatalf("expected write-through, got %q", b.String)
	}
	if p.Dirty().Value() {
		t.Fatalf("auto-commit provider must not be dirty")
	}
}

func TestModelsCreatedAfterSetBeanReadBean(t *testing.T) {
	t.Parallel()

	p := bean.NewProvider[root]()
	p.SetBean(&root{String: "loaded", NestedBean: &nested{String: "inner"}})

	if got := bean.MustValueModel[string](p, "string").Value(); got != "loaded" {
		t.Fatalf("expected loaded, got %q", got)
	}
	inner := bean.MustValueModel[string](p, "nestedBean.string")
	if inner.Value() != "inner" || !inner.Mutable() {
		t.Fatalf("expected mutable inner model, got %q mutable=%v", inner.Value(), inner.Mutable())
	}
}

func TestValueStructPropertiesAreReadOnly(t *testing.T) {
	t.Parallel()

	p := bean.NewProvider[root]()
	p.SetBean(&root{Address: address{City: "Lisbon"}})

	city := bean.MustValueModel[string](p, "address.city")
	if city.Value() != "Lisbon" {
		t.Fatalf("expected Lisbon, got %q", city.Value())
	}
	if city.Mutable() {
		t.Fatalf("expected property under value struct to be read-only")
	}
}

func TestListModelBuffersEdits(t *testing.T) {
	t.Parallel()

	b := &root{Tags: []string{"go"}}
	p := bean.NewProvider[root]()
	p.SetBean(b)

	tags, err := bean.ListModel[string](p, "tags")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var kinds []list.Kind
	tags.OnListChange(func(c list.Change[string]) { kinds = append(kinds, c.Kind) })

	tags.Add("rust")
	if diff := cmp.Diff([]string{"go"}, b.Tags); diff != "" {
		t.Fatalf("bean changed before commit (-want +got):\n%s", diff)
	}
	p.Commit()
	if diff := cmp.Diff([]string{"go", "rust"}, b.Tags); diff != "" {
		t.Fatalf("tags mismatch (-want +got):\n%s", diff)
	}

	p.SetBean(&root{Tags: []string{"zig"}})
	if diff := cmp.Diff([]string{"zig"}, tags.Values()); diff != "" {
		t.Fatalf("reload mismatch (-want +got):\n%s", diff)
	}
	if len(kinds) != 2 {
		t.Fatalf("expected add and reload events, got %v", kinds)
	}
}

func TestSamplePersonRevertsNestedEdit(t *testing.T) {
	t.Parallel()

	person := testsupport.NewPerson()
	p := bean.NewProvider[testsupport.Person]()
	p.SetBean(person)

	city := bean.MustValueModel[string](p, "address.city")
	rec, _ := testsupport.RecordChanges[string](city)

	city.SetValue("Paris")
	if person.Address.City != "London" {
		t.Fatalf("buffered edit leaked into bean")
	}
	p.Revert()

	testsupport.AssertEqual(t, []string{"Paris", "London"}, testsupport.NewValues(rec.Events()))
	if _, err := bean.ValueModel[string](p, "nick"); err != nil {
		t.Fatalf("expected tagged property, got %v", err)
	}
	if _, err := bean.ValueModel[string](p, "nickname"); err == nil {
		t.Fatalf("expected Go-derived name to be shadowed by the tag")
	}
}
