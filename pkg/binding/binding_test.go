package binding_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-pectin/pkg/binding"
	"github.com/goliatone/go-pectin/pkg/condition"
	"github.com/goliatone/go-pectin/pkg/event"
	"github.com/goliatone/go-pectin/pkg/list"
	"github.com/goliatone/go-pectin/pkg/value"
)

type stubBox struct {
	value    string
	pushed   []string
	handlers event.Registry[string]
}

func (s *stubBox) SetValue(v string) {
	s.value = v
	s.pushed = append(s.pushed, v)
}

func (s *stubBox) OnValueChange(handler func(string)) event.Registration {
	return s.handlers.Add(handler)
}

func (s *stubBox) Type(v string) {
	s.value = v
	s.handlers.Fire(v)
}

type stubList struct {
	pushed   [][]string
	handlers event.Registry[[]string]
}

func (s *stubList) SetValues(values []string) { s.pushed = append(s.pushed, values) }

func (s *stubList) OnValuesChange(handler func([]string)) event.Registration {
	return s.handlers.Add(handler)
}

type stubToggle struct {
	enabled []bool
	visible []bool
}

func (s *stubToggle) SetEnabled(v bool) { s.enabled = append(s.enabled, v) }
func (s *stubToggle) SetVisible(v bool) { s.visible = append(s.visible, v) }

type readOnly struct {
	*value.Holder[string]
}

func (readOnly) Mutable() bool { return false }

func TestRegisterPushesCurrentValue(t *testing.T) {
	t.Parallel()

	b := binding.NewBinder()
	name := value.NewHolder("ada")
	box := &stubBox{}
	binding.BindValueOf[string](b, name).To(box)

	if diff := cmp.Diff([]string{"ada"}, box.pushed); diff != "" {
		t.Fatalf("pushed mismatch (-want +got):\n%s", diff)
	}
	name.SetValue("grace")
	if diff := cmp.Diff([]string{"ada", "grace"}, box.pushed); diff != "" {
		t.Fatalf("pushed mismatch (-want +got):\n%s", diff)
	}
}

func TestWidgetEditDoesNotEcho(t *testing.T) {
	t.Parallel()

	b := binding.NewBinder()
	name := value.NewHolder("")
	source := &stubBox{}
	mirror := &stubBox{}
	binding.BindValueOf[string](b, name).To(source)
	binding.BindValueOf[string](b, name).To(mirror)

	changes := 0
	name.OnChange(func(value.Change[string]) { changes++ })

	before := len(source.pushed)
	source.Type("typed")

	if changes != 1 {
		t.Fatalf("expected one model change, got %d", changes)
	}
	if name.Value() != "typed" {
		t.Fatalf("expected model to hold the edit, got %q", name.Value())
	}
	if len(source.pushed) != before {
		t.Fatalf("edit echoed back to its widget: %v", source.pushed)
	}
	if diff := cmp.Diff([]string{"", "typed"}, mirror.pushed); diff != "" {
		t.Fatalf("mirror mismatch (-want +got):\n%s", diff)
	}
}

func TestReadOnlyModelRejectsEdit(t *testing.T) {
	t.Parallel()

	b := binding.NewBinder()
	model := readOnly{value.NewHolder("fixed")}
	box := &stubBox{}
	fb := binding.BindValueOf[string](b, model).To(box)

	if err := fb.UpdateModel("x"); !errors.Is(err, binding.ErrReadOnly) {
		t.Fatalf("expected ErrReadOnly, got %v", err)
	}
	box.Type("edited")
	if model.Value() != "fixed" {
		t.Fatalf("read-only model changed to %q", model.Value())
	}
	if box.value != "fixed" {
		t.Fatalf("expected widget to be reset, got %q", box.value)
	}
}

func TestGuardResetsAfterPanic(t *testing.T) {
	t.Parallel()

	var g binding.Guard
	func() {
		defer func() { _ = recover() }()
		g.Run(func() {
			g.Run(func() {
				if !g.Active() {
					t.Errorf("expected nested region to be active")
				}
			})
			panic("boom")
		})
	}()
	if g.Active() {
		t.Fatalf("guard still active after panic")
	}
}

func TestListBindingDoesNotEcho(t *testing.T) {
	t.Parallel()

	b := binding.NewBinder()
	tags := list.New([]string{"go"})
	widget := &stubList{}
	lb := binding.BindListOf[string](b, tags).To(widget)

	widget.handlers.Fire([]string{"go", "rust"})
	if diff := cmp.Diff([]string{"go", "rust"}, tags.Values()); diff != "" {
		t.Fatalf("model mismatch (-want +got):\n%s", diff)
	}
	if len(widget.pushed) != 1 {
		t.Fatalf("list edit echoed back: %v", widget.pushed)
	}

	if err := lb.UpdateModel(func(m list.Mutable[string]) { m.Add("zig") }); err != nil {
		t.Fatalf("UpdateModel: %v", err)
	}
	if len(widget.pushed) != 1 {
		t.Fatalf("programmatic update echoed back: %v", widget.pushed)
	}

	tags.RemoveAt(0)
	if diff := cmp.Diff([][]string{{"go"}, {"rust", "zig"}}, widget.pushed); diff != "" {
		t.Fatalf("pushed mismatch (-want +got):\n%s", diff)
	}
}

func TestConditionBindings(t *testing.T) {
	t.Parallel()

	b := binding.NewBinder()
	agreed := value.NewHolder(false)
	submit := &stubToggle{}
	hint := &stubToggle{}

	b.Enable(submit).When(agreed)
	b.Hide(hint).When(agreed)
	b.Disable(submit).When(condition.Not(agreed))

	agreed.SetValue(true)

	if diff := cmp.Diff([]bool{false, false, true, true}, submit.enabled); diff != "" {
		t.Fatalf("enabled mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]bool{true, false}, hint.visible); diff != "" {
		t.Fatalf("visible mismatch (-want +got):\n%s", diff)
	}
}

func TestLabelFormatsValue(t *testing.T) {
	t.Parallel()

	b := binding.NewBinder()
	count := value.NewHolder(2)
	label := &stubLabel{}
	binding.BindValueOf[int](b, count).ToLabel(label)
	binding.BindValueOf[int](b, count).ToLabel(label, func(v int) string {
		if v == 1 {
			return "1 item"
		}
		return "many items"
	})
	count.SetValue(1)

	if diff := cmp.Diff([]string{"2", "many items", "1", "1 item"}, label.texts); diff != "" {
		t.Fatalf("texts mismatch (-want +got):\n%s", diff)
	}
}

type stubLabel struct {
	texts []string
}

func (s *stubLabel) SetText(text string) { s.texts = append(s.texts, text) }

func TestBinderDisposeCascades(t *testing.T) {
	t.Parallel()

	b := binding.NewBinder()
	name := value.NewHolder("")
	box := &stubBox{}
	fb := binding.BindValueOf[string](b, name).To(box)
	if len(b.Bindings()) != 1 {
		t.Fatalf("expected one binding")
	}

	b.Dispose()
	b.Dispose()
	if !fb.Disposed() || !b.Disposed() {
		t.Fatalf("expected binder and binding to be disposed")
	}

	name.SetValue("after")
	box.Type("edit")
	if diff := cmp.Diff([]string{""}, box.pushed); diff != "" {
		t.Fatalf("disposed binding still pushes (-want +got):\n%s", diff)
	}
	if name.Value() != "after" {
		t.Fatalf("disposed binding still writes the model")
	}

	late := binding.NewFieldBinding[string](name, box.SetValue)
	b.Register(late)
	if !late.Disposed() {
		t.Fatalf("binding registered after dispose must be disposed")
	}
}

func TestUpdateTargetsRepushes(t *testing.T) {
	t.Parallel()

	b := binding.NewBinder()
	name := value.NewHolder("x")
	box := &stubBox{}
	binding.BindValueOf[string](b, name).To(box)
	b.UpdateTargets()
	if diff := cmp.Diff([]string{"x", "x"}, box.pushed); diff != "" {
		t.Fatalf("pushed mismatch (-want +got):\n%s", diff)
	}
}

func TestAdoptOwnsWithoutPushing(t *testing.T) {
	t.Parallel()

	b := binding.NewBinder()
	name := value.NewHolder("ada")
	box := &stubBox{}
	fb := binding.NewFieldBinding[string](name, box.SetValue)
	if !b.Adopt(fb) {
		t.Fatalf("expected binder to adopt the binding")
	}
	if len(box.pushed) != 0 {
		t.Fatalf("adopt must not push, got %v", box.pushed)
	}

	b.Dispose()
	if !fb.Disposed() {
		t.Fatalf("adopted binding must be disposed with its binder")
	}
	if b.Adopt(binding.NewFieldBinding[string](name, box.SetValue)) {
		t.Fatalf("expected disposed binder to refuse the binding")
	}
}
