package form_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-pectin/pkg/condition"
	"github.com/goliatone/go-pectin/pkg/form"
	"github.com/goliatone/go-pectin/pkg/format"
	"github.com/goliatone/go-pectin/pkg/validation"
	"github.com/goliatone/go-pectin/pkg/value"
)

func TestFieldsKeepDeclarationOrder(t *testing.T) {
	t.Parallel()

	f := form.New("signup")
	form.NewField(f, "name", "")
	form.NewListField(f, "tags", []string{"go"})
	form.NewField(f, "age", 0)

	if diff := cmp.Diff([]string{"name", "tags", "age"}, f.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	field, ok := f.Field("tags")
	if !ok {
		t.Fatalf("expected tags field")
	}
	if diff := cmp.Diff([]string{"go"}, field.AnyValue()); diff != "" {
		t.Fatalf("tags mismatch (-want +got):\n%s", diff)
	}
}

func TestDuplicateFieldPanics(t *testing.T) {
	t.Parallel()

	f := form.New("signup")
	form.NewField(f, "name", "")
	defer func() {
		if recover() == nil {
			t.Fatalf("expected duplicate field to panic")
		}
	}()
	form.NewField(f, "name", 1)
}

type frozen struct {
	*value.Holder[string]
}

func (frozen) Mutable() bool { return false }

func TestBoundFieldForwardsToSource(t *testing.T) {
	t.Parallel()

	f := form.New("profile")
	source := value.NewHolder("ada")
	name := form.BindField[string](f, "name", source)

	var got []string
	name.OnChange(func(c value.Change[string]) { got = append(got, c.New) })
	source.SetValue("grace")
	name.SetValue("linus")

	if diff := cmp.Diff([]string{"grace", "linus"}, got); diff != "" {
		t.Fatalf("changes mismatch (-want +got):\n%s", diff)
	}

	locked := form.BindField[string](f, "locked", frozen{value.NewHolder("x")})
	locked.SetValue("y")
	if locked.Value() != "x" || locked.Mutable() {
		t.Fatalf("immutable field accepted a write")
	}
}

func TestWhenBuildsConditionFromFields(t *testing.T) {
	t.Parallel()

	f := form.New("billing")
	plan := form.NewField(f, "plan", "free")
	seats := form.NewField(f, "seats", 1)
	form.NewListField[string](f, "coupons", nil)

	cond, err := f.When(`plan == "pro" && seats > 5 || coupons`)
	if err != nil {
		t.Fatalf("When: %v", err)
	}
	var flips []bool
	cond.OnChange(func(c value.Change[bool]) { flips = append(flips, c.New) })

	plan.SetValue("pro")
	seats.SetValue(10)
	plan.SetValue("free")
	f.Dispose()
	plan.SetValue("pro")

	if diff := cmp.Diff([]bool{true, false}, flips); diff != "" {
		t.Fatalf("flips mismatch (-want +got):\n%s", diff)
	}

	_, err = f.When("missing == 1")
	if !errors.Is(err, condition.ErrUnknownIdentifier) {
		t.Fatalf("expected ErrUnknownIdentifier, got %v", err)
	}
}

func TestApplyRuleGatesByCondition(t *testing.T) {
	t.Parallel()

	f := form.New("signup")
	m := validation.NewManager()
	email := form.NewField(f, "email", "")
	newsletter := form.NewField(f, "newsletter", false)

	required := validation.Func[any](func(v any, c *validation.Collector) {
		if s, _ := v.(string); strings.TrimSpace(s) == "" {
			c.Error("email required")
		}
	})
	if err := email.ApplyRule(m, required, newsletter); err != nil {
		t.Fatalf("ApplyRule: %v", err)
	}

	if !m.Validate() {
		t.Fatalf("expected valid while newsletter is off")
	}
	newsletter.SetValue(true)
	if m.Valid().Value() {
		t.Fatalf("expected invalid once newsletter is on")
	}
	email.SetValue("ada@example.com")
	if !m.Valid().Value() {
		t.Fatalf("expected valid with an email")
	}
}

func TestFormattedFieldParsesText(t *testing.T) {
	t.Parallel()

	f := form.New("order")
	qty := value.NewHolder(1)
	field := form.NewFormattedField[int](f, "qty", qty, format.Int())

	if field.Text().Value() != "1" {
		t.Fatalf("expected initial text 1, got %q", field.Text().Value())
	}

	field.Text().SetValue("007")
	if qty.Value() != 7 {
		t.Fatalf("expected value 7, got %d", qty.Value())
	}
	if field.Text().Value() != "007" {
		t.Fatalf("text rewritten while typing: %q", field.Text().Value())
	}

	field.Text().SetValue("seven")
	if qty.Value() != 7 {
		t.Fatalf("KeepValue changed the value to %d", qty.Value())
	}
	if !errors.Is(field.ParseError().Value(), format.ErrParse) {
		t.Fatalf("expected parse error, got %v", field.ParseError().Value())
	}

	qty.SetValue(3)
	if field.Text().Value() != "3" || field.ParseError().Value() != nil {
		t.Fatalf("programmatic update not reflected: %q %v", field.Text().Value(), field.ParseError().Value())
	}
}

func TestFormattedFieldClearValuePolicy(t *testing.T) {
	t.Parallel()

	f := form.New("order")
	qty := value.NewHolder(5)
	field := form.NewFormattedField[int](f, "qty", qty, format.Int(), form.WithPolicy(form.ClearValue))
	field.Text().SetValue("x")
	if qty.Value() != 0 {
		t.Fatalf("expected ClearValue to reset to zero, got %d", qty.Value())
	}
	if field.Text().Value() != "x" {
		t.Fatalf("expected the bad text to stay, got %q", field.Text().Value())
	}
}

func TestFormattedFieldTextValidator(t *testing.T) {
	t.Parallel()

	f := form.New("order")
	m := validation.NewManager()
	field := form.NewFormattedField[int](f, "qty", value.NewHolder(1), format.Int())
	validation.ValidateField(m, field.Text()).Using(field.TextValidator())

	field.Text().SetValue("abc")
	v := validation.FieldValidatorOf(m, field.Text())
	if diff := cmp.Diff([]string{"Must be a valid integer"}, v.Result().Texts()); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}
}

func TestFormattedListField(t *testing.T) {
	t.Parallel()

	f := form.New("scores")
	scores := form.NewFormattedListField(f, "scores", []int{1, 2}, format.Int())
	if diff := cmp.Diff([]string{"1", "2"}, scores.Texts()); diff != "" {
		t.Fatalf("texts mismatch (-want +got):\n%s", diff)
	}

	err := scores.SetTexts([]string{"3", "x"})
	if !errors.Is(err, format.ErrParse) {
		t.Fatalf("expected parse error, got %v", err)
	}
	if diff := cmp.Diff([]int{1, 2}, scores.Values()); diff != "" {
		t.Fatalf("KeepValue changed the list (-want +got):\n%s", diff)
	}

	lenient := form.NewFormattedListField(f, "lenient", nil, format.Int(), form.WithPolicy(form.ClearValue))
	if err := lenient.SetTexts([]string{"3", "x", "4"}); err == nil {
		t.Fatalf("expected parse error")
	}
	if diff := cmp.Diff([]int{3, 4}, lenient.Values()); diff != "" {
		t.Fatalf("ClearValue list mismatch (-want +got):\n%s", diff)
	}
}

type switchable struct {
	*value.Holder[string]
	state *value.Holder[bool]
}

func (s switchable) Mutable() bool                   { return s.state.Value() }
func (s switchable) MutableState() value.Model[bool] { return s.state }

func TestMutableStateFollowsSource(t *testing.T) {
	t.Parallel()

	f := form.New("profile")
	state := value.NewHolder(false)
	city := form.BindField[string](f, "city", switchable{value.NewHolder(""), state})

	var flips []bool
	city.MutableState().OnChange(func(c value.Change[bool]) { flips = append(flips, c.New) })
	state.SetValue(true)
	if diff := cmp.Diff([]bool{true}, flips); diff != "" {
		t.Fatalf("mutability mismatch (-want +got):\n%s", diff)
	}

	plain := form.NewField(f, "name", "")
	locked := form.BindField[string](f, "locked", frozen{value.NewHolder("x")})
	if !plain.MutableState().Value() || locked.MutableState().Value() {
		t.Fatalf("expected constant mutability for plain sources")
	}
}
