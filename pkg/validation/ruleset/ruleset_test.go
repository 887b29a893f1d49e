package ruleset_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-pectin/pkg/form"
	"github.com/goliatone/go-pectin/pkg/validation"
	"github.com/goliatone/go-pectin/pkg/validation/ruleset"
)

const signupRules = `
fields:
  email:
    - rule: required
      message: Email is required
    - tag: email
      message: Not an email
  seats:
    - rule: range
      param: [1, 50]
      when: plan == "team"
  nickname:
    - rule: minLength
      param: 3
      severity: warning
  tags:
    - rule: notBlank
      each: true
    - rule: oneOf
      param: [go, rust]
      each: true
      unless: plan == "team"
`

type signup struct {
	form     *form.Form
	email    *form.FieldModel[string]
	plan     *form.FieldModel[string]
	seats    *form.FieldModel[int]
	nickname *form.FieldModel[string]
	tags     *form.ListFieldModel[string]
}

func newSignup() signup {
	f := form.New("signup")
	return signup{
		form:     f,
		email:    form.NewField(f, "email", ""),
		plan:     form.NewField(f, "plan", "solo"),
		seats:    form.NewField(f, "seats", 0),
		nickname: form.NewField(f, "nickname", ""),
		tags:     form.NewListField(f, "tags", []string{"go"}),
	}
}

func messages(m *validation.Manager, field any) []string {
	v, ok := m.Lookup(field)
	if !ok {
		return nil
	}
	return v.Result().Texts()
}

func TestApplyWiresRulesToFields(t *testing.T) {
	t.Parallel()

	s := newSignup()
	m := validation.NewManager()
	if err := ruleset.Apply([]byte(signupRules), m, s.form); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if m.Validate() {
		t.Fatalf("expected invalid form")
	}
	if diff := cmp.Diff([]string{"Email is required", "Not an email"}, messages(m, s.email)); diff != "" {
		t.Fatalf("email mismatch (-want +got):\n%s", diff)
	}
	if got := messages(m, s.seats); len(got) != 0 {
		t.Fatalf("seats rule should be gated off, got %v", got)
	}

	s.plan.SetValue("team")
	if diff := cmp.Diff([]string{"Must be between 1 and 50"}, messages(m, s.seats)); diff != "" {
		t.Fatalf("seats mismatch (-want +got):\n%s", diff)
	}

	s.nickname.SetValue("al")
	v, _ := m.Lookup(s.nickname)
	if !v.Result().Valid() || !v.Result().Contains(validation.Warning) {
		t.Fatalf("expected a warning only, got %v", v.Result().Messages())
	}
}

func TestApplyEachRulesProducePerRowResults(t *testing.T) {
	t.Parallel()

	s := newSignup()
	m := validation.NewManager()
	if err := ruleset.Apply([]byte(signupRules), m, s.form); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	s.tags.Add("zig", " ")

	tags := validation.ListValidatorOf[string](m, s.tags)
	if diff := cmp.Diff([]int{1, 2}, tags.IndexedResult().Indexes()); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}

	s.plan.SetValue("team")
	if diff := cmp.Diff([]int{2}, tags.IndexedResult().Indexes()); diff != "" {
		t.Fatalf("rows after unless mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyRejectsUnknownField(t *testing.T) {
	t.Parallel()

	s := newSignup()
	err := ruleset.Apply([]byte("fields:\n  phone:\n    - rule: required\n"), validation.NewManager(), s.form)
	if !errors.Is(err, ruleset.ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestRuleValidatorErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		rule ruleset.Rule
		want error
	}{
		{name: "unknown", rule: ruleset.Rule{Rule: "shiny"}, want: ruleset.ErrUnknownRule},
		{name: "empty", rule: ruleset.Rule{}, want: ruleset.ErrUnknownRule},
		{name: "bad length", rule: ruleset.Rule{Rule: "minLength", Param: "many"}, want: ruleset.ErrInvalidParam},
		{name: "bad pattern", rule: ruleset.Rule{Rule: "pattern", Param: "("}, want: ruleset.ErrInvalidParam},
		{name: "bad range", rule: ruleset.Rule{Rule: "range", Param: []any{1}}, want: ruleset.ErrInvalidParam},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tc.rule.Validator(); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestApplyRejectsEachOnScalarField(t *testing.T) {
	t.Parallel()

	s := newSignup()
	err := ruleset.Apply([]byte("fields:\n  email:\n    - rule: required\n      each: true\n"), validation.NewManager(), s.form)
	if !errors.Is(err, ruleset.ErrInvalidParam) {
		t.Fatalf("expected ErrInvalidParam, got %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(path, []byte(signupRules), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	doc, err := ruleset.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(doc.Fields["email"]) != 2 || doc.Fields["seats"][0].When != `plan == "team"` {
		t.Fatalf("unexpected document: %+v", doc.Fields)
	}

	if _, err := ruleset.Parse([]byte("fields:\n  email:\n    - bogus: 1\n")); err == nil {
		t.Fatalf("expected unknown keys to be rejected")
	}
}
