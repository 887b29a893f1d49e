package pectin_test

import (
	"testing"

	"github.com/goliatone/go-pectin"
	"github.com/goliatone/go-pectin/pkg/condition"
	"github.com/goliatone/go-pectin/pkg/form"
	"github.com/goliatone/go-pectin/pkg/testsupport"
	"github.com/goliatone/go-pectin/pkg/validation/rules"
	"github.com/goliatone/go-pectin/pkg/widget"
)

func TestGatedRuleFollowsCondition(t *testing.T) {
	t.Parallel()

	b, err := pectin.NewBinder()
	if err != nil {
		t.Fatalf("NewBinder: %v", err)
	}
	defer b.Dispose()

	name := pectin.NewValue("")
	required := pectin.NewValue(true)
	if err := pectin.Validate(b, name).Using(rules.NotBlank()).When(condition.Is[bool](required, true)); err != nil {
		t.Fatalf("When: %v", err)
	}

	box := widget.NewTextBox("")
	edits, _ := testsupport.RecordChanges[string](name)
	pectin.BindValue(b, name).To(box)
	label := widget.NewLabel("")
	pectin.BindValidation(b, name).To(label)

	if b.Manager().Validate() {
		t.Fatalf("expected invalid form while the rule is enabled")
	}
	if label.Text() == "" {
		t.Fatalf("expected message on label")
	}

	required.SetValue(false)
	if !b.Manager().Valid().Value() {
		t.Fatalf("expected valid form after disabling the rule")
	}
	if label.Text() != "" {
		t.Fatalf("expected cleared label, got %q", label.Text())
	}

	box.Type("ada")
	testsupport.AssertEqual(t, []string{"ada"}, testsupport.NewValues(edits.Events()))
}

func TestApplyRulesToForm(t *testing.T) {
	t.Parallel()

	b, err := pectin.NewBinder()
	if err != nil {
		t.Fatalf("NewBinder: %v", err)
	}
	f := pectin.NewForm("signup")
	defer f.Dispose()

	raw := []byte(`
fields:
  email:
    - tag: email
`)
	email := pectin.NewValue("nope")
	bound := form.BindField(f, "email", email)
	if err := pectin.ApplyRules(b, f, raw); err != nil {
		t.Fatalf("ApplyRules: %v", err)
	}
	if b.Manager().Validate() {
		t.Fatalf("expected invalid email")
	}
	bound.SetValue("ada@example.com")
	if !b.Manager().Valid().Value() {
		t.Fatalf("expected valid email")
	}
}
