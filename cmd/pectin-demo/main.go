package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/zoobzio/capitan"

	"github.com/goliatone/go-pectin/pkg/bean"
	"github.com/goliatone/go-pectin/pkg/config"
	"github.com/goliatone/go-pectin/pkg/form"
	"github.com/goliatone/go-pectin/pkg/format"
	"github.com/goliatone/go-pectin/pkg/validation"
	"github.com/goliatone/go-pectin/pkg/validation/ruleset"
	"github.com/goliatone/go-pectin/pkg/validationbind"
	"github.com/goliatone/go-pectin/pkg/widget/term"
)

const defaultRules = `
fields:
  name:
    - rule: notBlank
      message: Tell us your name
  email:
    - rule: required
      message: Email is required
    - tag: email
  plan:
    - rule: oneOf
      param: [solo, team]
  seats:
    - rule: range
      param: [2, 50]
      when: plan == "team"
  tags:
    - rule: maxLength
      param: 12
      each: true
      severity: warning
`

type signup struct {
	Name       string
	Email      string
	Plan       string
	Seats      int
	Newsletter bool
	Tags       []string
}

func main() {
	configPath := flag.String("config", "", "config file (defaults to $PECTIN_CONFIG or ./pectin.*)")
	rulesPath := flag.String("rules", "", "rule set YAML (overrides config rules.path)")
	audit := flag.Bool("audit", false, "print validation and bean events")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *rulesPath != "" {
		cfg.Rules.Path = *rulesPath
	}
	if *audit {
		hookAudit()
	}
	defer capitan.Shutdown()

	if err := run(context.Background(), cfg); err != nil {
		if errors.Is(err, term.ErrAborted) {
			fmt.Println("Aborted.")
			return
		}
		log.Fatalf("Demo failed: %v", err)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	provider := bean.NewProvider[signup](cfg.ProviderOptions()...)
	provider.SetBean(&signup{Plan: "solo", Seats: 1})

	f, seats, err := buildForm(provider)
	if err != nil {
		return err
	}
	defer f.Dispose()

	vb, err := validationbind.NewBinder(nil, cfg.BinderOptions(nil)...)
	if err != nil {
		return fmt.Errorf("binder: %w", err)
	}
	defer vb.Dispose()

	if err := applyRules(cfg.Rules.Path, vb.Manager(), f); err != nil {
		return err
	}
	validation.ValidateField(vb.Manager(), seats.Text()).Using(seats.TextValidator())

	driver := term.NewSurveyDriver(os.Stdin, os.Stdout)
	session, err := term.NewSession(f, vb,
		term.WithDriver(driver),
		term.WithTitle("name", "Name"),
		term.WithTitle("email", "Email"),
		term.WithTitle("plan", "Plan (solo or team)"),
		term.WithTitle("seats", "Seats"),
		term.WithTitle("newsletter", "Subscribe to the newsletter?"),
		term.WithTitle("tags", "Interests"),
	)
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}

	for {
		valid, err := session.Run(ctx)
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Println(session.Summary())
		if valid {
			break
		}
		again, err := driver.Toggle(ctx, term.Question{Message: "Fix the highlighted fields?"}, true)
		if err != nil {
			return err
		}
		if !again {
			provider.Revert()
			fmt.Println("Changes discarded.")
			return nil
		}
	}

	if !provider.AutoCommit() {
		provider.Commit()
	}
	fmt.Printf("Saved: %+v\n", *provider.Bean())
	return nil
}

func buildForm(p *bean.Provider[signup]) (*form.Form, *form.FormattedField[int], error) {
	f := form.New("Sign up")

	name, err := bean.ValueModel[string](p, "name")
	if err != nil {
		return nil, nil, err
	}
	email, err := bean.ValueModel[string](p, "email")
	if err != nil {
		return nil, nil, err
	}
	plan, err := bean.ValueModel[string](p, "plan")
	if err != nil {
		return nil, nil, err
	}
	seatCount, err := bean.ValueModel[int](p, "seats")
	if err != nil {
		return nil, nil, err
	}
	newsletter, err := bean.ValueModel[bool](p, "newsletter")
	if err != nil {
		return nil, nil, err
	}
	tags, err := bean.ListModel[string](p, "tags")
	if err != nil {
		return nil, nil, err
	}

	form.BindField(f, "name", name)
	form.BindField(f, "email", email)
	form.BindField(f, "plan", plan)
	seats := form.NewFormattedField(f, "seats", seatCount, format.Int())
	form.BindField(f, "newsletter", newsletter)
	form.BindListField(f, "tags", tags)
	return f, seats, nil
}

func applyRules(path string, m *validation.Manager, f *form.Form) error {
	if path == "" {
		return ruleset.Apply([]byte(defaultRules), m, f)
	}
	doc, err := ruleset.Load(path)
	if err != nil {
		return fmt.Errorf("rules: %w", err)
	}
	return doc.Apply(m, f)
}

func hookAudit() {
	capitan.Hook(validation.FieldValidated, func(_ context.Context, e *capitan.Event) {
		field, _ := validation.KeyField.From(e)
		outcome, _ := validation.KeyOutcome.From(e)
		if field == "" {
			return
		}
		log.Printf("[AUDIT] %s validated: %s", field, outcome)
	})
	capitan.Hook(bean.BeanCommitted, func(_ context.Context, e *capitan.Event) {
		typ, _ := bean.KeyBean.From(e)
		log.Printf("[AUDIT] %s committed", typ)
	})
	capitan.Hook(bean.BeanReverted, func(_ context.Context, e *capitan.Event) {
		typ, _ := bean.KeyBean.From(e)
		log.Printf("[AUDIT] %s reverted", typ)
	})
}
