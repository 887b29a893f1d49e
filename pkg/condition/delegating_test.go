package condition_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-pectin/pkg/condition"
	"github.com/goliatone/go-pectin/pkg/value"
)

func TestDelegatingDefaultsToTrue(t *testing.T) {
	t.Parallel()

	d := condition.NewDelegating()
	if !d.Value() || d.Bound() {
		t.Fatalf("unbound condition should be true and unbound")
	}
}

func TestDelegatingFiresImmediatelyOnBind(t *testing.T) {
	t.Parallel()

	d := condition.NewDelegating()
	var got []value.Change[bool]
	d.OnChange(func(c value.Change[bool]) { got = append(got, c) })

	delegate := value.NewHolder(false)
	if err := d.SetDelegate(delegate); err != nil {
		t.Fatalf("SetDelegate: %v", err)
	}

	if d.Value() {
		t.Fatalf("bound condition should read the delegate value")
	}
	want := []value.Change[bool]{{Old: true, New: false}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("bind notification mismatch (-want +got):\n%s", diff)
	}
}

func TestDelegatingFiresOnBindEvenWhenUnchanged(t *testing.T) {
	t.Parallel()

	d := condition.NewDelegating()
	calls := 0
	d.OnChange(func(value.Change[bool]) { calls++ })

	if err := d.SetDelegate(value.NewHolder(true)); err != nil {
		t.Fatalf("SetDelegate: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected one notification on bind, got %d", calls)
	}
}

func TestDelegatingForwardsDelegateChanges(t *testing.T) {
	t.Parallel()

	d := condition.NewDelegating()
	delegate := value.NewHolder(true)
	if err := d.SetDelegate(delegate); err != nil {
		t.Fatalf("SetDelegate: %v", err)
	}
	var got []bool
	d.OnChange(func(c value.Change[bool]) { got = append(got, c.New) })

	delegate.SetValue(false)
	delegate.SetValue(true)
	delegate.Refresh()

	if diff := cmp.Diff([]bool{false, true, true}, got); diff != "" {
		t.Fatalf("forwarded changes mismatch (-want +got):\n%s", diff)
	}
}

func TestDelegatingSecondBindFails(t *testing.T) {
	t.Parallel()

	d := condition.NewDelegating("email")
	if err := d.SetDelegate(value.NewHolder(true)); err != nil {
		t.Fatalf("first SetDelegate: %v", err)
	}
	err := d.SetDelegate(value.NewHolder(false))
	if !errors.Is(err, condition.ErrAlreadyBound) {
		t.Fatalf("expected ErrAlreadyBound, got %v", err)
	}
	var bound *condition.AlreadyBoundError
	if !errors.As(err, &bound) || bound.Name != "email" {
		t.Fatalf("expected AlreadyBoundError naming email, got %#v", err)
	}
	if !d.Value() {
		t.Fatalf("failed rebind must keep the original delegate")
	}
}

func TestDelegatingRejectsNil(t *testing.T) {
	t.Parallel()

	if err := condition.NewDelegating().SetDelegate(nil); !errors.Is(err, condition.ErrNilDelegate) {
		t.Fatalf("expected ErrNilDelegate, got %v", err)
	}
}

func TestDelegatingDisposeStopsForwarding(t *testing.T) {
	t.Parallel()

	d := condition.NewDelegating()
	delegate := value.NewHolder(true)
	_ = d.SetDelegate(delegate)
	calls := 0
	d.OnChange(func(value.Change[bool]) { calls++ })

	d.Dispose()
	delegate.SetValue(false)

	if calls != 0 {
		t.Fatalf("disposed condition forwarded %d changes", calls)
	}
}
