package event_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-pectin/pkg/event"
)

func TestRegistryFiresInRegistrationOrder(t *testing.T) {
	t.Parallel()

	var reg event.Registry[string]
	var got []string
	reg.Add(func(e string) { got = append(got, "a:"+e) })
	reg.Add(func(e string) { got = append(got, "b:"+e) })
	reg.Add(func(e string) { got = append(got, "c:"+e) })

	reg.Fire("x")

	want := []string{"a:x", "b:x", "c:x"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("delivery order mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistryRemoveIsIdempotent(t *testing.T) {
	t.Parallel()

	var reg event.Registry[int]
	calls := 0
	first := reg.Add(func(int) { calls++ })
	reg.Add(func(int) { calls += 10 })

	first.Remove()
	first.Remove()

	if reg.Len() != 1 {
		t.Fatalf("expected 1 handler, got %d", reg.Len())
	}
	reg.Fire(1)
	if calls != 10 {
		t.Fatalf("expected only second handler to run, calls=%d", calls)
	}
}

func TestRegistryRemovalDuringFire(t *testing.T) {
	t.Parallel()

	var reg event.Registry[int]
	var second event.Registration
	secondCalls := 0
	reg.Add(func(int) { second.Remove() })
	second = reg.Add(func(int) { secondCalls++ })

	reg.Fire(1)

	if secondCalls != 0 {
		t.Fatalf("handler removed mid fan-out should not run, got %d calls", secondCalls)
	}
}

func TestRegistryAddDuringFireSeesLaterEventsOnly(t *testing.T) {
	t.Parallel()

	var reg event.Registry[int]
	var late []int
	added := false
	reg.Add(func(int) {
		if added {
			return
		}
		added = true
		reg.Add(func(v int) { late = append(late, v) })
	})

	reg.Fire(1)
	reg.Fire(2)

	if diff := cmp.Diff([]int{2}, late); diff != "" {
		t.Fatalf("late handler events mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistrationsRemoveAll(t *testing.T) {
	t.Parallel()

	var reg event.Registry[int]
	var group event.Registrations
	calls := 0
	group.Add(reg.Add(func(int) { calls++ }))
	group.Add(reg.Add(func(int) { calls++ }))

	group.RemoveAll()
	group.RemoveAll()

	reg.Fire(1)
	if calls != 0 {
		t.Fatalf("expected no calls after RemoveAll, got %d", calls)
	}
	if !group.Released() || group.Len() != 0 {
		t.Fatalf("expected released empty group, got released=%v len=%d", group.Released(), group.Len())
	}

	group.Add(reg.Add(func(int) { calls++ }))
	reg.Fire(1)
	if calls != 0 {
		t.Fatalf("registration added after release should be removed immediately")
	}
}
