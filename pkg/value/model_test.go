package value_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-pectin/pkg/value"
)

func TestHolderNotifiesOnlyOnChange(t *testing.T) {
	t.Parallel()

	h := value.NewHolder("")
	var got []string
	h.OnChange(func(c value.Change[string]) { got = append(got, c.New) })

	sequence := []string{"a", "a", "b", "b", "b", "a", ""}
	changes := 0
	prev := ""
	for _, v := range sequence {
		if v != prev {
			changes++
		}
		prev = v
		h.SetValue(v)
	}

	if len(got) != changes {
		t.Fatalf("expected %d notifications, got %d (%v)", changes, len(got), got)
	}
	if diff := cmp.Diff([]string{"a", "b", "a", ""}, got); diff != "" {
		t.Fatalf("notifications mismatch (-want +got):\n%s", diff)
	}
}

func TestHolderChangeCarriesOldValue(t *testing.T) {
	t.Parallel()

	h := value.NewHolder(1)
	var last value.Change[int]
	h.OnChange(func(c value.Change[int]) { last = c })
	h.SetValue(5)

	if diff := cmp.Diff(value.Change[int]{Old: 1, New: 5}, last); diff != "" {
		t.Fatalf("change mismatch (-want +got):\n%s", diff)
	}
}

func TestHolderRefreshFiresUnconditionally(t *testing.T) {
	t.Parallel()

	h := value.NewHolder(true)
	calls := 0
	h.OnChange(func(value.Change[bool]) { calls++ })

	h.SetValue(true)
	h.Refresh()
	h.Refresh()

	if calls != 2 {
		t.Fatalf("expected 2 forced notifications, got %d", calls)
	}
}

func TestHolderWithEquals(t *testing.T) {
	t.Parallel()

	h := value.NewHolder("abc", value.WithEquals(strings.EqualFold))
	calls := 0
	h.OnChange(func(value.Change[string]) { calls++ })

	h.SetValue("ABC")
	if calls != 0 || h.Value() != "abc" {
		t.Fatalf("case-insensitive equal value should be ignored, calls=%d value=%q", calls, h.Value())
	}
	h.SetValue("xyz")
	if calls != 1 {
		t.Fatalf("expected one notification, got %d", calls)
	}
}

func TestHolderSliceValuesCompareDeeply(t *testing.T) {
	t.Parallel()

	h := value.NewHolder([]int{1, 2})
	calls := 0
	h.OnChange(func(value.Change[[]int]) { calls++ })

	h.SetValue([]int{1, 2})
	if calls != 0 {
		t.Fatalf("equal slice should not notify")
	}
}

func TestMapNotifiesOnDerivedFlipOnly(t *testing.T) {
	t.Parallel()

	src := value.NewHolder(1)
	even := value.Map[int, bool](src, func(v int) bool { return v%2 == 0 })
	var got []bool
	even.OnChange(func(c value.Change[bool]) { got = append(got, c.New) })

	src.SetValue(3)
	src.SetValue(4)
	src.SetValue(6)
	src.SetValue(7)

	if diff := cmp.Diff([]bool{true, false}, got); diff != "" {
		t.Fatalf("derived notifications mismatch (-want +got):\n%s", diff)
	}

	even.Dispose()
	src.SetValue(8)
	if even.Value() {
		t.Fatalf("disposed derived model should stop tracking its source")
	}
}

func TestReadOnlyAndConstant(t *testing.T) {
	t.Parallel()

	src := value.NewHolder("x")
	ro := value.ReadOnly[string](src)
	if _, ok := ro.(value.Mutable[string]); ok {
		t.Fatalf("read-only model must not expose a setter")
	}
	calls := 0
	ro.OnChange(func(value.Change[string]) { calls++ })
	src.SetValue("y")
	if ro.Value() != "y" || calls != 1 {
		t.Fatalf("read-only view should track source, value=%q calls=%d", ro.Value(), calls)
	}

	c := value.Constant(42)
	reg := c.OnChange(func(value.Change[int]) { t.Fatalf("constant must not fire") })
	reg.Remove()
	if c.Value() != 42 {
		t.Fatalf("constant value mismatch")
	}
}
