package lazy

import (
	"errors"
	"testing"

	"github.com/accessrig/overlay-panel-control/internal/viewer"
)

func TestLitResolvesSameForAnyViewer(t *testing.T) {
	v := Lit(42)
	for _, id := range []viewer.ID{0, 3, 99} {
		if got := v.Resolve(id); got != 42 {
			t.Fatalf("expected 42 for viewer %s, got %d", id, got)
		}
	}
	if v.Computed() {
		t.Fatalf("literal must not report as computed")
	}
}

func TestFnResolvesPerViewer(t *testing.T) {
	v := Fn(func(id viewer.ID) int { return int(id) * 2 })
	if got := v.Resolve(3); got != 6 {
		t.Fatalf("expected 6 for viewer 3, got %d", got)
	}
	if got := v.Resolve(5); got != 10 {
		t.Fatalf("expected 10 for viewer 5, got %d", got)
	}
}

func TestWalkPlainKeys(t *testing.T) {
	base := map[string]any{
		"a": map[string]any{
			"b": "leaf",
		},
	}
	got, err := Walk(1, base, "a", "b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "leaf" {
		t.Fatalf("expected leaf, got %v", got)
	}
}

func TestWalkUnwrapsIntermediateComputations(t *testing.T) {
	base := map[string]any{
		"outer": func(id viewer.ID) any {
			return map[string]any{
				"inner": Fn(func(id viewer.ID) int { return int(id) + 100 }),
			}
		},
	}
	got, err := Walk(7, base, "outer", "inner")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 107 {
		t.Fatalf("expected 107, got %v", got)
	}
}

func TestWalkUnwrapsFinalChain(t *testing.T) {
	base := map[string]any{
		"k": func() any {
			return func() any { return 9 }
		},
	}
	got, err := Walk(0, base, "k")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 9 {
		t.Fatalf("expected 9, got %v", got)
	}
}

func TestWalkMissingIntermediateFails(t *testing.T) {
	base := map[string]any{
		"a": map[string]any{},
	}
	_, err := Walk(1, base, "a", "missing", "deeper")
	if err == nil {
		t.Fatalf("expected lookup error")
	}
	var lookupErr *LookupError
	if !errors.As(err, &lookupErr) {
		t.Fatalf("expected LookupError, got %T", err)
	}
	if lookupErr.Key != "missing" {
		t.Fatalf("expected offending key missing, got %q", lookupErr.Key)
	}
	if len(lookupErr.Path) != 2 || lookupErr.Path[0] != "a" || lookupErr.Path[1] != "missing" {
		t.Fatalf("expected path [a missing], got %v", lookupErr.Path)
	}
}

func TestWalkNonTableIntermediateFails(t *testing.T) {
	base := map[string]any{"a": 5}
	_, err := Walk(1, base, "a", "b")
	var lookupErr *LookupError
	if !errors.As(err, &lookupErr) {
		t.Fatalf("expected LookupError, got %v", err)
	}
	if lookupErr.Key != "b" {
		t.Fatalf("expected offending key b, got %q", lookupErr.Key)
	}
}
