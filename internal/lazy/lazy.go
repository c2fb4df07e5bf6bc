// Package lazy resolves configuration values that are either constants or
// per-viewer computations. Panel builders can supply a label, an enabled
// flag, or a count as plain data or as a function of the viewer, and the
// consuming control reads both through the same call.
package lazy

import (
	"fmt"
	"strings"

	"github.com/accessrig/overlay-panel-control/internal/viewer"
)

// Value holds either a literal of type T or a computation over the viewer
// identity. Which one it is gets decided at construction, so Resolve is a
// typed match rather than a dynamic callable check. Values are never stored
// in resolved form; the same Value can yield different results for different
// viewers or at different times.
type Value[T any] struct {
	literal T
	compute func(viewer.ID) T
}

// Lit wraps a constant.
func Lit[T any](v T) Value[T] {
	return Value[T]{literal: v}
}

// Fn wraps a per-viewer computation.
func Fn[T any](f func(viewer.ID) T) Value[T] {
	return Value[T]{compute: f}
}

// Resolve returns the literal, or runs the computation for the given viewer.
func (v Value[T]) Resolve(id viewer.ID) T {
	if v.compute != nil {
		return v.compute(id)
	}
	return v.literal
}

// Computed reports whether the value is a per-viewer computation.
func (v Value[T]) Computed() bool {
	return v.compute != nil
}

func (v Value[T]) resolveAny(id viewer.ID) any {
	return v.Resolve(id)
}

// resolver is satisfied by every Value instantiation, letting Walk unwrap a
// value without knowing its type parameter.
type resolver interface {
	resolveAny(viewer.ID) any
}

// LookupError reports an indexing step that hit a missing or nil
// intermediate. It indicates a builder/caller contract violation and must be
// surfaced, never defaulted.
type LookupError struct {
	Key  string
	Path []string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("lazy: no value at key %q (path %s)", e.Key, strings.Join(e.Path, "."))
}

// Walk applies keys to base one at a time. After each step, a computed value
// met along the way is unwrapped with the viewer id before the next key
// applies; after the final key the result is unwrapped once more. Chained
// indirections (a computation returning another computation) unwrap fully.
func Walk(id viewer.ID, base any, keys ...string) (any, error) {
	cur := unwrap(id, base)
	walked := make([]string, 0, len(keys))
	for _, key := range keys {
		walked = append(walked, key)
		table, ok := cur.(map[string]any)
		if !ok {
			return nil, &LookupError{Key: key, Path: walked}
		}
		next, ok := table[key]
		if !ok || next == nil {
			return nil, &LookupError{Key: key, Path: walked}
		}
		cur = unwrap(id, next)
	}
	return cur, nil
}

func unwrap(id viewer.ID, v any) any {
	for {
		switch fn := v.(type) {
		case resolver:
			v = fn.resolveAny(id)
		case func(viewer.ID) any:
			v = fn(id)
		case func() any:
			v = fn()
		default:
			return v
		}
	}
}
