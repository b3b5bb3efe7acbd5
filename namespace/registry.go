// SPDX-License-Identifier: MIT

package namespace

import (
	"fmt"
	"regexp"
	"sync"
)

// Registry is an ordered, append-only set of unique names.
//
// The index of a name equals its registration order. Indices are never
// reassigned; a Registry only grows.
//
// The zero value is not usable; call New.
type Registry struct {
	mu    sync.RWMutex   // guards names and index
	names []string       // index → name
	index map[string]int // name → index
}

// New returns an empty Registry.
// Complexity: O(1).
func New() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register appends name and returns its index.
//
// Implementation:
//   - Stage 1: reject "" (ErrEmptyName).
//   - Stage 2: under write lock, reject an existing name (ErrDuplicateName).
//   - Stage 3: append and record the index.
//
// Complexity: O(1) amortized.
func (r *Registry) Register(name string) (int, error) {
	if name == "" {
		return 0, ErrEmptyName
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.index[name]; ok {
		return 0, fmt.Errorf("register %q: %w", name, ErrDuplicateName)
	}

	return r.appendLocked(name), nil
}

// Extend registers a batch of names atomically.
//
// Implementation:
//   - Stage 1: validate every name against the registry and against the
//     rest of the batch without touching state.
//   - Stage 2: append all names in order.
//
// Behavior highlights:
//   - On any collision nothing is committed.
//   - An empty batch is a no-op and returns an empty slice.
//
// Complexity: O(k) for k names.
func (r *Registry) Extend(names []string) ([]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if name == "" {
			return nil, ErrEmptyName
		}
		if _, ok := r.index[name]; ok {
			return nil, fmt.Errorf("extend %q: %w", name, ErrDuplicateName)
		}
		if _, ok := seen[name]; ok {
			return nil, fmt.Errorf("extend %q (repeated in batch): %w", name, ErrDuplicateName)
		}
		seen[name] = struct{}{}
	}

	ids := make([]int, len(names))
	for i, name := range names {
		ids[i] = r.appendLocked(name)
	}

	return ids, nil
}

// appendLocked assumes r.mu is held for writing and name is new.
func (r *Registry) appendLocked(name string) int {
	id := len(r.names)
	r.names = append(r.names, name)
	r.index[name] = id

	return id
}

// Resolve maps names to their indices, preserving argument order.
// Returns ErrUnknownName (wrapped with the first missing name) if any
// name is absent. Resolve() with no names returns an empty slice.
// Complexity: O(k).
func (r *Registry) Resolve(names ...string) ([]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]int, len(names))
	for i, name := range names {
		id, ok := r.index[name]
		if !ok {
			return nil, fmt.Errorf("resolve %q: %w", name, ErrUnknownName)
		}
		ids[i] = id
	}

	return ids, nil
}

// ResolveMatching returns the indices of all names matched by the regular
// expression pattern, in registration order. The pattern is not anchored
// implicitly; use \A and \z (or ^ and $) for whole-name matches.
// Complexity: O(n·m) for n names of length m.
func (r *Registry) ResolveMatching(pattern string) ([]int, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("resolve matching %q: %w: %v", pattern, ErrBadPattern, err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]int, 0)
	for i, name := range r.names {
		if re.MatchString(name) {
			ids = append(ids, i)
		}
	}

	return ids, nil
}

// Index returns the index of name and whether it is registered.
func (r *Registry) Index(name string) (int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.index[name]

	return id, ok
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.Index(name)
	return ok
}

// Name returns the name registered at index i.
func (r *Registry) Name(i int) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i < 0 || i >= len(r.names) {
		return "", fmt.Errorf("name(%d): %w", i, ErrOutOfRange)
	}

	return r.names[i], nil
}

// Names returns a copy of all names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.names))
	copy(out, r.names)

	return out
}

// Len returns the number of registered names.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.names)
}

// Clone returns an independent copy with identical indices.
// Complexity: O(n).
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c := &Registry{
		names: make([]string, len(r.names)),
		index: make(map[string]int, len(r.index)),
	}
	copy(c.names, r.names)
	for k, v := range r.index {
		c.index[k] = v
	}

	return c
}
