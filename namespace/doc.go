// SPDX-License-Identifier: MIT

// Package namespace provides the append-only name→index registry that every
// model is built on.
//
// A Registry assigns each registered name the next free index (0, 1, 2, …)
// and never changes or reuses that index afterwards. Dynamic compounds,
// algebraic-module outputs and reaction names all live in registries of
// this kind; rate closures cache the indices once at definition time and
// rely on them staying put for the lifetime of the model.
//
// Operations:
//
//	Register(name)            // O(1), ErrDuplicateName / ErrEmptyName
//	Extend(names)             // O(k), atomic batch: all or nothing
//	Resolve(names...)         // O(k), ErrUnknownName
//	ResolveMatching(pattern)  // O(n), regular expression over names
//
// There is no removal. Errors are package sentinels wrapped with the
// offending name; match them with errors.Is.
package namespace
