// Package bimap provides a generic bidirectional mapping (a bijection)
// between two comparable type domains.
//
// What:
//
//   - Bimap[K, V] keeps a forward map K→V and an inverse map V→K that are
//     always mutually consistent: every pair is present in both directions.
//   - A pair is immutable once bound; rebinding either side requires an
//     explicit Remove followed by a fresh Add.
//   - Accessors hand out snapshot copies, never internal storage.
//
// Why:
//
//   - Label↔index translation for array-backed structures (the digraph
//     adjacency matrix is the in-house consumer).
//   - Any place where both lookup directions must stay O(1) and collisions
//     must be impossible by construction.
//
// Errors:
//
//   - ErrDuplicateKey: Add with a key or value that is already bound.
//   - ErrNotFound: Get, GetInverse or Remove against an unbound key/value.
package bimap
