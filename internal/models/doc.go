// Package models defines the core domain models for the draft board.
//
// # Models
//
//   - Player: an NFL player on the draft board, with auction draft state
//   - Team: a fantasy team with a spending budget
//
// # Design Principles
//
// 1. **Weak references**: Player points at its Team through an optional ID,
// never an owning pointer. A Team's player list is a derived reverse lookup,
// recomputed per query, not stored state.
//
// 2. **Nullable draft fields**: draft price, drafted-by label, projected
// points and the team association are pointers so that "never set" survives
// round trips through the store and the API as null.
//
// 3. **Derived aggregates stay out of the model**: spent and remaining
// budget are computed by the budget package at presentation time.
package models
