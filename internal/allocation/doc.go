// Package allocation partitions a roster into fixed-composition groups and
// reshuffles formed groups without changing their shape.
//
// Both operations are pure: they read their inputs, never modify them, and
// hold no package-level mutable state, so concurrent callers need no
// coordination.
package allocation
