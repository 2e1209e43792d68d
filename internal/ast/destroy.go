package ast

import "sync/atomic"

// DestructionStats tracks how many nodes Destroy has released. It is
// debug-only and opt-in (spec.md §9 "global destruction statistics"): the
// counters start disabled and cost nothing unless EnableDestructionStats is
// called, unlike the source's always-on process-wide counters.
type DestructionStats struct {
	enabled atomic.Bool
	count   atomic.Int64
}

var globalDestructionStats DestructionStats

// EnableDestructionStats turns the global destroyed-node counter on or off.
func EnableDestructionStats(on bool) {
	globalDestructionStats.enabled.Store(on)
}

// DestroyedNodeCount returns the number of nodes released by Destroy while
// counting was enabled, since the last ResetDestructionStats. Reads 0 when
// counting has never been enabled.
func DestroyedNodeCount() int64 {
	return globalDestructionStats.count.Load()
}

// ResetDestructionStats zeroes the counter without changing whether it is enabled.
func ResetDestructionStats() {
	globalDestructionStats.count.Store(0)
}

// Destroy recursively releases n and every descendant exactly once. Go's
// garbage collector reclaims the underlying memory; Destroy's contract is
// that a destroyed node's identity is retired — callers must not keep using
// n or anything under it afterward, matching the tree's single-owner
// lifecycle (spec.md §3.5, §4.3).
func Destroy(n Node) {
	if n == nil {
		return
	}
	for _, child := range Children(n) {
		Destroy(child)
	}
	if globalDestructionStats.enabled.Load() {
		globalDestructionStats.count.Add(1)
	}
}
