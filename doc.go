// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package mutscan provides in-place, single-pass scans over a slice that
// can mutate, remove, replace, and insert elements while preserving
// relative order.
//
// No second slice is allocated, and every surviving element is moved at
// most once, however many elements are removed.
//
// # Architecture
//
//   - Cursor: three positions write ≤ read ≤ end split the captured slice into a finalized prefix, a gap left by removals, and the unvisited suffix.
//   - Ownership: [Open] and [OpenGrow] truncate the caller's slice to length zero until Close, so no other code observes elements mid-scan.
//   - Overflow: [GrowScan] places insertions directly into the gap, or queues them in a ring when there is none. The ring is non-empty only while the gap is closed.
//   - Handles: [Item] and [GrowItem] are value types bound to the current position. Every terminal method consumes the handle; any later use panics.
//
// # API Topologies
//
//   - Scan: [Open], [Scan.Next], [Scan.All], [Scan.Close], [Scan.Segments], [Scan.Values].
//   - Item: [Item.Get], [Item.Ptr], [Item.Set], [Item.Keep], [Item.Remove], [Item.Replace].
//   - GrowItem adds [GrowItem.InsertBefore], [GrowItem.InsertAfter], [GrowItem.ReplaceWith], [GrowItem.ReplaceWithMany], [GrowItem.TryReplaceWith].
//   - Drivers: [RetainFunc], [UpdateFunc], [ExpandFunc].
//   - Effects: [Rewrite], [RewriteExpr], [RewriteError] run per-element steps on [code.hybscloud.com/kont]. Steps [Emit] values and return a [Verdict].
//
// # Finalization
//
// Close must run exactly once per scan, normally via defer. It keeps a
// still-live item, closes the gap, splices queued insertions ahead of the
// unvisited suffix, and hands the slice back. Close also runs correctly
// while a panic from a caller-supplied function unwinds. A scan that is
// never closed leaves the caller with an empty slice, never a corrupt one.
//
// # Example
//
//	s := mutscan.OpenGrow(&v)
//	defer s.Close()
//	for it := range s.All() {
//		switch x := it.Get(); {
//		case x < 0:
//			it.Remove()
//		case x == 0:
//			it.InsertAfter(0)
//		}
//	}
package mutscan
