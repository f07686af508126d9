// Package allocx defines the allocator capability that owning strings are
// bound to, along with the allocators strcore ships.
//
// Package: allocx
// Title: Allocator Capability
// Description: An Allocator hands out byte buffers, grows them and takes
//              them back. An owning string keeps a reference to exactly one
//              Allocator for its lifetime so that every buffer it frees goes
//              back to the allocator that produced it.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-30
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-30 v0.1.0: Allocator interface, Heap and process default
// - 2026-10-08 v0.1.1: Pool size-class allocator
// - 2026-10-14 v0.2.0: Limited budget and Tracker decorators
//
// Implementations
//
//   - Heap: plain Go allocation; Free only drops the reference.
//   - Pool: power-of-two size classes recycled through sync.Pool.
//   - Limited: caps the bytes outstanding through another allocator and
//     fails with CodeOutOfMemory beyond the budget.
//   - Tracker: counts allocations and live bytes and traces every event
//     through a log.Logger.
//
// All implementations are safe for concurrent use, since one allocator is
// normally shared by many strings.
package allocx
