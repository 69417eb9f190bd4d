// Package models defines the core domain models for courtsplit.
//
// # Models
//
//   - Event: a shared-cost occasion (a match, a court booking) with a roster and a total cost
//   - Player: one participant of an Event, tracked by payment status
//
// # Design Principles
//
// 1. **Text cost**: Event.TotalCost keeps exactly what the user typed; parsing happens
// lazily in the calculator package so half-typed input is never lost.
// 2. **Opaque IDs**: Both IDs are strings. New values are UUIDs, stored values are kept verbatim.
// 3. **Ownership**: Players live inside their Event's roster; there are no back-references.
package models
