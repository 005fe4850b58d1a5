// Package kernel contains shared value objects used across all domain
// aggregates.
//
// Day is the explicit business day every stock and order operation is scoped
// to. It is resolved once at the edge of each operation and passed down, so
// no component derives "today" on its own and components cannot disagree
// around a timezone boundary.
//
// Quantity models the staple product amount of an order: whole units plus an
// optional half unit. All stock arithmetic works on its Units() value, which
// is always a multiple of 0.5 and therefore exact in a float64.
package kernel
