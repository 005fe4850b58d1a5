// Package services contains stateless domain services that implement
// business rules spanning multiple aggregates.
//
// The admission service is the single place where "does this demand fit the
// day's stock" is decided, for manual orders, marketplace orders inside a
// polling cycle, and rider bag allotments. Callers are responsible for the
// serialization that makes its check-then-write sequences atomic; the
// service itself is pure.
package services
