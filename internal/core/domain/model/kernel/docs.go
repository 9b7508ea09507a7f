// Package kernel contains shared value objects used across the domain model.
//
// Entity identifiers in this system are 64-bit integers assigned by the
// database on insert, so the kernel does not wrap them; it holds the value
// objects that carry their own invariants, currently the OrderNumber.
package kernel
