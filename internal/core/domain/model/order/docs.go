// Package order implements the Order aggregate: the order entity itself, its
// line items and the status state machine.
//
// An order is created in Pending status with its total amount already
// computed from the line inputs using exact decimal arithmetic. The only
// transition this core performs is cancellation, allowed from Pending and
// Confirmed. Items belong to exactly one order and carry their own line
// total; both entities keep a soft-delete flag that reads must respect.
package order
