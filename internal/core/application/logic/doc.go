// Package logic contains the business logic units enforcing multi-entity
// invariants: CarLogic for garage rules and OrderLogic for order creation,
// cancellation and summaries.
//
// Logic units are composed explicitly. A handler obtains a unit of work,
// builds a CarLogic over it and, when needed, passes that CarLogic into
// OrderLogic's constructor. There is no service container; every dependency
// between units is visible at the call site. Units hold non-owning references
// valid only for the lifetime of the enclosing scope and never cache state
// across scopes.
package logic
