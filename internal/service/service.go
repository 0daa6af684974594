// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives
// shape-validated data from the handler, enforces business invariants,
// and calls repository methods to interact with the data. Failures are
// returned as typed errors from the errs package and are never formatted
// for clients here.
package service
