// Package model holds the plain domain records persisted by the
// repository layer.
package model

// Employee is a persisted directory record.
//
// ID is assigned by the repository on create, is unique for the lifetime
// of the store, and is never reused, even after the record is deleted.
// A zero ID marks a draft that has not been saved yet.
type Employee struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
}
