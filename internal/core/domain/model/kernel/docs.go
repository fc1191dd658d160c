// Package kernel contains shared value objects used across the domain model.
//
// The package provides:
//   - ID: an opaque positive integer identifier assigned by the store
//   - Money: a decimal monetary amount constrained to the accepted order range
//
// Both types are immutable value objects. Their zero values are invalid and
// fail Validate, so entities can detect identifiers and amounts that bypassed
// the constructor functions.
package kernel
