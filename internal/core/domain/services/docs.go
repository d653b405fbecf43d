// Package services provides domain services used while placing orders. They hold
// logic that does not belong to a single aggregate.
//
// The package includes:
//   - FlatTaxPolicy: applies one tax rate to an order subtotal
//   - OrderNumberGenerator: produces random order numbers
package services
