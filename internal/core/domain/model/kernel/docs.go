// Package kernel holds the value objects shared by every aggregate of the ordering
// domain: entity identity (UUID) and money held as integer minor currency units (Money).
//
// Both types are immutable and safe to copy. Money never passes through floating
// point: percentages are applied with exact decimal arithmetic and rounded once,
// half-to-even, to whole cents.
package kernel
