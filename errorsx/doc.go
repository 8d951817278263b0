// Package errorsx provides error enrichment helpers for SCG services.
//
// It exposes two concrete types. ErrorContext wraps an existing cause with
// optional, transport-agnostic metadata (status code, reason, request id,
// debug detail, structured details) and implements the carrier interfaces
// from the contract package. EnrichedError is a root error type that
// captures its call-site location and a short stack at construction and
// supports layered context annotations plus a linked source chain.
//
// Both types are immutable once built and integrate with the standard
// library's errors helpers (Is/As) via Unwrap. Construction never fails:
// there is no invalid combination of optional fields.
//
// Mutation happens only on the builder types, which are consumed by
// Build() and must not be reused afterwards.
package errorsx
