// Package stringsx provides small string helpers shared across SCG services:
// initial-character case conversion and string coalescing.
package stringsx
