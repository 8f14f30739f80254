// Package letter holds the two parties of a termination letter and the pure
// derivation of its display strings. Records carry free-form strings only;
// the sole validation anywhere is an emptiness check, so setters cannot fail.
package letter
