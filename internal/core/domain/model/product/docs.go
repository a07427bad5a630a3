// Package product contains the Product aggregate: a catalog item with four
// fixed price/packing slots, shelf-life and lead-time durations and an
// enabled flag. The sellable variants and the max price are derived from the
// occupied slots on every read and never persisted.
package product
