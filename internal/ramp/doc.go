// Package ramp owns the RAMP address contract and parsing primitives.
//
// Ownership boundary:
// - tokenizer over the five-slot address grammar
// - validation against the protocol registry
// - immutable Address model
// - canonical and ramp:// URI encoders
package ramp
