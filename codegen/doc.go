// Package codegen performs field discovery at build time.
//
// It loads source packages, places every struct field with the same sequential alignment walk the
// runtime uses, checks the result against the compiler's sizes and emits a file that registers
// typed field accessors with fieldwalk.Register. Types that are not plain aggregates, or whose
// layout cannot be reconstructed, are reported as diagnostics instead.
package codegen
