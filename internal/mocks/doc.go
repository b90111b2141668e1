// Package mocks provides centralized mock implementations for testing.
//
// Each mock implements one of the store interfaces with two layers of
// behavior: per-method function fields for full control in a single test,
// and an in-memory map default that behaves like a tiny store, returning
// the same sentinel errors the real Postgres implementations return.
//
// When adding a new mock:
//  1. Create a file named after the interface being mocked
//  2. Give the mock struct a function field per interface method
//  3. Back the default behavior with the in-memory map
package mocks
