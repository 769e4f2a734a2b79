// Package testutil provides shared helpers for tests: a concurrency-safe log
// buffer and a recording pipeline.Assembler stub.
package testutil
