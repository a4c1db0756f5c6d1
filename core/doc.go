// Package core defines the shared types used across richlog.
//
// It provides the Level type for severity filtering, the Record type
// that represents a single log event, the Field type for structured
// key-value pairs, and ErrorInfo for captured error payloads.
//
// Record objects are pooled via sync.Pool to keep the emit path
// allocation-free. Callers get a Record with GetRecord and must return
// it with PutRecord once the handler has consumed it. A Record carries
// the process id and goroutine id of the emitting call site; the Go
// runtime exposes no thread identity, so the goroutine id serves as
// the thread identifier in formatted output.
package core
