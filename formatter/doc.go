// Package formatter converts core.Record values into bytes.
//
// Two formatters are provided: TextFormatter renders records through a
// message template selected from a named preset (DEFAULT, VERBOSE,
// SIMPLE, DETAILED, NOTHING) or supplied as a raw template string, and
// JSONFormatter emits one JSON object per record for consumption by
// log-aggregation tools.
//
// Formatters that also implement WriterFormatter can write straight
// into an io.Writer, skipping the intermediate byte slice.
package formatter
