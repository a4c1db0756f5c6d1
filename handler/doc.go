// Package handler provides the output sinks that consume log records.
//
// WriterHandler and FileHandler are leaf sinks: the former writes to
// any io.Writer, the latter to a size-rotated file. BufferedHandler
// and AsyncHandler wrap another handler; the buffered variant batches
// records until a capacity threshold, the async variant hands them to
// a single worker goroutine through a bounded queue and silently drops
// records under backpressure. MultiHandler fans records out to several
// handlers, and SlogHandler adapts the whole stack to log/slog.
//
// Drops and swallowed delivery failures never surface to the caller;
// they are counted in each handler's Stats instead.
package handler
