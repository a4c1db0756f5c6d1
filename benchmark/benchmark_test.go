package benchmark

import (
	"errors"
	"testing"
	"time"

	"github.com/richlog/richlog/core"
	"github.com/richlog/richlog/formatter"
	"github.com/richlog/richlog/handler"
	"github.com/richlog/richlog/logger"
)

// discardWriter is a no-op writer for benchmarking
type discardWriter struct{}

func (w discardWriter) Write(p []byte) (int, error) {
	return len(p), nil
}

func newDiscardHandler(f formatter.Formatter) handler.Handler {
	return handler.NewWriterHandler(handler.WriterConfig{
		Writer:    discardWriter{},
		Formatter: f,
	})
}

// Benchmark logger creation
func BenchmarkLoggerCreation(b *testing.B) {
	h := newDiscardHandler(formatter.NewTextFormatter(formatter.TextConfig{}))
	defer h.Close()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = logger.NewBuilder().
			WithHandler(h).
			WithLevel(core.InfoLevel).
			Build()
	}
}

// Benchmark With() method (creating child loggers)
func BenchmarkWith(b *testing.B) {
	h := newDiscardHandler(formatter.NewTextFormatter(formatter.TextConfig{}))
	defer h.Close()

	log := logger.NewBuilder().
		WithHandler(h).
		WithLevel(core.InfoLevel).
		Build()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = log.With(logger.String("request_id", "12345"))
	}
}

// Benchmark basic Info logging without fields
func BenchmarkInfoNoFields(b *testing.B) {
	h := newDiscardHandler(formatter.NewTextFormatter(formatter.TextConfig{}))
	defer h.Close()

	log := logger.NewBuilder().
		WithHandler(h).
		WithLevel(core.InfoLevel).
		Build()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		log.Info("test message")
	}
}

// Benchmark Info logging with 5 fields
func BenchmarkInfo5Fields(b *testing.B) {
	h := newDiscardHandler(formatter.NewTextFormatter(formatter.TextConfig{}))
	defer h.Close()

	log := logger.NewBuilder().
		WithHandler(h).
		WithLevel(core.InfoLevel).
		Build()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		log.Info("test message",
			logger.String("key1", "value1"),
			logger.Int("key2", 42),
			logger.Float64("key3", 3.14),
			logger.Bool("key4", true),
			logger.String("key5", "value5"),
		)
	}
}

// Benchmark disabled level (testing early exit optimization)
func BenchmarkDisabledLevel(b *testing.B) {
	h := newDiscardHandler(formatter.NewTextFormatter(formatter.TextConfig{}))
	defer h.Close()

	log := logger.NewBuilder().
		WithHandler(h).
		WithLevel(core.ErrorLevel). // Only errors and above
		Build()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		log.Debug("debug message", logger.String("key", "value"))
	}
}

// Benchmark different field types
func BenchmarkFieldTypes(b *testing.B) {
	tests := []struct {
		name  string
		field core.Field
	}{
		{"String", logger.String("key", "value")},
		{"Int", logger.Int("key", 42)},
		{"Int64", logger.Int64("key", 1234567890)},
		{"Float64", logger.Float64("key", 3.14159265)},
		{"Bool", logger.Bool("key", true)},
		{"Time", logger.Time("key", time.Now())},
		{"Duration", logger.Duration("key", time.Second)},
		{"Error", logger.Err(errors.New("test error"))},
		{"Any", logger.Any("key", map[string]string{"nested": "value"})},
	}

	for _, tt := range tests {
		b.Run(tt.name, func(b *testing.B) {
			h := newDiscardHandler(formatter.NewTextFormatter(formatter.TextConfig{}))
			defer h.Close()

			log := logger.NewBuilder().
				WithHandler(h).
				WithLevel(core.InfoLevel).
				Build()

			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				log.Info("test message", tt.field)
			}
		})
	}
}

// Benchmark Text vs JSON formatter
func BenchmarkFormatters(b *testing.B) {
	tests := []struct {
		name      string
		formatter formatter.Formatter
	}{
		{"Text", formatter.NewTextFormatter(formatter.TextConfig{})},
		{"TextVerbose", formatter.NewTextFormatter(formatter.TextConfig{Format: formatter.MessageVerbose})},
		{"JSON", formatter.NewJSONFormatter(formatter.JSONConfig{})},
	}

	for _, tt := range tests {
		b.Run(tt.name, func(b *testing.B) {
			h := newDiscardHandler(tt.formatter)
			defer h.Close()

			log := logger.NewBuilder().
				WithHandler(h).
				WithLevel(core.InfoLevel).
				Build()

			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				log.Info("test message",
					logger.String("key1", "value1"),
					logger.Int("key2", 42),
					logger.Float64("key3", 3.14),
				)
			}
		})
	}
}

// Benchmark direct vs buffered vs async handlers
func BenchmarkHandlerModes(b *testing.B) {
	tests := []struct {
		name string
		wrap func(handler.Handler) handler.Handler
	}{
		{"Direct", func(h handler.Handler) handler.Handler { return h }},
		{"Buffered", func(h handler.Handler) handler.Handler {
			return handler.NewBufferedHandler(h, handler.BufferedConfig{Capacity: 256})
		}},
		{"Async", func(h handler.Handler) handler.Handler {
			return handler.NewAsyncHandler(h, handler.AsyncConfig{QueueSize: 10000})
		}},
	}

	for _, tt := range tests {
		b.Run(tt.name, func(b *testing.B) {
			h := tt.wrap(newDiscardHandler(formatter.NewTextFormatter(formatter.TextConfig{})))
			defer h.Close()

			log := logger.NewBuilder().
				WithHandler(h).
				WithLevel(core.InfoLevel).
				Build()

			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				log.Info("test message",
					logger.String("key1", "value1"),
					logger.Int("key2", i),
				)
			}
		})
	}
}

// Benchmark logging with caller info
func BenchmarkWithCaller(b *testing.B) {
	tests := []struct {
		name          string
		includeCaller bool
	}{
		{"WithoutCaller", false},
		{"WithCaller", true},
	}

	for _, tt := range tests {
		b.Run(tt.name, func(b *testing.B) {
			h := newDiscardHandler(formatter.NewTextFormatter(formatter.TextConfig{Format: formatter.MessageDetailed}))
			defer h.Close()

			log := logger.NewBuilder().
				WithHandler(h).
				WithLevel(core.InfoLevel).
				WithCaller(tt.includeCaller).
				Build()

			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				log.Info("test message", logger.String("key", "value"))
			}
		})
	}
}

// Benchmark the noop handler floor (record pipeline without formatting)
func BenchmarkNoopHandler(b *testing.B) {
	h := newNoopHandler()
	defer h.Close()

	log := logger.NewBuilder().
		WithHandler(h).
		WithLevel(core.InfoLevel).
		Build()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		log.Info("test message", logger.String("key", "value"))
	}
}

// Benchmark concurrent logging
func BenchmarkParallel(b *testing.B) {
	h := newDiscardHandler(formatter.NewTextFormatter(formatter.TextConfig{}))
	defer h.Close()

	log := logger.NewBuilder().
		WithHandler(h).
		WithLevel(core.InfoLevel).
		Build()

	b.ResetTimer()
	b.ReportAllocs()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			log.Info("test message", logger.String("key", "value"))
		}
	})
}
