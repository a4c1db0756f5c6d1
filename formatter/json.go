package formatter

import (
	"bytes"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/richlog/richlog/core"
)

// JSONFormatter renders records as single-line JSON objects for
// external log-aggregation tools. Formatting never fails: values that
// cannot be serialized natively fall back to their string rendering so
// the core fields are always emitted.
type JSONFormatter struct {
	timestampFormat string
}

// JSONConfig holds configuration for the JSON formatter
type JSONConfig struct {
	// TimestampFormat specifies the time layout (empty for RFC3339Nano)
	TimestampFormat string
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(cfg JSONConfig) *JSONFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339Nano
	}
	return &JSONFormatter{timestampFormat: cfg.TimestampFormat}
}

// Format formats a record as JSON
func (f *JSONFormatter) Format(record *core.Record) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatJSONToBuffer(record, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats a record as JSON and writes it directly to the writer
func (f *JSONFormatter) FormatTo(record *core.Record, w io.Writer) error {
	buf := getBuffer()

	f.formatJSONToBuffer(record, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// formatJSONToBuffer builds JSON manually into the buffer without allocations
func (f *JSONFormatter) formatJSONToBuffer(record *core.Record, buf *bytes.Buffer) {
	buf.WriteByte('{')

	// Timestamps are normalized to UTC so aggregators see one zone.
	buf.WriteString(`"timestamp":"`)
	buf.Write(record.Time.UTC().AppendFormat(buf.AvailableBuffer(), f.timestampFormat))
	buf.WriteByte('"')

	buf.WriteString(`,"name":"`)
	appendJSONString(buf, record.Name)
	buf.WriteByte('"')

	buf.WriteString(`,"level":"`)
	buf.WriteString(record.Level.String())
	buf.WriteByte('"')

	buf.WriteString(`,"message":"`)
	appendJSONString(buf, record.Message)
	buf.WriteByte('"')

	buf.WriteString(`,"pathname":"`)
	appendJSONString(buf, record.Caller.File)
	buf.WriteByte('"')

	buf.WriteString(`,"lineno":`)
	buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(record.Caller.Line), 10))

	buf.WriteString(`,"funcName":"`)
	appendJSONString(buf, record.Caller.Function)
	buf.WriteByte('"')

	buf.WriteString(`,"thread":`)
	buf.Write(strconv.AppendUint(buf.AvailableBuffer(), record.Goroutine, 10))

	buf.WriteString(`,"thread_name":"goroutine-`)
	buf.Write(strconv.AppendUint(buf.AvailableBuffer(), record.Goroutine, 10))
	buf.WriteByte('"')

	buf.WriteString(`,"process":`)
	buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(record.PID), 10))

	if record.Err != nil {
		buf.WriteString(`,"exc_info":"`)
		appendJSONString(buf, record.Err.Type)
		buf.WriteString(`: `)
		appendJSONString(buf, record.Err.Message)
		if record.Err.Stack != "" {
			buf.WriteString(`\n`)
			appendJSONString(buf, record.Err.Stack)
		}
		buf.WriteByte('"')
	}

	// Caller-supplied fields nest under a single "extra" key; the key
	// is omitted entirely when the record has none.
	if len(record.Fields) > 0 {
		buf.WriteString(`,"extra":{`)
		for i, field := range record.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteByte('"')
			appendJSONString(buf, field.Key)
			buf.WriteString(`":`)
			appendJSONFieldValue(buf, field)
		}
		buf.WriteByte('}')
	}

	buf.WriteString("}\n")
}

// appendJSONString writes a JSON-escaped string (without surrounding quotes) to the buffer
func appendJSONString(buf *bytes.Buffer, s string) {
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}
		if start < i {
			buf.WriteString(s[start:i])
		}
		switch c {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			buf.WriteString(`\u00`)
			buf.WriteByte(hexChars[c>>4])
			buf.WriteByte(hexChars[c&0x0f])
		}
		start = i + 1
	}
	if start < len(s) {
		buf.WriteString(s[start:])
	}
}

var hexChars = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f'}

// appendJSONFieldValue writes a JSON-encoded field value to the buffer
func appendJSONFieldValue(buf *bytes.Buffer, field core.Field) {
	switch field.Type {
	case core.StringType:
		buf.WriteByte('"')
		appendJSONString(buf, field.Str)
		buf.WriteByte('"')
	case core.IntType, core.Int64Type:
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), field.Int64, 10))
	case core.Uint64Type:
		buf.Write(strconv.AppendUint(buf.AvailableBuffer(), field.Uint64, 10))
	case core.Float64Type:
		// NaN and the infinities are not valid JSON numbers; emit them
		// as strings so the line still parses.
		if math.IsNaN(field.Float64) || math.IsInf(field.Float64, 0) {
			buf.WriteByte('"')
			buf.WriteString(strconv.FormatFloat(field.Float64, 'f', -1, 64))
			buf.WriteByte('"')
		} else {
			buf.Write(strconv.AppendFloat(buf.AvailableBuffer(), field.Float64, 'f', -1, 64))
		}
	case core.BoolType:
		buf.Write(strconv.AppendBool(buf.AvailableBuffer(), field.Int64 == 1))
	case core.TimeType:
		buf.WriteByte('"')
		buf.Write(time.Unix(0, field.Int64).UTC().AppendFormat(buf.AvailableBuffer(), time.RFC3339Nano))
		buf.WriteByte('"')
	case core.DurationType:
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), field.Int64, 10))
	case core.ErrorType:
		buf.WriteByte('"')
		appendJSONString(buf, field.Str)
		buf.WriteByte('"')
	default:
		// Best-effort string conversion; formatting must not abort.
		buf.WriteByte('"')
		appendJSONString(buf, field.StringValue())
		buf.WriteByte('"')
	}
}
