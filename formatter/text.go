package formatter

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/richlog/richlog/core"
)

// TextFormatter renders records as human-readable text driven by a
// message template and a date format. The template is compiled once at
// construction into a flat segment list so rendering is a single pass.
type TextFormatter struct {
	segments []segment
	layout   string
}

type segmentKind uint8

const (
	segLiteral segmentKind = iota
	segMessage
	segTime
	segName
	segLevel
	segFile
	segLine
	segFunction
)

type segment struct {
	kind    segmentKind
	literal string
}

// TextConfig holds configuration for the text formatter
type TextConfig struct {
	// Format is the message template (default: MessageDefault)
	Format MessageFormat
	// DateFormat is the timestamp layout (default: DateDefault)
	DateFormat DateFormat
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg TextConfig) *TextFormatter {
	format := cfg.Format
	if format == (MessageFormat{}) {
		format = MessageDefault
	}
	date := cfg.DateFormat
	if date == (DateFormat{}) {
		date = DateDefault
	}
	return &TextFormatter{
		segments: compileTemplate(format.Template()),
		layout:   date.Layout(),
	}
}

// compileTemplate splits a %(field)s template into segments. An
// unrecognized field renders as empty rather than failing.
func compileTemplate(template string) []segment {
	var segs []segment
	rest := template
	for {
		i := strings.Index(rest, "%(")
		if i < 0 {
			break
		}
		j := strings.Index(rest[i:], ")")
		if j < 0 {
			break
		}
		// The verb character after ")" belongs to the placeholder.
		end := i + j + 1
		if end < len(rest) {
			end++
		}
		if i > 0 {
			segs = append(segs, segment{kind: segLiteral, literal: rest[:i]})
		}
		name := rest[i+2 : i+j]
		switch name {
		case "message":
			segs = append(segs, segment{kind: segMessage})
		case "asctime":
			segs = append(segs, segment{kind: segTime})
		case "name":
			segs = append(segs, segment{kind: segName})
		case "levelname":
			segs = append(segs, segment{kind: segLevel})
		case "filename":
			segs = append(segs, segment{kind: segFile})
		case "lineno":
			segs = append(segs, segment{kind: segLine})
		case "funcName":
			segs = append(segs, segment{kind: segFunction})
		}
		rest = rest[end:]
	}
	if rest != "" {
		segs = append(segs, segment{kind: segLiteral, literal: rest})
	}
	return segs
}

// Format formats a record as text
func (f *TextFormatter) Format(record *core.Record) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(record, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats a record and writes it directly to the writer
func (f *TextFormatter) FormatTo(record *core.Record, w io.Writer) error {
	buf := getBuffer()

	f.formatToBuffer(record, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

func (f *TextFormatter) formatToBuffer(record *core.Record, buf *bytes.Buffer) {
	for _, seg := range f.segments {
		switch seg.kind {
		case segLiteral:
			buf.WriteString(seg.literal)
		case segMessage:
			buf.WriteString(record.Message)
		case segTime:
			if f.layout != "" {
				buf.Write(record.Time.AppendFormat(buf.AvailableBuffer(), f.layout))
			}
		case segName:
			buf.WriteString(record.Name)
		case segLevel:
			buf.WriteString(record.Level.String())
		case segFile:
			buf.WriteString(record.Caller.ShortFile)
		case segLine:
			buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(record.Caller.Line), 10))
		case segFunction:
			buf.WriteString(record.Caller.Function)
		}
	}

	for _, field := range record.Fields {
		buf.WriteByte(' ')
		buf.WriteString(field.Key)
		buf.WriteByte('=')
		buf.WriteString(field.StringValue())
	}

	if record.Err != nil {
		buf.WriteByte(' ')
		buf.WriteString(record.Err.Type)
		buf.WriteString(": ")
		buf.WriteString(record.Err.Message)
		if record.Err.Stack != "" {
			buf.WriteByte('\n')
			buf.WriteString(record.Err.Stack)
		}
	}

	buf.WriteByte('\n')
}
