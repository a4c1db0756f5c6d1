package formatter

import "strings"

// MessageFormat is a closed tagged value: either a named preset or a
// raw template string. Templates use %(field)s placeholders; the
// recognized fields are message, asctime, name, levelname, filename,
// lineno and funcName.
type MessageFormat struct {
	preset   string
	template string
}

// Named message presets.
var (
	MessageDefault  = MessageFormat{preset: "DEFAULT", template: "%(message)s"}
	MessageVerbose  = MessageFormat{preset: "VERBOSE", template: "%(asctime)s - %(name)s - %(levelname)s - %(message)s"}
	MessageSimple   = MessageFormat{preset: "SIMPLE", template: "%(levelname)s: %(message)s"}
	MessageDetailed = MessageFormat{preset: "DETAILED", template: "%(asctime)s - %(name)s - %(levelname)s - [%(filename)s:%(lineno)d] - %(message)s"}
	MessageNothing  = MessageFormat{preset: "NOTHING", template: ""}
)

// RawMessageFormat wraps an arbitrary template string.
func RawMessageFormat(template string) MessageFormat {
	return MessageFormat{template: template}
}

// ResolveMessageFormat maps a configuration string to a MessageFormat.
// The lookup is explicit and two-step: a case-insensitive preset name
// wins, anything else is treated as a raw template.
func ResolveMessageFormat(s string) MessageFormat {
	switch strings.ToUpper(s) {
	case "DEFAULT":
		return MessageDefault
	case "VERBOSE":
		return MessageVerbose
	case "SIMPLE":
		return MessageSimple
	case "DETAILED":
		return MessageDetailed
	case "NOTHING":
		return MessageNothing
	default:
		return RawMessageFormat(s)
	}
}

// IsPreset reports whether the format came from a named preset.
func (m MessageFormat) IsPreset() bool { return m.preset != "" }

// Template returns the underlying template string.
func (m MessageFormat) Template() string { return m.template }

// DateFormat is a closed tagged value: either a named preset or a raw
// Go time layout.
type DateFormat struct {
	preset string
	layout string
}

// Named date presets.
var (
	DateDefault = DateFormat{preset: "DEFAULT", layout: "2006-01-02 15:04:05"}
	DateISO8601 = DateFormat{preset: "ISO8601", layout: "2006-01-02T15:04:05"}
	DateUS      = DateFormat{preset: "US", layout: "01/02/2006 03:04:05 PM"}
	DateEU      = DateFormat{preset: "EU", layout: "02/01/2006 15:04:05"}
	DateNothing = DateFormat{preset: "NOTHING", layout: ""}
)

// RawDateFormat wraps an arbitrary Go time layout.
func RawDateFormat(layout string) DateFormat {
	return DateFormat{layout: layout}
}

// ResolveDateFormat maps a configuration string to a DateFormat, with
// the same two-step preset-then-raw lookup as ResolveMessageFormat.
func ResolveDateFormat(s string) DateFormat {
	switch strings.ToUpper(s) {
	case "DEFAULT":
		return DateDefault
	case "ISO8601":
		return DateISO8601
	case "US":
		return DateUS
	case "EU":
		return DateEU
	case "NOTHING":
		return DateNothing
	default:
		return RawDateFormat(s)
	}
}

// IsPreset reports whether the format came from a named preset.
func (d DateFormat) IsPreset() bool { return d.preset != "" }

// Layout returns the underlying time layout.
func (d DateFormat) Layout() string { return d.layout }
