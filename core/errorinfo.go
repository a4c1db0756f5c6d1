package core

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

// ErrorInfo is the captured payload of an error attached to a Record:
// the error's type name, its message and the stack text rendered at
// the capture site.
type ErrorInfo struct {
	Type    string
	Message string
	Stack   string
}

// CaptureError builds an ErrorInfo for err at the caller's stack.
// When verbose is false the stack is omitted entirely. Frames whose
// function path starts with one of the suppress prefixes are removed
// from the rendered stack, the way framework internals are hidden
// from tracebacks.
func CaptureError(err error, verbose bool, suppress []string) *ErrorInfo {
	if err == nil {
		return nil
	}

	info := &ErrorInfo{
		Type:    errorTypeName(err),
		Message: err.Error(),
	}

	if !verbose {
		return info
	}

	buf := make([]byte, 8192)
	n := runtime.Stack(buf, false)
	info.Stack = suppressFrames(string(buf[:n]), suppress)
	return info
}

// errorTypeName returns the bare type name of err, without the
// package path or pointer marker, e.g. "ParseError" for *pkg.ParseError.
func errorTypeName(err error) string {
	t := reflect.TypeOf(err)
	if t == nil {
		return "error"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if name := t.Name(); name != "" {
		return name
	}
	return fmt.Sprintf("%T", err)
}

// suppressFrames drops stack frames whose function line begins with
// one of the given module prefixes. A runtime stack alternates a
// header line, then pairs of function and file lines.
func suppressFrames(stack string, suppress []string) string {
	if len(suppress) == 0 {
		return stack
	}

	lines := strings.Split(stack, "\n")
	out := make([]string, 0, len(lines))
	if len(lines) > 0 {
		out = append(out, lines[0]) // "goroutine N [running]:" header
	}
	for i := 1; i < len(lines); i += 2 {
		fn := lines[i]
		if fn == "" {
			out = append(out, fn)
			continue
		}
		skip := false
		for _, prefix := range suppress {
			if strings.HasPrefix(strings.TrimSpace(fn), prefix) {
				skip = true
				break
			}
		}
		if skip {
			continue
		}
		out = append(out, fn)
		if i+1 < len(lines) {
			out = append(out, lines[i+1])
		}
	}
	return strings.Join(out, "\n")
}
