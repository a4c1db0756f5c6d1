package core

import (
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

// pid is captured once; it cannot change for the life of the process.
var pid = os.Getpid()

// Record represents a single log event with all its metadata.
// A Record is immutable once it has been handed to a handler.
type Record struct {
	Name      string
	Time      time.Time
	Level     Level
	Message   string
	Caller    CallerInfo
	PID       int
	Goroutine uint64
	Err       *ErrorInfo
	Fields    []Field
}

// CallerInfo contains information about the emit call site
type CallerInfo struct {
	File      string
	ShortFile string
	Line      int
	Function  string
	Defined   bool
}

// recordPool reduces allocations on the emit hot path
var recordPool = sync.Pool{
	New: func() interface{} {
		return &Record{
			Fields: make([]Field, 0, 8),
		}
	},
}

// GetRecord retrieves a Record from the pool, pre-stamped with the
// current time, process id and goroutine id.
func GetRecord() *Record {
	r := recordPool.Get().(*Record)
	r.Time = time.Now()
	r.PID = pid
	r.Goroutine = GoroutineID()
	r.Fields = r.Fields[:0]
	r.Caller = CallerInfo{}
	r.Err = nil
	return r
}

// PutRecord returns a Record to the pool
func PutRecord(r *Record) {
	if r == nil {
		return
	}
	r.Name = ""
	r.Message = ""
	r.Fields = r.Fields[:0]
	r.Caller = CallerInfo{}
	r.Err = nil
	recordPool.Put(r)
}

// GetCaller retrieves caller information
func GetCaller(skip int) CallerInfo {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return CallerInfo{}
	}

	fn := runtime.FuncForPC(pc)
	var funcName string
	if fn != nil {
		funcName = fn.Name()
	}

	return CallerInfo{
		File:      file,
		ShortFile: filepath.Base(file),
		Line:      line,
		Function:  funcName,
		Defined:   true,
	}
}

// GoroutineID returns the id of the calling goroutine, parsed from the
// runtime stack header ("goroutine N [running]:"). The runtime exposes
// no thread identity, so the goroutine id stands in for a thread id.
func GoroutineID() uint64 {
	var buf [32]byte
	n := runtime.Stack(buf[:], false)
	// Skip "goroutine " and accumulate digits until the following space.
	var id uint64
	for i := len("goroutine "); i < n; i++ {
		c := buf[i]
		if c < '0' || c > '9' {
			break
		}
		id = id*10 + uint64(c-'0')
	}
	return id
}
