package benchmark

import (
	"github.com/richlog/richlog/core"
	"github.com/richlog/richlog/handler"
)

type noopHandler struct{}

func newNoopHandler() handler.Handler {
	return &noopHandler{}
}

func (h *noopHandler) Handle(r *core.Record) error {
	_ = len(r.Message)
	return nil
}

func (h *noopHandler) Close() error {
	return nil
}

func (h *noopHandler) CanRecycleRecord() bool {
	return true
}
