package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// logHooks writes pipeline events to the debug log.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnBackground(_ context.Context, source, path string, d time.Duration) {
	h.logger.Debug("hook: background", "source", source, "path", path, "duration", d)
}

func (h *logHooks) OnLetterPlaced(_ context.Context, char rune, x, y, size, penalty float64, trials int) {
	h.logger.Debug("hook: letter",
		"char", string(char),
		"x", int(x), "y", int(y), "size", int(size),
		"penalty", penalty, "trials", trials)
}

func (h *logHooks) OnRenderComplete(_ context.Context, letters int, d time.Duration) {
	h.logger.Debug("hook: rendered", "letters", letters, "duration", d)
}

func (h *logHooks) OnOutputSaved(_ context.Context, path string, size int, err error) {
	if err != nil {
		h.logger.Debug("hook: save failed", "path", path, "size", size, "err", err)
		return
	}
	h.logger.Debug("hook: saved", "path", path, "size", size)
}
