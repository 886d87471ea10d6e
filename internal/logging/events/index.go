package events

import (
	"time"

	"github.com/atomicstack/tmux-popup-launcher/internal/logging"
)

type IndexTracer struct{}

var Index = IndexTracer{}

func (IndexTracer) Skip(dir string, err error) {
	payload := map[string]interface{}{"dir": dir}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("index.skip", payload)
}

func (IndexTracer) Scanned(dirs, names int, elapsed time.Duration) {
	logging.Trace("index.scanned", map[string]interface{}{
		"dirs":    dirs,
		"names":   names,
		"elapsed": elapsed.String(),
	})
}
