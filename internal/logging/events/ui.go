package events

import "github.com/atomicstack/tmux-popup-launcher/internal/logging"

type UITracer struct{}

type BufferTracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Buffer  = BufferTracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
)

func (UITracer) Selection(index int, candidate string) {
	logging.Trace("ui.selection", map[string]interface{}{"index": index, "candidate": candidate})
}

func (UITracer) Candidates(prefix string, candidates []string) {
	logging.Trace("ui.candidates", map[string]interface{}{"prefix": prefix, "candidates": candidates})
}

func (BufferTracer) Insert(text string, cursor int) {
	logging.Trace("buffer.insert", map[string]interface{}{"text": text, "cursor": cursor})
}

func (BufferTracer) Backspace(text string, cursor int) {
	logging.Trace("buffer.backspace", map[string]interface{}{"text": text, "cursor": cursor})
}

func (BufferTracer) Cursor(cursor int) {
	logging.Trace("buffer.cursor", map[string]interface{}{"cursor": cursor})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (ActionTracer) NoCandidate(prefix string, selection, candidates int) {
	logging.Trace("action.no-candidate", map[string]interface{}{
		"prefix":     prefix,
		"selection":  selection,
		"candidates": candidates,
	})
}

func (CommandTracer) Queue(program, mode string) {
	logging.Trace("command.queue", map[string]interface{}{"program": program, "mode": mode})
}

func (CommandTracer) Spawn(name string, args []string) {
	logging.Trace("command.spawn", map[string]interface{}{"name": name, "args": args})
}

func (CommandTracer) Result(program, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"program": program, "msg": msgType})
}
