// Package ui contains the Bubble Tea program that drives the launcher popup.
// Model focuses on message orchestration; dedicated helpers own text input,
// selection movement, launching, and rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages. Update first
//     re-derives the candidate list from the prompt buffer so every handler
//     sees candidates that match what was last rendered.
//   - Messages are routed through a typed handler registry. Key presses go to
//     handleKeyMsg, which applies text edits (internal/ui/input.go) or
//     selection moves and confirmation (internal/ui/navigation.go).
//   - Confirmation resolves the highlighted candidate and hands it to the
//     command bus (internal/ui/command), which runs the launch asynchronously
//     and answers with a command.Result. A successful launch quits the
//     program; a failed one stays open and shows the error.
//
// State ownership:
//   - The prompt line, the highlighted row and the ranking live in
//     internal/ui/state. The model owns one Buffer and one Selection and
//     recomputes the candidate slice on every update; it is never cached
//     across updates as authoritative state.
//   - The executable index is produced once by an IndexLoader run from Init
//     and is read-only afterwards.
package ui
