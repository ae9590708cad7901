package orchestrator

import "fmt"

// ProgressStatus is the state of one expert within a run.
type ProgressStatus string

const (
	ProgressPending  ProgressStatus = "pending"
	ProgressWorking  ProgressStatus = "working"
	ProgressComplete ProgressStatus = "complete"
	ProgressFailed   ProgressStatus = "failed"
)

// ProgressEvent is emitted to the caller while a run is in flight.
type ProgressEvent struct {
	Expert  string
	Status  ProgressStatus
	Message string
}

// ProgressReporter carries per-expert run events to a single consumer.
// A run never blocks on a slow consumer: the channel holds 64 events and
// anything past that is dropped.
type ProgressReporter struct {
	ch chan ProgressEvent
}

// NewProgressReporter returns a reporter ready to be attached with WithProgress.
func NewProgressReporter() *ProgressReporter {
	return &ProgressReporter{
		ch: make(chan ProgressEvent, 64),
	}
}

// Emit delivers an event, or drops it when the buffer is full.
func (pr *ProgressReporter) Emit(event ProgressEvent) {
	select {
	case pr.ch <- event:
	default:
	}
}

// Subscribe returns the receive side of the event stream.
func (pr *ProgressReporter) Subscribe() <-chan ProgressEvent {
	return pr.ch
}

// Close ends the stream. Call only after the run that emits to it has
// returned.
func (pr *ProgressReporter) Close() {
	close(pr.ch)
}

// FormatProgress renders one event as a terminal status line.
func FormatProgress(event ProgressEvent) string {
	switch event.Status {
	case ProgressPending:
		return fmt.Sprintf("  ○ %s (pending)", event.Expert)
	case ProgressWorking:
		return fmt.Sprintf("  ● %s...", event.Expert)
	case ProgressComplete:
		return fmt.Sprintf("  ✓ %s complete", event.Expert)
	case ProgressFailed:
		return fmt.Sprintf("  ✗ %s failed: %s", event.Expert, event.Message)
	default:
		return fmt.Sprintf("  ? %s (unknown status)", event.Expert)
	}
}
