package notify

import (
	"fmt"
	"time"
)

// Kind classifies a notification.
type Kind int

const (
	KindSuccess Kind = iota
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindError:
		return "error"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Notifier receives transient user notifications. Calls are
// fire-and-forget: the grid never consults a result.
type Notifier interface {
	Notify(title, message string, kind Kind)
}

// Notice is one transient notification.
type Notice struct {
	Title   string
	Message string
	Kind    Kind
	At      time.Time
}

// Recorder queues the notices it receives until the UI drains them. It
// also serves as the notifier in tests.
type Recorder struct {
	pending []Notice
	all     []Notice
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Notify implements Notifier.
func (r *Recorder) Notify(title, message string, kind Kind) {
	n := Notice{Title: title, Message: message, Kind: kind, At: time.Now()}
	r.pending = append(r.pending, n)
	r.all = append(r.all, n)
}

// Flush returns the notices received since the last call and clears the
// pending queue.
func (r *Recorder) Flush() []Notice {
	out := r.pending
	r.pending = nil
	return out
}

// All returns every notice received since construction, in order.
func (r *Recorder) All() []Notice {
	out := make([]Notice, len(r.all))
	copy(out, r.all)
	return out
}
