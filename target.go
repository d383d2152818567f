package hypersink

import (
	"io"
	"sync"

	"github.com/hyp3rd/ewrap"
)

// Target is a registered log destination. It owns a Formatter reference, a
// per-instance delivery lock and a Sink. Construction registers the target
// and subscribes it to every filter known at that moment; Close reverses
// both.
//
// The delivery lock serializes every delivery through one target instance,
// buffered or direct, so concurrent callers can never interleave partial
// writes. Construction and Close of distinct targets may run concurrently;
// they are serialized only by the registry lock.
type Target struct {
	mu        sync.Mutex
	formatter Formatter
	sink      Sink
	registry  *Registry
	closed    bool
}

// Option configures a Target at construction time.
type Option func(t *Target)

// WithFormatter sets the target's formatter. The default is a TextFormatter.
func WithFormatter(f Formatter) Option {
	return func(t *Target) {
		if f != nil {
			t.formatter = f
		}
	}
}

// WithRegistry binds the target to a registry other than the process-wide
// default.
func WithRegistry(r *Registry) Option {
	return func(t *Target) {
		if r != nil {
			t.registry = r
		}
	}
}

// NewTarget creates a target delivering to sink, registers it and subscribes
// it to all currently known filters.
func NewTarget(sink Sink, opts ...Option) *Target {
	t := &Target{
		sink:      sink,
		formatter: NewTextFormatter(),
	}

	for _, opt := range opts {
		opt(t)
	}

	if t.registry == nil {
		t.registry = Default()
	}

	t.registry.Register(t)

	for _, f := range t.registry.Filters() {
		f.Subscribe(t)
	}

	return t
}

// SetFormatter swaps the target's formatter reference.
//
// The swap is deliberately unlocked: it is a configuration-time operation
// that callers must serialize themselves, not a safe-at-any-time mutation
// concurrent with Receive on the same target.
func (t *Target) SetFormatter(f Formatter) {
	if f != nil {
		t.formatter = f
	}
}

// Formatter returns the target's current formatter reference. Like
// SetFormatter, this is a configuration-time operation.
func (t *Target) Formatter() Formatter {
	return t.formatter
}

// Receive formats the event and delivers it to the target's sink. The whole
// operation, formatting included, runs under the target's delivery lock.
func (t *Target) Receive(ev *Event) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return ErrTargetClosed
	}

	return t.sink.Output(t.formatter.Format(ev, t))
}

// outputLocked delivers pre-formatted data to the sink. The caller must
// already hold the delivery lock; Buffer.Dump uses this path to serialize
// buffered flushes against direct Receive calls on the same target.
func (t *Target) outputLocked(data string) error {
	if t.closed {
		return ErrTargetClosed
	}

	return t.sink.Output(data)
}

// Close unsubscribes the target from every known filter, deregisters it and
// closes its sink when the sink holds resources. Close is idempotent. After
// Close, Receive returns ErrTargetClosed.
//
// A buffer used as this target's sink is flushed by its own Close; do not
// point that buffer back at this same target, or the final flush will find
// it already closed.
func (t *Target) Close() error {
	t.mu.Lock()

	if t.closed {
		t.mu.Unlock()

		return nil
	}

	t.closed = true
	t.mu.Unlock()

	for _, f := range t.registry.Filters() {
		f.Unsubscribe(t)
	}

	t.registry.Deregister(t)

	if closer, ok := t.sink.(io.Closer); ok {
		err := closer.Close()
		if err != nil {
			return ewrap.Wrap(err, "closing target sink")
		}
	}

	return nil
}
