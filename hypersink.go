// Package hypersink implements the output-delivery layer of a structured
// logging pipeline.
//
// The package manages the set of live log destinations, dispatches formatted
// records to them with thread safety, and provides a batching buffer that
// amortizes per-record delivery cost:
// - Registry: process-wide set of live Targets, mutated under a dedicated lock
// - Target: owns a Formatter and a per-instance delivery lock; Receive
// formats a classified Event and forwards it to the Target's Sink
// - Sink variants: error stream, colored standard output, platform debug
// facility, and lazily opened append-mode file
// - Buffer: a Sink-shaped component that frames outgoing strings in a fixed
// arena and flushes them to a wrapped Target
//
// All delivery is synchronous and blocking; there is no asynchronous path and
// no automatic retry. A failing delivery returns an error to the caller,
// which decides whether to surface or ignore it.
//
// Basic usage:
//
//	target := hypersink.NewTarget(hypersink.NewStderrSink())
//	defer target.Close()
//
//	err := target.Receive(&hypersink.Event{
//		Level:   hypersink.InfoLevel,
//		Message: "service started",
//	})
//
// Wrapping a target with a batching buffer:
//
//	inner := hypersink.NewTarget(fileSink)
//	buf, err := hypersink.NewBuffer(4096, inner)
//	// ... buf.Output / buf.Insert accumulate frames ...
//	err = buf.Close() // flushes remaining frames into inner
package hypersink

// Sink is the medium-specific write operation behind a Target. One
// implementation exists per destination variant; the variant is chosen when
// the Target is constructed.
//
// Output must never panic; every failure is reported through the returned
// error. Implementations are not required to be safe for concurrent use on
// their own: the owning Target's delivery lock serializes all calls.
type Sink interface {
	// Output writes one formatted record to the underlying medium.
	Output(data string) error
}
