package hypersink

import (
	"github.com/hyp3rd/ewrap"
)

// Pipeline is a built delivery chain: the public target records are sent to,
// plus the buffered inner target when buffering is enabled.
type Pipeline struct {
	target *Target
	inner  *Target
	buffer *Buffer
}

// Build assembles a registered delivery pipeline from the configuration.
// With Buffered set, records received by the pipeline's target accumulate in
// a batching buffer and reach the sink on Flush, on buffer overflow, or on
// Close.
//
// Options (formatter, registry) apply to every target the pipeline creates.
func Build(cfg Config, opts ...Option) (*Pipeline, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, ewrap.Wrap(err, "invalid pipeline configuration")
	}

	sink, err := buildSink(cfg)
	if err != nil {
		return nil, err
	}

	if !cfg.Buffered {
		return &Pipeline{target: NewTarget(sink, opts...)}, nil
	}

	inner := NewTarget(sink, opts...)

	buf, err := NewBuffer(cfg.BufferCapacity, inner)
	if err != nil {
		closeErr := inner.Close()
		if closeErr != nil {
			return nil, ewrap.Wrap(closeErr, "closing inner target after buffer failure")
		}

		return nil, err
	}

	return &Pipeline{
		target: NewTarget(buf, opts...),
		inner:  inner,
		buffer: buf,
	}, nil
}

func buildSink(cfg Config) (Sink, error) {
	switch cfg.Sink {
	case SinkStderr:
		return NewStderrSink(nil), nil
	case SinkStdout:
		s := NewStdoutSink(nil, cfg.ColorMode)
		s.SetColor(cfg.Color)

		return s, nil
	case SinkDebug:
		return NewDebugSink(), nil
	case SinkNull:
		return NewNullSink(), nil
	case SinkFile:
		return NewFileSink(cfg.FilePath, WithCharUnit(cfg.CharUnit))
	default:
		return nil, ewrap.New("unknown sink kind").WithMetadata("kind", string(cfg.Sink))
	}
}

// Target returns the target records should be delivered to.
func (p *Pipeline) Target() *Target {
	return p.target
}

// Flush forces buffered records through to the sink. Unbuffered pipelines
// return nil.
func (p *Pipeline) Flush() error {
	if p.buffer == nil {
		return nil
	}

	return p.buffer.Dump()
}

// Close tears the pipeline down in delivery order: the public target first,
// which flushes and releases the buffer when one is present, then the inner
// target, which closes the sink.
func (p *Pipeline) Close() error {
	err := p.target.Close()

	if p.inner != nil {
		innerErr := p.inner.Close()
		if err == nil {
			err = innerErr
		}
	}

	return err
}
