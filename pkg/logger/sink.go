package logger

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type Stage string

const (
	StageStarted  Stage = "started"
	StageFinished Stage = "finished"
	StageFailed   Stage = "failed"
)

// Event is one step of an observed operation. Duration and Err are set on
// the closing event only.
type Event struct {
	Operation string
	Stage     Stage
	Duration  time.Duration
	Err       error
	Fields    []zap.Field
}

// Sink receives operation events. Implementations must be safe for
// concurrent use.
type Sink interface {
	Emit(ctx context.Context, e Event)
}

type ZapSink struct {
	log *zap.Logger
}

// NewZapSink writes events to l, or to the global logger when l is nil.
func NewZapSink(l *zap.Logger) *ZapSink {
	return &ZapSink{log: l}
}

func (s *ZapSink) Emit(_ context.Context, e Event) {
	l := s.log
	if l == nil {
		l = zap.L()
	}

	fields := append([]zap.Field{zap.String("op", e.Operation)}, e.Fields...)
	switch e.Stage {
	case StageStarted:
		l.Debug("operation started", fields...)
	case StageFinished:
		l.Info("operation finished", append(fields, zap.Duration("took", e.Duration))...)
	case StageFailed:
		l.Warn("operation failed", append(fields, zap.Duration("took", e.Duration), zap.Error(e.Err))...)
	}
}

// Observe runs fn between a started event and a finished or failed one.
func Observe[T any](ctx context.Context, sink Sink, op string, fn func(ctx context.Context) (T, error), fields ...zap.Field) (T, error) {
	sink.Emit(ctx, Event{Operation: op, Stage: StageStarted, Fields: fields})

	start := time.Now()
	res, err := fn(ctx)
	took := time.Since(start)

	if err != nil {
		sink.Emit(ctx, Event{Operation: op, Stage: StageFailed, Duration: took, Err: err, Fields: fields})
		return res, err
	}
	sink.Emit(ctx, Event{Operation: op, Stage: StageFinished, Duration: took, Fields: fields})
	return res, nil
}

// ObserveErr is Observe for operations without a result.
func ObserveErr(ctx context.Context, sink Sink, op string, fn func(ctx context.Context) error, fields ...zap.Field) error {
	_, err := Observe(ctx, sink, op, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	}, fields...)
	return err
}
