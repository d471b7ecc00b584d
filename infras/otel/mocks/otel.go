package mocks

import (
	"context"
	"tzconv/infras/otel"
)

type otelImpl struct {
	recorder *Recorder
}

// NewScope implements otel.Otel.
func (o *otelImpl) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	if o.recorder == nil {
		return ctx, NewScope()
	}

	o.recorder.mu.Lock()
	o.recorder.spans = append(o.recorder.spans, spanName)
	o.recorder.mu.Unlock()

	return ctx, &scopeImpl{recorder: o.recorder}
}

// Shutdown implements otel.Otel.
func (o *otelImpl) Shutdown(_ context.Context) error {
	return nil
}

func NewOtel() otel.Otel {
	return &otelImpl{}
}

// NewRecordingOtel returns an otel.Otel whose scopes report into the returned Recorder.
func NewRecordingOtel() (otel.Otel, *Recorder) {
	recorder := &Recorder{}

	return &otelImpl{recorder: recorder}, recorder
}
