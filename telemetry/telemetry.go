// Package telemetry provides an OpenTelemetry wrapper for agents. Wrap
// composes with any Agent the same way an adapter does: the wrapper
// satisfies the contract itself, holds no decision state of its own, and
// delegates every operation to the inner agent while emitting spans and
// metrics around it.
//
// Spans are created for Act, Record, and Reset. Metrics record an act
// counter and a reward histogram. Every wrapper instance carries a unique
// instance ID attribute so concurrent episodes using separate instances can
// be told apart in traces.
package telemetry

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/polyrl/agentkit/agent"
)

// scopeName is the instrumentation scope for tracers and meters created by
// this package.
const scopeName = "github.com/polyrl/agentkit/telemetry"

// config holds the options applied by Wrap.
type config struct {
	name           string
	logger         *slog.Logger
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
}

// Option customizes a wrapper created by Wrap.
type Option func(*config)

// WithName sets the agent name reported on spans and metrics. Defaults to
// "agent".
func WithName(name string) Option {
	return func(c *config) {
		if name != "" {
			c.name = name
		}
	}
}

// WithLogger sets the structured logger used to report non-fatal
// instrumentation problems, such as metric instrument creation failures.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTracerProvider sets the tracer provider. Defaults to the global
// provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *config) {
		if tp != nil {
			c.tracerProvider = tp
		}
	}
}

// WithMeterProvider sets the meter provider. Defaults to the global
// provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *config) {
		if mp != nil {
			c.meterProvider = mp
		}
	}
}

// Agent instruments an inner agent with spans and metrics. It satisfies
// agent.Agent for the same observation and action types as the inner agent,
// so it can be dropped in anywhere the inner agent is used, including inside
// an adapter.
type Agent[O, A any] struct {
	inner agent.Agent[O, A]

	name string
	id   string

	tracer     trace.Tracer
	actCounter metric.Int64Counter
	rewardHist metric.Float64Histogram
}

// Wrap instruments inner. Metric instrument creation failures are logged and
// the affected instrument is skipped; they never fail the wrap, per the rule
// that observability must not break decision flow. Returns
// agent.ErrNilAgent if inner is nil.
func Wrap[O, A any](inner agent.Agent[O, A], opts ...Option) (*Agent[O, A], error) {
	if inner == nil {
		return nil, agent.ErrNilAgent
	}

	cfg := config{
		name:           "agent",
		logger:         slog.Default(),
		tracerProvider: otel.GetTracerProvider(),
		meterProvider:  otel.GetMeterProvider(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	w := &Agent[O, A]{
		inner:  inner,
		name:   cfg.name,
		id:     uuid.NewString(),
		tracer: cfg.tracerProvider.Tracer(scopeName),
	}

	meter := cfg.meterProvider.Meter(scopeName)

	var err error
	w.actCounter, err = meter.Int64Counter(
		"agent.act.count",
		metric.WithDescription("Number of actions taken by the agent"),
		metric.WithUnit("1"),
	)
	if err != nil {
		cfg.logger.Warn("failed to create act counter",
			"agent", w.name,
			"error", err)
		w.actCounter = nil
	}

	w.rewardHist, err = meter.Float64Histogram(
		"agent.record.reward",
		metric.WithDescription("Reward values delivered to the agent"),
		metric.WithUnit("1"),
	)
	if err != nil {
		cfg.logger.Warn("failed to create reward histogram",
			"agent", w.name,
			"error", err)
		w.rewardHist = nil
	}

	return w, nil
}

// InstanceID returns the unique identifier attached to this wrapper's spans
// and metrics.
func (w *Agent[O, A]) InstanceID() string {
	return w.id
}

// attributes returns the common span and metric attributes. The mode is read
// at call time so spans reflect the mode the operation ran in.
func (w *Agent[O, A]) attributes() []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("agent.name", w.name),
		attribute.String("agent.instance", w.id),
		attribute.String("agent.mode", w.inner.Mode().String()),
	}
}

// Mode reports the inner agent's mode.
func (w *Agent[O, A]) Mode() agent.Mode {
	return w.inner.Mode()
}

// Act delegates to the inner agent inside a span and increments the act
// counter. The inner agent's action and error are returned unchanged.
func (w *Agent[O, A]) Act(obs O) (A, error) {
	ctx, span := w.tracer.Start(context.Background(), "agent.act",
		trace.WithAttributes(w.attributes()...))
	defer span.End()

	action, err := w.inner.Act(obs)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}

	if w.actCounter != nil {
		w.actCounter.Add(ctx, 1, metric.WithAttributes(w.attributes()...))
	}

	return action, err
}

// Record delegates to the inner agent inside a span and records the reward
// in the reward histogram.
func (w *Agent[O, A]) Record(state O, action A, reward float64, next O) error {
	attrs := append(w.attributes(), attribute.Float64("agent.reward", reward))

	ctx, span := w.tracer.Start(context.Background(), "agent.record",
		trace.WithAttributes(attrs...))
	defer span.End()

	err := w.inner.Record(state, action, reward, next)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}

	if w.rewardHist != nil {
		w.rewardHist.Record(ctx, reward, metric.WithAttributes(w.attributes()...))
	}

	return err
}

// Reset delegates to the inner agent inside a span.
func (w *Agent[O, A]) Reset() {
	_, span := w.tracer.Start(context.Background(), "agent.reset",
		trace.WithAttributes(w.attributes()...))
	defer span.End()

	w.inner.Reset()
}

// TrainingMode delegates to the inner agent.
func (w *Agent[O, A]) TrainingMode() {
	w.inner.TrainingMode()
}

// TestMode delegates to the inner agent.
func (w *Agent[O, A]) TestMode() {
	w.inner.TestMode()
}
