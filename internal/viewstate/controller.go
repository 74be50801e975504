// Package viewstate owns the dashboard's interactive state: the selected metric
// card, the click counter and the sawtooth progress value driven by a timer.
//
// A Controller is not safe for concurrent use. All mutations, including timer
// ticks, are expected on one event loop; the Scheduler passed to Mount is
// responsible for delivering ticks there.
package viewstate

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"toybox/internal/clock"
	"toybox/internal/dashboard"
)

// DefaultInterval is the time between progress ticks.
const DefaultInterval = 100 * time.Millisecond

// ProgressCeiling is the inclusive ceiling of State.Progress.
const ProgressCeiling = 100

// State is a snapshot of the three view-state scalars.
type State struct {
	Metric   dashboard.MetricKey
	Counter  int
	Progress int
}

// InitialState is the state of a freshly created controller.
func InitialState() State {
	return State{Metric: dashboard.DefaultMetric}
}

// Controller owns State and the recurring progress tick.
type Controller struct {
	id       string
	state    State
	interval time.Duration
	cancel   func()

	listeners    map[int]func(State)
	listenerSeq  int
	listenerKeys []int

	logger *slog.Logger
	tracer trace.Tracer
}

// Option configures a Controller.
type Option func(*Controller)

// WithInterval sets the tick interval. Non-positive values keep the default.
func WithInterval(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.interval = d
		}
	}
}

// WithLogger sets the logger used for lifecycle and debug messages.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithTracer sets the tracer used to record user actions.
func WithTracer(t trace.Tracer) Option {
	return func(c *Controller) {
		if t != nil {
			c.tracer = t
		}
	}
}

// New creates an unmounted controller in InitialState.
func New(opts ...Option) *Controller {
	c := &Controller{
		id:        uuid.NewString(),
		state:     InitialState(),
		interval:  DefaultInterval,
		listeners: make(map[int]func(State)),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		tracer:    otel.Tracer("toybox/viewstate"),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With(slog.String("controller", c.id))
	return c
}

// ID returns the controller's instance ID.
func (c *Controller) ID() string { return c.id }

// Interval returns the tick interval.
func (c *Controller) Interval() time.Duration { return c.interval }

// State returns the current snapshot.
func (c *Controller) State() State { return c.state }

// SelectMetric marks key as the active card. Unknown keys are ignored.
func (c *Controller) SelectMetric(key dashboard.MetricKey) {
	_, span := c.tracer.Start(context.Background(), "viewstate.select_metric",
		trace.WithAttributes(
			attribute.String("toybox.controller.id", c.id),
			attribute.String("toybox.metric", string(key)),
		))
	defer span.End()

	if !key.Valid() {
		c.logger.Debug("ignoring unknown metric", slog.String("metric", string(key)))
		span.SetAttributes(attribute.Bool("toybox.ignored", true))
		return
	}
	c.state.Metric = key
	c.notify()
}

// AdjustCounter adds delta to the counter. There is no clamping.
func (c *Controller) AdjustCounter(delta int) {
	_, span := c.tracer.Start(context.Background(), "viewstate.adjust_counter",
		trace.WithAttributes(
			attribute.String("toybox.controller.id", c.id),
			attribute.Int("toybox.counter.delta", delta),
		))
	defer span.End()

	c.state.Counter += delta
	span.SetAttributes(attribute.Int("toybox.counter.value", c.state.Counter))
	c.notify()
}

// ResetCounter sets the counter back to zero.
func (c *Controller) ResetCounter() {
	_, span := c.tracer.Start(context.Background(), "viewstate.reset_counter",
		trace.WithAttributes(
			attribute.String("toybox.controller.id", c.id),
			attribute.Int("toybox.counter.previous", c.state.Counter),
		))
	defer span.End()

	c.state.Counter = 0
	c.notify()
}

// Tick advances progress by one. A tick at ProgressCeiling resets it to zero,
// so a full cycle is ProgressCeiling+1 ticks.
func (c *Controller) Tick() {
	if c.state.Progress >= ProgressCeiling {
		c.state.Progress = 0
		c.logger.Debug("progress cycle complete")
	} else {
		c.state.Progress++
	}
	c.notify()
}

// Mount starts the recurring tick on s. Mounting an already mounted controller
// is a no-op.
func (c *Controller) Mount(s clock.Scheduler) {
	if c.cancel != nil {
		return
	}
	c.cancel = s.Every(c.interval, c.Tick)
	c.logger.Debug("mounted", slog.Duration("interval", c.interval))
}

// Unmount cancels the recurring tick. Safe to call when not mounted.
func (c *Controller) Unmount() {
	if c.cancel == nil {
		return
	}
	c.cancel()
	c.cancel = nil
	c.logger.Debug("unmounted", slog.Int("progress", c.state.Progress))
}

// Mounted reports whether the tick is active.
func (c *Controller) Mounted() bool {
	return c.cancel != nil
}

// Subscribe registers fn to receive the new State after every mutation.
// Listeners run in subscription order. The returned func unsubscribes.
func (c *Controller) Subscribe(fn func(State)) (unsubscribe func()) {
	c.listenerSeq++
	key := c.listenerSeq
	c.listeners[key] = fn
	c.listenerKeys = append(c.listenerKeys, key)
	return func() {
		if _, ok := c.listeners[key]; !ok {
			return
		}
		delete(c.listeners, key)
		for i, k := range c.listenerKeys {
			if k == key {
				c.listenerKeys = append(c.listenerKeys[:i], c.listenerKeys[i+1:]...)
				break
			}
		}
	}
}

func (c *Controller) notify() {
	if len(c.listenerKeys) == 0 {
		return
	}
	s := c.state
	keys := append([]int(nil), c.listenerKeys...)
	for _, k := range keys {
		if fn, ok := c.listeners[k]; ok {
			fn(s)
		}
	}
}
