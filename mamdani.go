package mamdani

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/mamdani/pkg/adapters/file"
	"github.com/aretw0/mamdani/pkg/adapters/memory"
	"github.com/aretw0/mamdani/pkg/controller"
	"github.com/aretw0/mamdani/pkg/domain"
	"github.com/aretw0/mamdani/pkg/pipeline"
	"github.com/aretw0/mamdani/pkg/ports"
	"github.com/aretw0/mamdani/pkg/registry"
	"github.com/aretw0/mamdani/pkg/schema"
)

// Engine is the high-level entry point for the library.
// It compiles a pipeline document and serves fuzzification, inference and evaluation.
// All methods are safe for concurrent use; Reload swaps the compiled document atomically.
type Engine struct {
	mu  sync.RWMutex
	reg *registry.Registry

	loader      ports.DocumentLoader
	store       ports.RecordStore
	hooks       domain.LifecycleHooks
	logger      *slog.Logger
	concurrency int
	Name        string

	subsMu sync.Mutex
	subs   map[chan string]struct{}
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = e.hooks.Merge(hooks)
	}
}

// WithLoader injects a custom DocumentLoader, bypassing the default file loader.
func WithLoader(l ports.DocumentLoader) Option {
	return func(e *Engine) {
		e.loader = l
	}
}

// WithDocument serves a fixed in-memory document.
func WithDocument(doc *schema.Document) Option {
	return func(e *Engine) {
		e.loader = memory.NewLoader(doc)
	}
}

// WithRecordStore persists every evaluation in store.
func WithRecordStore(store ports.RecordStore) Option {
	return func(e *Engine) {
		e.store = store
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithConcurrency limits how many stages or sweep runs are evaluated at once.
func WithConcurrency(n int) Option {
	return func(e *Engine) {
		e.concurrency = n
	}
}

// New initializes a new Engine.
// By default, it reads the document at configPath (YAML, JSON or TOML).
// If WithLoader or WithDocument is provided, configPath can be empty.
func New(configPath string, opts ...Option) (*Engine, error) {
	eng := &Engine{subs: make(map[chan string]struct{})}

	for _, opt := range opts {
		opt(eng)
	}

	if eng.loader == nil {
		if configPath == "" {
			return nil, fmt.Errorf("configPath is required when no custom loader is provided")
		}
		eng.loader = file.NewLoader(configPath)
	}

	if eng.logger == nil {
		eng.logger = slog.New(slog.DiscardHandler)
	}
	if fl, ok := eng.loader.(*file.Loader); ok && fl.Logger == nil {
		fl.Logger = eng.logger
	}

	reg, err := eng.compile(context.Background())
	if err != nil {
		return nil, err
	}
	eng.reg = reg

	eng.Name = reg.Document().Name
	if eng.Name == "" && configPath != "" {
		eng.Name = strings.TrimSuffix(filepath.Base(configPath), filepath.Ext(configPath))
	}
	eng.logger = eng.logger.With("pipeline", eng.Name)

	return eng, nil
}

func (e *Engine) compile(ctx context.Context) (*registry.Registry, error) {
	doc, err := e.loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}
	return registry.Compile(doc,
		pipeline.WithLogger(e.logger),
		pipeline.WithLifecycleHooks(e.hooks),
		pipeline.WithConcurrency(e.concurrency),
	)
}

// Registry returns the currently compiled registry.
func (e *Engine) Registry() *registry.Registry {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.reg
}

// Document returns a copy of the current document.
func (e *Engine) Document() *schema.Document {
	return e.Registry().Document().Clone()
}

// Store returns the configured record store, or nil.
func (e *Engine) Store() ports.RecordStore {
	return e.store
}

// Loader returns the underlying DocumentLoader used by the engine.
func (e *Engine) Loader() ports.DocumentLoader {
	return e.loader
}

// Fuzzify converts value into membership degrees of the named variable.
func (e *Engine) Fuzzify(ctx context.Context, variable string, value float64) (domain.Membership, error) {
	v, err := e.Registry().Variable(variable)
	if err != nil {
		return nil, err
	}

	m, err := v.Fuzzify(value)
	if e.hooks.OnFuzzify != nil {
		e.hooks.OnFuzzify(ctx, &domain.FuzzifyEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventFuzzify},
			Variable:  variable,
			Value:     value,
			Result:    m,
			Err:       err,
		})
	}
	return m, err
}

// Defuzzify converts membership degrees of the named variable into a crisp value.
// An interval of zero samples the domain with step 1.
func (e *Engine) Defuzzify(ctx context.Context, variable string, degrees domain.Membership, interval float64) (float64, error) {
	v, err := e.Registry().Variable(variable)
	if err != nil {
		return 0, err
	}
	if interval == 0 {
		return v.Defuzzify(degrees)
	}
	return v.DefuzzifyStep(degrees, interval)
}

// Infer applies the named controller to a pair of crisp inputs.
func (e *Engine) Infer(ctx context.Context, name string, valueA, valueB float64) (domain.Membership, error) {
	c, err := e.Registry().Controller(name)
	if err != nil {
		return nil, err
	}

	m, err := c.FuzzifyPair(valueA, valueB)
	if e.hooks.OnInfer != nil {
		e.hooks.OnInfer(ctx, &domain.InferEvent{
			EventBase:  domain.EventBase{Timestamp: time.Now(), Type: domain.EventInfer},
			Controller: name,
			InputA:     valueA,
			InputB:     valueB,
			Result:     m,
			Err:        err,
		})
	}
	return m, err
}

// Explain lists the rules of the named controller that fire for a pair of inputs.
func (e *Engine) Explain(ctx context.Context, name string, valueA, valueB float64) ([]controller.Activation, error) {
	c, err := e.Registry().Controller(name)
	if err != nil {
		return nil, err
	}
	return c.Explain(valueA, valueB)
}

// Evaluate runs the stage pipeline and returns the evaluation record.
// When a record store is configured the record is persisted before returning.
func (e *Engine) Evaluate(ctx context.Context, inputs map[string]float64) (*domain.Record, error) {
	p, err := e.Registry().Pipeline()
	if err != nil {
		return nil, err
	}

	res, err := p.Run(ctx, inputs)
	if err != nil {
		e.logger.Debug("evaluation failed", "err", err)
		return nil, err
	}

	rec := res.Record(p.Name(), inputs)
	if e.store != nil {
		if err := e.store.Save(ctx, rec); err != nil {
			return nil, fmt.Errorf("failed to save record: %w", err)
		}
	}
	e.logger.Info("evaluation complete", "record", rec.ID, "output", rec.Output, "crisp", rec.Crisp)
	return rec, nil
}

// Sweep evaluates the pipeline once per value of input, other inputs taken from base.
func (e *Engine) Sweep(ctx context.Context, base map[string]float64, input string, values []float64) ([]pipeline.SweepPoint, error) {
	p, err := e.Registry().Pipeline()
	if err != nil {
		return nil, err
	}
	return p.Sweep(ctx, base, input, values)
}

// Reload loads and compiles the document again and swaps it in.
// On failure the previous document stays active.
func (e *Engine) Reload(ctx context.Context) error {
	reg, err := e.compile(ctx)
	if err != nil {
		e.logger.Warn("reload rejected", "err", err)
		return err
	}

	e.mu.Lock()
	e.reg = reg
	e.mu.Unlock()

	e.logger.Info("document reloaded")
	e.broadcast("reload")
	return nil
}

// Watch returns a channel that receives an event name after every successful reload.
// The channel is closed when ctx is done.
func (e *Engine) Watch(ctx context.Context) (<-chan string, error) {
	ch := make(chan string, 1)

	e.subsMu.Lock()
	e.subs[ch] = struct{}{}
	e.subsMu.Unlock()

	go func() {
		<-ctx.Done()
		e.subsMu.Lock()
		delete(e.subs, ch)
		close(ch)
		e.subsMu.Unlock()
	}()
	return ch, nil
}

func (e *Engine) broadcast(event string) {
	e.subsMu.Lock()
	defer e.subsMu.Unlock()
	for ch := range e.subs {
		select {
		case ch <- event:
		default:
			// Slow subscriber, it already has a pending notification.
		}
	}
}

// AutoReload reloads the document whenever the loader reports a change.
// It blocks until ctx is done and fails if the loader cannot be watched.
func (e *Engine) AutoReload(ctx context.Context) error {
	w, ok := e.loader.(ports.Watchable)
	if !ok {
		return fmt.Errorf("current loader does not support watching")
	}
	changes, err := w.Watch(ctx)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-changes:
			if !ok {
				return nil
			}
			_ = e.Reload(ctx)
		}
	}
}

var _ ports.InferenceEngine = (*Engine)(nil)
