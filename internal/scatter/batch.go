package scatter

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	vmath "github.com/Faultbox/scatterviz/pkg/math"
)

const (
	// DefaultWorkers is the number of goroutines a batch fans out to.
	DefaultWorkers = 8

	// MaxExponent caps a batch at 2^24 samples.
	MaxExponent = 24

	maxWorkers = 64
)

var (
	// ErrInvalidArgument is returned for inputs outside a sampler's domain.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrWorkerFailed is returned when a batch worker panics. The whole
	// batch is discarded.
	ErrWorkerFailed = errors.New("sample worker failed")
)

// SourceFactory builds the random source of one worker from its seed.
type SourceFactory func(seed int64) Source

// Batcher produces batches of samples across a fixed number of workers.
// It is safe for concurrent use.
type Batcher struct {
	workers    int
	seed       int64
	diag       Diagnostics
	log        *zap.Logger
	newSource  SourceFactory
	generation atomic.Uint64
}

// Option configures a Batcher.
type Option func(*Batcher)

// WithWorkers sets the number of workers. It must be a power of two.
func WithWorkers(n int) Option {
	return func(b *Batcher) { b.workers = n }
}

// WithSeed makes batches reproducible. Zero seeds from the clock.
func WithSeed(seed int64) Option {
	return func(b *Batcher) { b.seed = seed }
}

// WithDiagnostics sets the sink for invalid-sample reports.
func WithDiagnostics(d Diagnostics) Option {
	return func(b *Batcher) { b.diag = d }
}

// WithLogger sets the logger that traces batch failures at debug level.
func WithLogger(log *zap.Logger) Option {
	return func(b *Batcher) { b.log = log }
}

// WithSourceFactory replaces the per-worker random source.
func WithSourceFactory(f SourceFactory) Option {
	return func(b *Batcher) { b.newSource = f }
}

// NewBatcher creates a Batcher. Without options it runs DefaultWorkers
// clock-seeded workers and discards diagnostics.
func NewBatcher(opts ...Option) (*Batcher, error) {
	b := &Batcher{
		workers:   DefaultWorkers,
		diag:      NopDiagnostics{},
		log:       zap.NewNop(),
		newSource: newRandSource,
	}
	for _, opt := range opts {
		opt(b)
	}

	if b.workers < 1 || b.workers > maxWorkers || b.workers&(b.workers-1) != 0 {
		return nil, fmt.Errorf("%w: workers must be a power of two in [1, %d], got %d",
			ErrInvalidArgument, maxWorkers, b.workers)
	}
	if b.seed == 0 {
		b.seed = time.Now().UnixNano()
	}
	if b.diag == nil {
		b.diag = NopDiagnostics{}
	}
	if b.log == nil {
		b.log = zap.NewNop()
	}
	if b.newSource == nil {
		b.newSource = newRandSource
	}
	return b, nil
}

// Workers returns the number of workers per batch.
func (b *Batcher) Workers() int {
	return b.workers
}

// MinExponent returns the smallest exponent that splits evenly across the
// workers.
func (b *Batcher) MinExponent() int {
	return bits.TrailingZeros(uint(b.workers))
}

// Sample draws 2^exponent directions for the incident direction wi.
//
// Each worker draws an equal share with its own source and writes into its
// own region of the result, so no locking is needed. The order of the result
// carries no meaning. A panic in any worker fails the whole batch with
// ErrWorkerFailed.
func (b *Batcher) Sample(wi vmath.Vec2, g float32, exponent int, kind Kind) ([]vmath.Vec2, error) {
	if err := b.validate(wi, g, exponent, kind); err != nil {
		return nil, err
	}

	total := 1 << exponent
	chunk := total / b.workers
	out := make([]vmath.Vec2, total)
	gen := b.generation.Add(1)

	errs := make([]error, b.workers)
	var wg sync.WaitGroup
	wg.Add(b.workers)

	for w := 0; w < b.workers; w++ {
		// wi and g are copied into each worker when it is spawned.
		go func(w int, wi vmath.Vec2, g float32) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					errs[w] = fmt.Errorf("%w: worker %d: %v", ErrWorkerFailed, w, r)
				}
			}()

			src := b.newSource(b.workerSeed(gen, w))
			dst := out[w*chunk : (w+1)*chunk]
			for i := range dst {
				dst[i] = drawValid(src, kind, wi, g, b.diag, w)
			}
		}(w, wi, g)
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		b.log.Debug("sample batch failed",
			zap.Stringer("sampler", kind),
			zap.Int("exponent", exponent),
			zap.Error(err),
		)
		return nil, err
	}
	return out, nil
}

func (b *Batcher) validate(wi vmath.Vec2, g float32, exponent int, kind Kind) error {
	if lower := max(b.MinExponent(), 3); exponent < lower {
		return fmt.Errorf("%w: exponent %d below minimum %d", ErrInvalidArgument, exponent, lower)
	}
	if exponent > MaxExponent {
		return fmt.Errorf("%w: exponent %d above maximum %d", ErrInvalidArgument, exponent, MaxExponent)
	}
	if !kind.Valid() {
		return fmt.Errorf("%w: unknown sampler %s", ErrInvalidArgument, kind)
	}
	if !wi.IsFinite() {
		return fmt.Errorf("%w: incident direction %v is not finite", ErrInvalidArgument, wi)
	}
	if math.IsNaN(float64(g)) || g < -1 || g > 1 {
		return fmt.Errorf("%w: anisotropy %v outside [-1, 1]", ErrInvalidArgument, g)
	}
	return nil
}

// workerSeed mixes the batch generation and the worker index into the base
// seed so every worker of every batch gets a distinct stream.
func (b *Batcher) workerSeed(gen uint64, worker int) int64 {
	const (
		golden = 0x9e3779b97f4a7c15
		mix    = 0xbf58476d1ce4e5b9
	)
	return int64(uint64(b.seed) ^ gen*golden ^ uint64(worker+1)*mix)
}
