package circuit_breaker

import (
	"errors"
	"sync"
	"time"
)

type Status uint8

const (
	Closed Status = iota + 1
	Open
	HalfOpen
)

func (s Status) String() string {
	switch s {
	case Closed:
		return "CLOSED"
	case Open:
		return "OPEN"
	case HalfOpen:
		return "HALFOPEN"
	default:
		return "UNKNOWN"
	}
}

var ErrOpen = errors.New("circuit breaker is open")

type CircuitBreaker interface {
	Call(fn func() error) error
	State() Status
	Reset()
}

type Option func(cb *breaker)

// WithWindow sets how many of the latest results are used to compute the failure ratio.
func WithWindow(n int) Option {
	return func(cb *breaker) {
		if n > 0 {
			cb.window = make([]bool, n)
		}
	}
}

func WithFailureRatio(ratio float64) Option {
	return func(cb *breaker) {
		cb.failureRatio = ratio
	}
}

// WithOpenTimeout sets how long the breaker rejects calls before letting trial calls through.
func WithOpenTimeout(d time.Duration) Option {
	return func(cb *breaker) {
		cb.openTimeout = d
	}
}

// WithRecoveryRequests sets the number of consecutive successful trial calls that close the breaker.
func WithRecoveryRequests(n int) Option {
	return func(cb *breaker) {
		cb.recoveryRequests = n
	}
}

// WithOnStateChange registers a hook called on every transition. It runs under the breaker lock and must not call back into it.
func WithOnStateChange(fn func(from, to Status)) Option {
	return func(cb *breaker) {
		cb.onStateChange = fn
	}
}

func WithClock(now func() time.Time) Option {
	return func(cb *breaker) {
		cb.now = now
	}
}

type breaker struct {
	mu    sync.Mutex
	state Status

	// ring of the latest results, true is a failure
	window   []bool
	pos      int
	failures int

	failureRatio     float64
	openTimeout      time.Duration
	openedAt         time.Time
	recoveryRequests int
	trialSuccesses   int

	onStateChange func(from, to Status)
	now           func() time.Time
}

func New(opts ...Option) CircuitBreaker {
	cb := &breaker{
		state:            Closed,
		window:           make([]bool, 100),
		failureRatio:     0.2,
		openTimeout:      time.Second,
		recoveryRequests: 2,
		now:              time.Now,
	}
	for _, opt := range opts {
		opt(cb)
	}
	return cb
}

func (cb *breaker) Call(fn func() error) error {
	cb.mu.Lock()
	if cb.state == Open {
		if cb.now().Sub(cb.openedAt) < cb.openTimeout {
			cb.mu.Unlock()
			return ErrOpen
		}
		cb.setState(HalfOpen)
	}
	cb.mu.Unlock()

	err := fn()

	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.record(err != nil)

	switch cb.state {
	case HalfOpen:
		if err != nil {
			cb.trip()
			break
		}
		cb.trialSuccesses++
		if cb.trialSuccesses >= cb.recoveryRequests {
			cb.reset()
		}
	case Closed:
		if float64(cb.failures)/float64(len(cb.window)) >= cb.failureRatio {
			cb.trip()
		}
	}
	return err
}

func (cb *breaker) State() Status {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

func (cb *breaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.reset()
}

func (cb *breaker) record(failed bool) {
	if cb.window[cb.pos] {
		cb.failures--
	}
	cb.window[cb.pos] = failed
	if failed {
		cb.failures++
	}
	cb.pos = (cb.pos + 1) % len(cb.window)
}

func (cb *breaker) trip() {
	cb.openedAt = cb.now()
	cb.setState(Open)
}

func (cb *breaker) reset() {
	for i := range cb.window {
		cb.window[i] = false
	}
	cb.pos, cb.failures = 0, 0
	cb.setState(Closed)
}

func (cb *breaker) setState(to Status) {
	from := cb.state
	cb.state = to
	cb.trialSuccesses = 0
	if from != to && cb.onStateChange != nil {
		cb.onStateChange(from, to)
	}
}
