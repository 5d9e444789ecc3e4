package circuit_breaker_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Astemirdum/book-service/pkg/circuit_breaker"
	"github.com/stretchr/testify/require"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func Test_breaker_Call(t *testing.T) {
	t.Parallel()
	errService := errors.New("service error")
	ok := func() error { return nil }
	fail := func() error { return errService }

	tests := []struct {
		name string
		opts []circuit_breaker.Option
		run  func(t *testing.T, cb circuit_breaker.CircuitBreaker, clk *clock)
	}{
		{
			name: "stays closed on success",
			opts: []circuit_breaker.Option{circuit_breaker.WithWindow(10), circuit_breaker.WithFailureRatio(0.3)},
			run: func(t *testing.T, cb circuit_breaker.CircuitBreaker, _ *clock) {
				for i := 0; i < 50; i++ {
					require.NoError(t, cb.Call(ok))
				}
				require.Equal(t, circuit_breaker.Closed, cb.State())
			},
		},
		{
			name: "opens at the failure ratio",
			opts: []circuit_breaker.Option{circuit_breaker.WithWindow(10), circuit_breaker.WithFailureRatio(0.3)},
			run: func(t *testing.T, cb circuit_breaker.CircuitBreaker, _ *clock) {
				for i := 0; i < 2; i++ {
					require.ErrorIs(t, cb.Call(fail), errService)
				}
				require.Equal(t, circuit_breaker.Closed, cb.State())
				require.ErrorIs(t, cb.Call(fail), errService)
				require.Equal(t, circuit_breaker.Open, cb.State())

				called := false
				err := cb.Call(func() error { called = true; return nil })
				require.ErrorIs(t, err, circuit_breaker.ErrOpen)
				require.False(t, called)
			},
		},
		{
			name: "old failures leave the window",
			opts: []circuit_breaker.Option{circuit_breaker.WithWindow(4), circuit_breaker.WithFailureRatio(0.5)},
			run: func(t *testing.T, cb circuit_breaker.CircuitBreaker, _ *clock) {
				_ = cb.Call(fail)
				for i := 0; i < 3; i++ {
					require.NoError(t, cb.Call(ok))
				}
				// the first failure is overwritten, so one more failure is 1/4
				_ = cb.Call(fail)
				require.Equal(t, circuit_breaker.Closed, cb.State())
			},
		},
		{
			name: "half open recovers after successes",
			opts: []circuit_breaker.Option{
				circuit_breaker.WithWindow(4), circuit_breaker.WithFailureRatio(0.5),
				circuit_breaker.WithOpenTimeout(time.Minute), circuit_breaker.WithRecoveryRequests(2),
			},
			run: func(t *testing.T, cb circuit_breaker.CircuitBreaker, clk *clock) {
				for i := 0; i < 2; i++ {
					_ = cb.Call(fail)
				}
				require.Equal(t, circuit_breaker.Open, cb.State())

				clk.Advance(time.Minute)
				require.NoError(t, cb.Call(ok))
				require.Equal(t, circuit_breaker.HalfOpen, cb.State())
				require.NoError(t, cb.Call(ok))
				require.Equal(t, circuit_breaker.Closed, cb.State())
			},
		},
		{
			name: "half open failure reopens",
			opts: []circuit_breaker.Option{
				circuit_breaker.WithWindow(4), circuit_breaker.WithFailureRatio(0.5),
				circuit_breaker.WithOpenTimeout(time.Minute),
			},
			run: func(t *testing.T, cb circuit_breaker.CircuitBreaker, clk *clock) {
				for i := 0; i < 2; i++ {
					_ = cb.Call(fail)
				}
				clk.Advance(time.Minute)
				require.ErrorIs(t, cb.Call(fail), errService)
				require.Equal(t, circuit_breaker.Open, cb.State())
				require.ErrorIs(t, cb.Call(ok), circuit_breaker.ErrOpen)
			},
		},
		{
			name: "reset closes",
			opts: []circuit_breaker.Option{circuit_breaker.WithWindow(2), circuit_breaker.WithFailureRatio(0.5)},
			run: func(t *testing.T, cb circuit_breaker.CircuitBreaker, _ *clock) {
				_ = cb.Call(fail)
				require.Equal(t, circuit_breaker.Open, cb.State())
				cb.Reset()
				require.Equal(t, circuit_breaker.Closed, cb.State())
				require.NoError(t, cb.Call(ok))
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			clk := &clock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
			cb := circuit_breaker.New(append(tt.opts, circuit_breaker.WithClock(clk.Now))...)
			tt.run(t, cb, clk)
		})
	}
}

func Test_breaker_OnStateChange(t *testing.T) {
	t.Parallel()
	clk := &clock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	var transitions []string
	cb := circuit_breaker.New(
		circuit_breaker.WithWindow(2),
		circuit_breaker.WithFailureRatio(0.5),
		circuit_breaker.WithOpenTimeout(time.Second),
		circuit_breaker.WithRecoveryRequests(1),
		circuit_breaker.WithClock(clk.Now),
		circuit_breaker.WithOnStateChange(func(from, to circuit_breaker.Status) {
			transitions = append(transitions, from.String()+"->"+to.String())
		}),
	)

	_ = cb.Call(func() error { return errors.New("down") })
	clk.Advance(time.Second)
	require.NoError(t, cb.Call(func() error { return nil }))

	require.Equal(t, []string{"CLOSED->OPEN", "OPEN->HALFOPEN", "HALFOPEN->CLOSED"}, transitions)
}
