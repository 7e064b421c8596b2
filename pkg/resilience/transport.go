package resilience

import (
	"errors"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sony/gobreaker/v2"
)

var (
	// ErrCircuitOpen is returned without touching the network while the
	// breaker for a host is open or saturated with half-open probes.
	ErrCircuitOpen = errors.New("circuit breaker is open")
)

// TransportConfig configures a Transport.
type TransportConfig struct {
	// Name identifies the guarded host, e.g. "maps" or "roads".
	Name string

	// Timeout bounds each individual attempt.
	// Default: 10 seconds
	Timeout time.Duration

	// MaxRetries is the number of extra attempts after a retryable failure.
	// Zero, the default, sends every request exactly once.
	MaxRetries uint64

	// InitialInterval is the first backoff delay between attempts.
	// Default: 200ms
	InitialInterval time.Duration

	// MaxInterval caps the backoff delay.
	// Default: 2 seconds
	MaxInterval time.Duration

	// Breaker configures the circuit breaker. Defaults to DefaultBreakerConfig.
	Breaker *BreakerConfig

	// Registry, when set, has the transport registered under Name.
	Registry *Registry

	// Base performs the actual exchange. Defaults to an *http.Client with Timeout.
	Base *http.Client
}

// DefaultTransportConfig returns defaults for a host called name.
func DefaultTransportConfig(name string) TransportConfig {
	breaker := DefaultBreakerConfig(name)
	return TransportConfig{
		Name:            name,
		Timeout:         10 * time.Second,
		InitialInterval: 200 * time.Millisecond,
		MaxInterval:     2 * time.Second,
		Breaker:         &breaker,
	}
}

// Transport sends HTTP requests through a circuit breaker, retrying
// retryable failures only when MaxRetries is positive.
type Transport struct {
	name    string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker[*http.Response]
	config  TransportConfig
}

// NewTransport builds a Transport, filling unset fields with defaults.
func NewTransport(cfg TransportConfig) *Transport {
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.InitialInterval == 0 {
		cfg.InitialInterval = 200 * time.Millisecond
	}
	if cfg.MaxInterval == 0 {
		cfg.MaxInterval = 2 * time.Second
	}

	breakerCfg := DefaultBreakerConfig(cfg.Name)
	if cfg.Breaker != nil {
		breakerCfg = *cfg.Breaker
	}

	client := cfg.Base
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}

	t := &Transport{
		name:    cfg.Name,
		client:  client,
		breaker: newBreaker[*http.Response](breakerCfg), //nolint:bodyclose // type param, not response
		config:  cfg,
	}
	if cfg.Registry != nil {
		cfg.Registry.Register(cfg.Name, t)
	}
	return t
}

// Name returns the name the transport was configured with.
func (t *Transport) Name() string {
	return t.name
}

// Do sends req. A 5xx reply counts as a breaker failure; 5xx and 429 replies
// are retried while attempts remain, after which the last reply is returned
// as is so the caller can inspect it.
func (t *Transport) Do(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = t.config.InitialInterval
	bo.MaxInterval = t.config.MaxInterval
	bo.MaxElapsedTime = 0
	policy := backoff.WithContext(backoff.WithMaxRetries(bo, t.config.MaxRetries), ctx)

	var last *http.Response
	keep := func(resp *http.Response) {
		if last != nil && last != resp {
			last.Body.Close()
		}
		last = resp
	}

	attempt := func() error {
		resp, err := t.breaker.Execute(func() (*http.Response, error) { //nolint:bodyclose // returned to caller
			r, err := t.client.Do(req.Clone(ctx))
			if err != nil {
				return nil, err
			}
			if r.StatusCode >= 500 {
				return r, &StatusError{StatusCode: r.StatusCode}
			}
			return r, nil
		})
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return backoff.Permanent(ErrCircuitOpen)
		}
		if resp != nil {
			keep(resp)
		}
		if err != nil {
			return err
		}
		if resp.StatusCode == http.StatusTooManyRequests {
			return &StatusError{StatusCode: resp.StatusCode}
		}
		return nil
	}

	err := backoff.Retry(attempt, policy)
	if err != nil {
		var statusErr *StatusError
		if last != nil && errors.As(err, &statusErr) {
			t.record(err)
			return last, nil
		}
		if last != nil {
			last.Body.Close()
		}
		t.record(err)
		return nil, err
	}
	t.record(nil)
	return last, nil
}

func (t *Transport) record(err error) {
	if t.config.Registry == nil {
		return
	}
	if err != nil {
		t.config.Registry.RecordFailure(t.name, err)
		return
	}
	t.config.Registry.RecordSuccess(t.name)
}

// State returns the breaker state.
func (t *Transport) State() gobreaker.State {
	return t.breaker.State()
}

// Counts returns the breaker counters.
func (t *Transport) Counts() gobreaker.Counts {
	return t.breaker.Counts()
}

// StatusError marks a reply whose status is worth another attempt.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return "retryable status: " + http.StatusText(e.StatusCode)
}
