package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/dmitrymomot/uadetect/pkg/logger"
)

type options struct {
	addr            string
	readTimeout     time.Duration
	writeTimeout    time.Duration
	idleTimeout     time.Duration
	shutdownTimeout time.Duration
	logger          *slog.Logger
	startHooks      []Hook
	stopHooks       []Hook
}

// Server serves one handler with graceful shutdown. A Server runs at most once.
type Server struct {
	opts options

	mu       sync.Mutex
	srv      *http.Server
	stopOnce sync.Once
	stopErr  error
}

// New returns a Server listening on :8080 with a 5s shutdown deadline unless
// opts say otherwise.
func New(opts ...Option) *Server {
	o := options{
		addr:            ":8080",
		shutdownTimeout: 5 * time.Second,
		logger:          logger.Discard(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Server{opts: o}
}

// Run serves handler and blocks until ctx is cancelled, Shutdown is called or
// the listener fails. A nil handler answers 404 to everything.
//
// Listener failures are returned joined with ErrStart, drain failures joined
// with ErrShutdown.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	s.mu.Lock()
	if s.srv != nil {
		s.mu.Unlock()
		return errors.Join(ErrStart, errors.New("server already started"))
	}
	srv := &http.Server{
		Addr:         s.opts.addr,
		Handler:      handler,
		ReadTimeout:  s.opts.readTimeout,
		WriteTimeout: s.opts.writeTimeout,
		IdleTimeout:  s.opts.idleTimeout,
	}
	s.srv = srv
	s.mu.Unlock()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	for _, h := range s.opts.startHooks {
		h(ctx, s.opts.logger)
	}

	var err error
	select {
	case err = <-errCh:
	case <-ctx.Done():
		// Request values such as the request id survive; the cancellation does not.
		if shutdownErr := s.Shutdown(context.WithoutCancel(ctx)); shutdownErr != nil {
			return shutdownErr
		}
		err = <-errCh
	}

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Join(ErrStart, err)
	}
	return nil
}

// Shutdown drains in-flight requests within the shutdown timeout and then
// runs the stop hooks. Repeated calls return the first result.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	s.mu.Unlock()
	if srv == nil {
		return nil
	}

	s.stopOnce.Do(func() {
		ctx, cancel := context.WithTimeout(ctx, s.opts.shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			s.stopErr = errors.Join(ErrShutdown, err)
		}
		for _, h := range s.opts.stopHooks {
			h(ctx, s.opts.logger)
		}
	})
	return s.stopErr
}
