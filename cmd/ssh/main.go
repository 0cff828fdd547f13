package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/tomz197/logastroids/internal/client"
	"github.com/tomz197/logastroids/internal/config"
	"github.com/tomz197/logastroids/internal/draw"
	"github.com/tomz197/logastroids/internal/input"
	"github.com/tomz197/logastroids/internal/loop"
	"github.com/tomz197/logastroids/internal/object"
	"github.com/tomz197/logastroids/internal/render"
	"github.com/tomz197/logastroids/internal/score"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = "/app/keys/host_key"

	idleTimeout     = 120 * time.Second
	shutdownTimeout = 10 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "logastroids-ssh: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadFromEnv("")
	if err != nil {
		return err
	}
	logger, closer, err := cfg.Log.NewLogger(os.Stderr, "ssh")
	if err != nil {
		return err
	}
	defer closer.Close()

	host := config.GetEnv("SSH_HOST", defaultHost)
	port := config.GetEnv("SSH_PORT", defaultPort)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)
	logger.Info("ssh config", "host", host, "port", port, "host_key", hostKeyPath, "scores", cfg.Scores.Path)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	h := &handler{
		cfg:    cfg,
		scores: score.NewFileStore(cfg.Scores.Path),
		log:    logger,
		done:   ctx,
	}

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			h.middleware,
			activeterm.Middleware(),
			logging.MiddlewareWithLogger(logger),
		),
		// Game input is latency sensitive.
		ssh.WrapConn(func(_ ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}
	s, err := wish.NewServer(opts...)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", "addr", s.Addr)
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", "sessions", h.active())
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})
	return g.Wait()
}

// handler runs one independent game per SSH session. Only the score file
// is shared between sessions.
type handler struct {
	cfg    config.Config
	scores score.Store
	log    *log.Logger
	done   context.Context

	mu       sync.Mutex
	sessions int
}

func (h *handler) active() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.sessions
}

func (h *handler) track(delta int) {
	h.mu.Lock()
	h.sessions += delta
	h.mu.Unlock()
}

func (h *handler) middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		logger := h.log.With("session", uuid.NewString(), "user", sess.User())
		logger.Info("session started", "term", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)
		h.track(1)
		defer h.track(-1)

		size := newSizeTracker(pty.Window.Width, pty.Window.Height)
		go func() {
			for win := range winCh {
				size.update(win.Width, win.Height)
			}
		}()

		// Sessions end with the connection or with the server.
		ctx, cancel := context.WithCancel(sess.Context())
		defer cancel()
		stopAfter := context.AfterFunc(h.done, cancel)
		defer stopAfter()

		game := loop.NewGame(h.cfg, loop.Options{Logger: logger, Scores: h.scores})
		field := object.Field{Width: h.cfg.Field.Width, Height: h.cfg.Field.Height}
		c := client.New(game, input.StartStream(sess), render.New(sess, size.getSize, field), client.Options{
			FPS:         h.cfg.Field.FPS,
			IdleTimeout: idleTimeout,
			Logger:      logger,
		})
		if err := c.Run(ctx); err != nil {
			if errors.Is(err, client.ErrIdle) {
				fmt.Fprintln(sess, "Disconnected for inactivity.")
			} else {
				logger.Error("session failed", "err", err)
			}
		}

		logger.Info("session ended", "score", game.State().Score, "level", game.State().Level)
		next(sess)
	}
}

// sizeTracker follows the session's window-change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
