package main

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/logastroids/internal/config"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = "8080"
)

//go:embed index.html
var htmlPage string

// landingPage fills in the SSH address players should connect to.
func landingPage(sshHost, sshPort string) string {
	cmd := "ssh " + sshHost
	if sshPort != "" && sshPort != "22" {
		cmd = fmt.Sprintf("ssh -p %s %s", sshPort, sshHost)
	}
	return strings.NewReplacer("{{.SSHCommand}}", cmd, "{{.SSHHost}}", sshHost).Replace(htmlPage)
}

func newMux(page string) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, page)
	})
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintln(w, "ok")
	})
	return mux
}

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "web", ReportTimestamp: true})

	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)
	page := landingPage(config.GetEnv("SSH_DISPLAY_HOST", "your-server.com"), config.GetEnv("SSH_DISPLAY_PORT", "2222"))

	srv := &http.Server{
		Addr:              net.JoinHostPort(host, port),
		Handler:           newMux(page),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", "err", err)
		}
	}()

	logger.Info("starting web server", "addr", "http://"+srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server error", "err", err)
	}
}
