// Tendency - Offline Rating Prediction and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tendency

package services

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"
)

var _ suture.Service = (*HTTPServerService)(nil)

// fakeServer blocks in ListenAndServe until Shutdown or Close is called,
// unless listenErr is set.
type fakeServer struct {
	listenErr   error
	shutdownErr error

	mu        sync.Mutex
	started   chan struct{}
	stopped   chan struct{}
	stopOnce  sync.Once
	shutdowns int
	closes    int
}

func newFakeServer() *fakeServer {
	return &fakeServer{started: make(chan struct{}), stopped: make(chan struct{})}
}

func (f *fakeServer) ListenAndServe() error {
	close(f.started)
	if f.listenErr != nil {
		return f.listenErr
	}
	<-f.stopped
	return http.ErrServerClosed
}

func (f *fakeServer) stop() { f.stopOnce.Do(func() { close(f.stopped) }) }

func (f *fakeServer) Shutdown(context.Context) error {
	f.mu.Lock()
	f.shutdowns++
	f.mu.Unlock()
	if f.shutdownErr != nil {
		return f.shutdownErr
	}
	f.stop()
	return nil
}

func (f *fakeServer) Close() error {
	f.mu.Lock()
	f.closes++
	f.mu.Unlock()
	f.stop()
	return nil
}

func (f *fakeServer) counts() (shutdowns, closes int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.shutdowns, f.closes
}

func TestNewHTTPServerService_Timeout(t *testing.T) {
	tests := []struct {
		name    string
		timeout time.Duration
		want    time.Duration
	}{
		{"explicit", 3 * time.Second, 3 * time.Second},
		{"zero", 0, defaultShutdownTimeout},
		{"negative", -time.Second, defaultShutdownTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewHTTPServerService(newFakeServer(), tt.timeout, zerolog.Nop())
			if svc.shutdownTimeout != tt.want {
				t.Errorf("expected timeout %v, got %v", tt.want, svc.shutdownTimeout)
			}
		})
	}
}

func TestHTTPServerService_Serve(t *testing.T) {
	shutdownErr := errors.New("deadline while draining")
	bindErr := errors.New("bind: address already in use")

	tests := []struct {
		name          string
		listenErr     error
		shutdownErr   error
		cancel        bool
		wantErr       error
		wantShutdowns int
		wantCloses    int
	}{
		{
			name:          "graceful stop on cancel",
			cancel:        true,
			wantErr:       context.Canceled,
			wantShutdowns: 1,
		},
		{
			name:      "listen failure",
			listenErr: bindErr,
			wantErr:   bindErr,
		},
		{
			name:          "forced close when drain fails",
			shutdownErr:   shutdownErr,
			cancel:        true,
			wantErr:       shutdownErr,
			wantShutdowns: 1,
			wantCloses:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newFakeServer()
			server.listenErr = tt.listenErr
			server.shutdownErr = tt.shutdownErr
			svc := NewHTTPServerService(server, time.Second, zerolog.Nop())

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			errCh := make(chan error, 1)
			go func() { errCh <- svc.Serve(ctx) }()

			<-server.started
			if tt.cancel {
				cancel()
			}

			select {
			case err := <-errCh:
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected %v, got %v", tt.wantErr, err)
				}
			case <-time.After(2 * time.Second):
				t.Fatal("Serve did not return")
			}

			shutdowns, closes := server.counts()
			if shutdowns != tt.wantShutdowns || closes != tt.wantCloses {
				t.Errorf("expected %d shutdowns and %d closes, got %d and %d",
					tt.wantShutdowns, tt.wantCloses, shutdowns, closes)
			}
		})
	}
}

func TestHTTPServerService_RealServer(t *testing.T) {
	srv := &http.Server{
		Addr:              "127.0.0.1:0",
		Handler:           http.NotFoundHandler(),
		ReadHeaderTimeout: time.Second,
	}
	svc := NewHTTPServerService(srv, time.Second, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	if err := svc.Serve(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected context.DeadlineExceeded, got %v", err)
	}
}
