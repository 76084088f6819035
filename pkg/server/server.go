/*
Copyright 2019 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/alb-demo/ec2-instance-viewer/pkg/cloud/metadata"
	"github.com/alb-demo/ec2-instance-viewer/pkg/page"
	"github.com/alb-demo/ec2-instance-viewer/pkg/util"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"k8s.io/klog/v2"
)

type Server struct {
	fetcher *metadata.Fetcher
	page    *page.Page
	options *Options
}

// NewServer builds a Server that reads instance metadata through imdsClient.
func NewServer(o *Options, imdsClient metadata.IMDSClient) (*Server, error) {
	klog.InfoS("Server Information", "Name", ServerName, "Version", version)

	if err := o.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}

	locale, err := page.LookupLocale(o.Locale)
	if err != nil {
		return nil, err
	}

	p, err := page.New(page.Config{
		Locale: locale,
		// relative, so the page keeps working behind a path-rewriting proxy
		MetadataURL:      strings.TrimPrefix(MetadataPath, "/"),
		RefreshInterval:  o.RefreshInterval,
		FeedbackDuration: o.FeedbackDuration,
	})
	if err != nil {
		return nil, err
	}

	return &Server{
		fetcher: metadata.NewFetcher(imdsClient, locale.NotAvailable),
		page:    p,
		options: o,
	}, nil
}

// Handler returns the HTTP handler serving every route of the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+MetadataPath, s.handleMetadata)
	mux.HandleFunc("GET "+LegacyMetadataPath, s.handleMetadata)
	mux.HandleFunc("GET "+HealthzPath, handleHealthz)
	mux.HandleFunc("GET "+VersionPath, handleVersion)
	mux.Handle("GET /static/", s.page.Static())
	mux.Handle("GET /{$}", s.page)

	var handler http.Handler = withRequestLogging(mux)
	if s.options.EnableOtelTracing {
		handler = otelhttp.NewHandler(handler, ServerName)
	}
	return handler
}

// Run serves HTTP on the configured endpoint until ctx is cancelled, then
// shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	scheme, addr, err := util.ParseEndpoint(s.options.Endpoint)
	if err != nil {
		return err
	}

	listener, err := net.Listen(scheme, addr)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		klog.InfoS("Listening for connections", "address", listener.Addr())
		errCh <- srv.Serve(listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	klog.InfoS("Stopping server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("could not shut down server: %w", err)
	}
	return nil
}

func (s *Server) handleMetadata(w http.ResponseWriter, r *http.Request) {
	snapshot := s.fetcher.Fetch(r.Context())

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	if err := snapshot.Encode(w); err != nil {
		klog.ErrorS(err, "Failed to write metadata response", "requestID", w.Header().Get(RequestIDHeader))
	}
}

func handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func handleVersion(w http.ResponseWriter, _ *http.Request) {
	info, err := GetVersionJSON()
	if err != nil {
		klog.ErrorS(err, "Failed to encode version")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(info))
}
