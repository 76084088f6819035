/*
Copyright 2024 The Kubernetes Authors.

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

// Package page renders the browser client that polls the metadata endpoint.
package page

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"time"

	"github.com/alb-demo/ec2-instance-viewer/pkg/cloud/metadata"
	"k8s.io/klog/v2"
)

const (
	DefaultRefreshInterval  = 30 * time.Second
	DefaultFeedbackDuration = 2 * time.Second
)

//go:embed assets
var assets embed.FS

// Config controls the behaviour of the rendered client.
type Config struct {
	Locale           *Locale
	MetadataURL      string
	RefreshInterval  time.Duration
	FeedbackDuration time.Duration
}

// clientConfig is handed to script.js as JSON.
type clientConfig struct {
	MetadataURL       string             `json:"metadataUrl"`
	RefreshIntervalMs int64              `json:"refreshIntervalMs"`
	FeedbackMs        int64              `json:"feedbackMs"`
	Simulated         *metadata.Snapshot `json:"simulated"`
	Messages          Messages           `json:"messages"`
}

type indexData struct {
	Lang     string
	Messages Messages
	Client   clientConfig
}

// Page serves the index page and its static assets.
type Page struct {
	index  *template.Template
	data   indexData
	static http.Handler
}

func New(cfg Config) (*Page, error) {
	if cfg.Locale == nil {
		return nil, fmt.Errorf("locale is required")
	}
	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = DefaultRefreshInterval
	}
	if cfg.FeedbackDuration <= 0 {
		cfg.FeedbackDuration = DefaultFeedbackDuration
	}

	index, err := template.ParseFS(assets, "assets/index.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("could not parse index template: %w", err)
	}
	staticFS, err := fs.Sub(assets, "assets/static")
	if err != nil {
		return nil, fmt.Errorf("could not open static assets: %w", err)
	}

	return &Page{
		index: index,
		data: indexData{
			Lang:     cfg.Locale.Name,
			Messages: cfg.Locale.Messages,
			Client: clientConfig{
				MetadataURL:       cfg.MetadataURL,
				RefreshIntervalMs: cfg.RefreshInterval.Milliseconds(),
				FeedbackMs:        cfg.FeedbackDuration.Milliseconds(),
				Simulated:         metadata.Simulated(),
				Messages:          cfg.Locale.Messages,
			},
		},
		static: http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))),
	}, nil
}

// Render writes the index page to w.
func (p *Page) Render(w io.Writer) error {
	return p.index.Execute(w, p.data)
}

func (p *Page) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := p.Render(&buf); err != nil {
		klog.ErrorS(err, "Failed to render index page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if _, err := buf.WriteTo(w); err != nil {
		klog.V(4).InfoS("Failed to write index page", "err", err)
	}
}

// Static serves the embedded CSS and JavaScript under /static/.
func (p *Page) Static() http.Handler {
	return p.static
}
