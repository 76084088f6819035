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

// Package display polls a metadata endpoint the way the browser page does
// and keeps track of which instances answered.
package display

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/alb-demo/ec2-instance-viewer/pkg/cloud/metadata"
	"k8s.io/klog/v2"
)

type State string

const (
	StateLoading State = "loading"
	StateLoaded  State = "loaded"
	StateError   State = "error"
)

// Result is one state transition of a poll.
type Result struct {
	State State
	// Snapshot is nil while loading and the simulated dataset on error.
	Snapshot *metadata.Snapshot
	// Simulated marks a Snapshot that did not come from the endpoint.
	Simulated bool
	Err       error
}

// Observer is notified of every state transition. Polls may overlap, in
// which case the last notification wins.
type Observer interface {
	Observe(Result)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Result)

func (f ObserverFunc) Observe(r Result) { f(r) }

type Watcher struct {
	url      string
	interval time.Duration
	client   *http.Client
	observer Observer

	mu    sync.Mutex
	tally map[string]int
}

func NewWatcher(o *Options, observer Observer) *Watcher {
	if observer == nil {
		observer = ObserverFunc(func(Result) {})
	}
	return &Watcher{
		url:      o.URL,
		interval: o.Interval,
		client:   &http.Client{Timeout: o.Timeout},
		observer: observer,
		tally:    make(map[string]int),
	}
}

// Poll fetches the endpoint once. Any failure yields the simulated dataset.
// A poll interrupted by ctx is returned but not reported to the observer.
func (w *Watcher) Poll(ctx context.Context) Result {
	w.observer.Observe(Result{State: StateLoading})

	snapshot, err := w.fetch(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return Result{State: StateError, Snapshot: metadata.Simulated(), Simulated: true, Err: ctx.Err()}
		}
		klog.V(2).InfoS("Metadata endpoint unreachable, using simulated data", "url", w.url, "err", err)
		result := Result{State: StateError, Snapshot: metadata.Simulated(), Simulated: true, Err: err}
		w.observer.Observe(result)
		return result
	}

	if snapshot.IsAWS {
		w.mu.Lock()
		w.tally[snapshot.InstanceID]++
		w.mu.Unlock()
	}

	result := Result{State: StateLoaded, Snapshot: snapshot}
	w.observer.Observe(result)
	return result
}

// Run polls immediately and then on every interval until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		w.Poll(ctx)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Tally returns how many times each instance answered.
func (w *Watcher) Tally() map[string]int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return maps.Clone(w.tally)
}

func (w *Watcher) fetch(ctx context.Context) (*metadata.Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.url, nil)
	if err != nil {
		return nil, fmt.Errorf("could not build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	var snapshot metadata.Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snapshot); err != nil {
		return nil, fmt.Errorf("could not decode metadata: %w", err)
	}
	return &snapshot, nil
}
