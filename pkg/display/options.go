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

package display

import (
	"fmt"
	"net/url"
	"time"

	flag "github.com/spf13/pflag"
)

const (
	DefaultInterval = 30 * time.Second
	DefaultTimeout  = 5 * time.Second
)

// Options contains the settings of the watch mode.
type Options struct {
	// URL of the metadata endpoint, usually behind the load balancer.
	URL      string
	Interval time.Duration
	Timeout  time.Duration
}

func (o *Options) AddFlags(fs *flag.FlagSet) {
	fs.StringVar(&o.URL, "url", "", "URL of the metadata endpoint to poll (example: `http://my-alb.example.com/metadata`).")
	fs.DurationVar(&o.Interval, "interval", DefaultInterval, "Interval between two polls.")
	fs.DurationVar(&o.Timeout, "timeout", DefaultTimeout, "Timeout of a single poll.")
}

func (o *Options) Validate() error {
	if o.URL == "" {
		return fmt.Errorf("--url is required")
	}
	u, err := url.Parse(o.URL)
	if err != nil {
		return fmt.Errorf("invalid --url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid --url: unsupported scheme %q", u.Scheme)
	}
	if o.Interval <= 0 {
		return fmt.Errorf("--interval must be positive, got %v", o.Interval)
	}
	if o.Timeout <= 0 {
		return fmt.Errorf("--timeout must be positive, got %v", o.Timeout)
	}
	return nil
}
