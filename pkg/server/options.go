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

package server

import (
	"fmt"
	"strings"
	"time"

	"github.com/alb-demo/ec2-instance-viewer/pkg/cloud/metadata"
	"github.com/alb-demo/ec2-instance-viewer/pkg/page"
	"github.com/alb-demo/ec2-instance-viewer/pkg/util"
	flag "github.com/spf13/pflag"
)

type Options struct {
	Endpoint          string
	IMDSEndpoint      string
	IMDSTimeout       time.Duration
	Locale            string
	RefreshInterval   time.Duration
	FeedbackDuration  time.Duration
	EnableOtelTracing bool
}

func (o *Options) AddFlags(fs *flag.FlagSet) {
	fs.StringVar(&o.Endpoint, "endpoint", DefaultEndpoint, "Endpoint for the HTTP server, either tcp://<host>:<port> or unix://<path>")
	fs.StringVar(&o.IMDSEndpoint, "imds-endpoint", "", "Override for the EC2 instance metadata service endpoint (example: `http://169.254.169.254`). The default is empty string, which means the AWS SDK default is used.")
	fs.DurationVar(&o.IMDSTimeout, "imds-timeout", metadata.DefaultTimeout, "Timeout for each call to the EC2 instance metadata service, token request included.")
	fs.StringVar(&o.Locale, "locale", page.DefaultLocale, fmt.Sprintf("Language of the page and of the unavailable placeholder. One of: %s.", strings.Join(page.LocaleNames(), ", ")))
	fs.DurationVar(&o.RefreshInterval, "refresh-interval", page.DefaultRefreshInterval, "Interval at which the page polls the metadata endpoint.")
	fs.DurationVar(&o.FeedbackDuration, "feedback-duration", page.DefaultFeedbackDuration, "How long the refresh button shows the success indicator.")
	fs.BoolVar(&o.EnableOtelTracing, "enable-otel-tracing", false, "To enable opentelemetry tracing for the server. The tracing is disabled by default. Configure the exporter endpoint with OTEL_EXPORTER_OTLP_ENDPOINT and other env variables, see https://opentelemetry.io/docs/specs/otel/configuration/sdk-environment-variables/#general-sdk-configuration.")
}

func (o *Options) Validate() error {
	if _, _, err := util.SplitEndpoint(o.Endpoint); err != nil {
		return fmt.Errorf("invalid --endpoint: %w", err)
	}
	if _, err := page.LookupLocale(o.Locale); err != nil {
		return fmt.Errorf("invalid --locale: %w", err)
	}
	if o.IMDSTimeout <= 0 {
		return fmt.Errorf("--imds-timeout must be positive, got %v", o.IMDSTimeout)
	}
	if o.RefreshInterval < time.Second {
		return fmt.Errorf("--refresh-interval must be at least 1s, got %v", o.RefreshInterval)
	}
	if o.FeedbackDuration <= 0 || o.FeedbackDuration > o.RefreshInterval {
		return fmt.Errorf("--feedback-duration must be positive and no longer than --refresh-interval, got %v", o.FeedbackDuration)
	}
	return nil
}
