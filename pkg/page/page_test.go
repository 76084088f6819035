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

package page

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alb-demo/ec2-instance-viewer/pkg/cloud/metadata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const configOpenTag = `<script id="page-config" type="application/json">`

func renderedClientConfig(t *testing.T, html string) clientConfig {
	t.Helper()

	start := strings.Index(html, configOpenTag)
	require.NotEqual(t, -1, start, "page config script not found")
	rest := html[start+len(configOpenTag):]
	end := strings.Index(rest, "</script>")
	require.NotEqual(t, -1, end)

	var cfg clientConfig
	require.NoError(t, json.Unmarshal([]byte(rest[:end]), &cfg))
	return cfg
}

func TestRender(t *testing.T) {
	testCases := []struct {
		name             string
		locale           string
		refreshInterval  time.Duration
		feedbackDuration time.Duration
		expectedRefresh  int64
		expectedFeedback int64
		expectedText     []string
	}{
		{
			name:             "default locale and timings",
			locale:           DefaultLocale,
			expectedRefresh:  30000,
			expectedFeedback: 2000,
			expectedText:     []string{`<html lang="es">`, "ID de instancia", "Actualizar"},
		},
		{
			name:             "english locale, custom timings",
			locale:           "en",
			refreshInterval:  5 * time.Second,
			feedbackDuration: 500 * time.Millisecond,
			expectedRefresh:  5000,
			expectedFeedback: 500,
			expectedText:     []string{`<html lang="en">`, "Instance ID", "Refresh"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			locale, err := LookupLocale(tc.locale)
			require.NoError(t, err)

			p, err := New(Config{
				Locale:           locale,
				MetadataURL:      "metadata",
				RefreshInterval:  tc.refreshInterval,
				FeedbackDuration: tc.feedbackDuration,
			})
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, p.Render(&buf))
			html := buf.String()
			for _, text := range tc.expectedText {
				assert.Contains(t, html, text)
			}

			cfg := renderedClientConfig(t, html)
			assert.Equal(t, "metadata", cfg.MetadataURL)
			assert.Equal(t, tc.expectedRefresh, cfg.RefreshIntervalMs)
			assert.Equal(t, tc.expectedFeedback, cfg.FeedbackMs)
			assert.Equal(t, locale.Messages.SimulatedBadge, cfg.Messages.SimulatedBadge)
			assert.Equal(t, locale.Messages.DetailsText, cfg.Messages.DetailsText)
		})
	}
}

func TestRenderSimulatedDataset(t *testing.T) {
	locale, err := LookupLocale(DefaultLocale)
	require.NoError(t, err)
	p, err := New(Config{Locale: locale, MetadataURL: "metadata"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, p.Render(&buf))

	cfg := renderedClientConfig(t, buf.String())
	assert.Equal(t, &metadata.Snapshot{
		InstanceID:       "i-1234567890",
		PublicIP:         "203.0.113.45",
		AvailabilityZone: "us-east-1a",
		InstanceType:     "t3.medium",
		IsAWS:            false,
	}, cfg.Simulated)
}

func TestNewRequiresLocale(t *testing.T) {
	_, err := New(Config{})
	require.EqualError(t, err, "locale is required")
}

func TestLookupLocale(t *testing.T) {
	l, err := LookupLocale("es")
	require.NoError(t, err)
	assert.Equal(t, metadata.DefaultNotAvailable, l.NotAvailable)

	_, err = LookupLocale("fr")
	require.EqualError(t, err, `unknown locale "fr", expected one of [en es]`)
}

func TestServeHTTP(t *testing.T) {
	locale, err := LookupLocale("en")
	require.NoError(t, err)
	p, err := New(Config{Locale: locale, MetadataURL: "metadata"})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	p.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "EC2 Instance")

	for _, asset := range []string{"/static/script.js", "/static/style.css"} {
		rec = httptest.NewRecorder()
		p.Static().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, asset, nil))
		assert.Equal(t, http.StatusOK, rec.Code, asset)
		assert.NotEmpty(t, rec.Body.String(), asset)
	}
}
