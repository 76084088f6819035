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

import "time"

// constants for default command line flag values.
const (
	DefaultEndpoint = "tcp://0.0.0.0:8080"
	ServerName      = "ec2-instance-viewer"
)

// constants for the HTTP routes.
const (
	// MetadataPath serves the instance metadata snapshot.
	MetadataPath = "/metadata"
	// LegacyMetadataPath keeps pages that still poll metadata.php working.
	LegacyMetadataPath = "/metadata.php"
	HealthzPath        = "/healthz"
	VersionPath        = "/version"

	RequestIDHeader = "X-Request-Id"
)

// constants for the HTTP server.
const (
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 10 * time.Second
	// a snapshot issues up to four IMDS calls, each bounded by --imds-timeout
	writeTimeout    = 30 * time.Second
	shutdownTimeout = 10 * time.Second
)
