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

package metadata

import (
	"context"
	"encoding/json"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"k8s.io/klog/v2"
)

// DefaultNotAvailable is substituted for any field whose lookup failed.
const DefaultNotAvailable = "No disponible"

var tracer = otel.Tracer("github.com/alb-demo/ec2-instance-viewer/pkg/cloud/metadata")

// Snapshot is the metadata of the instance that served a single request.
// Fields hold either the real value or the "not available" sentinel.
type Snapshot struct {
	InstanceID       string `json:"instanceId"`
	PublicIP         string `json:"publicIp"`
	AvailabilityZone string `json:"az"`
	InstanceType     string `json:"instanceType"`
	// IsAWS is true iff the instance ID lookup succeeded.
	IsAWS bool `json:"isAWS"`
}

// Unavailable returns a snapshot with every field set to notAvailable.
func Unavailable(notAvailable string) *Snapshot {
	return &Snapshot{
		InstanceID:       notAvailable,
		PublicIP:         notAvailable,
		AvailabilityZone: notAvailable,
		InstanceType:     notAvailable,
	}
}

// Simulated returns the fixed dataset shown when the metadata endpoint
// itself cannot be reached.
func Simulated() *Snapshot {
	return &Snapshot{
		InstanceID:       "i-1234567890",
		PublicIP:         "203.0.113.45",
		AvailabilityZone: "us-east-1a",
		InstanceType:     "t3.medium",
		IsAWS:            false,
	}
}

// Encode writes the snapshot as JSON without escaping slashes or HTML characters.
func (s *Snapshot) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(s)
}

// Fetcher builds snapshots from IMDS. It keeps no state between calls.
type Fetcher struct {
	newIMDS      IMDSClient
	notAvailable string
}

// NewFetcher returns a Fetcher that opens a new session through client for
// every snapshot. An empty notAvailable selects DefaultNotAvailable.
func NewFetcher(client IMDSClient, notAvailable string) *Fetcher {
	if notAvailable == "" {
		notAvailable = DefaultNotAvailable
	}
	return &Fetcher{
		newIMDS:      client,
		notAvailable: notAvailable,
	}
}

// Fetch performs the IMDSv2 handshake and reads every snapshot field.
// It never fails: lookups that fail are logged and left as the sentinel.
func (f *Fetcher) Fetch(ctx context.Context) *Snapshot {
	ctx, span := tracer.Start(ctx, "Fetch")
	defer span.End()

	snapshot := Unavailable(f.notAvailable)

	svc, err := f.newIMDS()
	if err != nil {
		klog.ErrorS(err, "Failed to initialize IMDS client")
		return snapshot
	}

	instanceID, err := getMetadata(ctx, svc, InstanceIDEndpoint)
	switch {
	case isTokenError(err):
		// without a token every lookup fails the same way
		klog.ErrorS(err, "IMDS token request failed, instance metadata unavailable")
		span.SetAttributes(attribute.Bool("aws.is_aws", false))
		return snapshot
	case err != nil:
		logLookupError(err, InstanceIDEndpoint)
	default:
		snapshot.InstanceID = instanceID
		snapshot.IsAWS = true
	}

	fields := []struct {
		path  string
		value *string
	}{
		{PublicIPv4Endpoint, &snapshot.PublicIP},
		{AvailabilityZoneEndpoint, &snapshot.AvailabilityZone},
		{InstanceTypeEndpoint, &snapshot.InstanceType},
	}
	for _, field := range fields {
		value, err := getMetadata(ctx, svc, field.path)
		if err != nil {
			logLookupError(err, field.path)
			continue
		}
		*field.value = value
	}

	span.SetAttributes(attribute.Bool("aws.is_aws", snapshot.IsAWS))
	klog.V(4).InfoS("Retrieved instance metadata", "instanceID", snapshot.InstanceID, "isAWS", snapshot.IsAWS)
	return snapshot
}
