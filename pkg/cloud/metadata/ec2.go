// Copyright 2024 The Kubernetes Authors.
//
// Licensed under the Apache License, Version 2.0 (the 'License');
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an 'AS IS' BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package metadata

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/ec2/imds"
	smithyhttp "github.com/aws/smithy-go/transport/http"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"k8s.io/klog/v2"
)

const (
	// InstanceIDEndpoint is the ec2 instance metadata endpoint to query to get the instance ID
	InstanceIDEndpoint string = "instance-id"

	// PublicIPv4Endpoint is the ec2 instance metadata endpoint to query to get the public IPv4 address
	PublicIPv4Endpoint string = "public-ipv4"

	// AvailabilityZoneEndpoint is the ec2 instance metadata endpoint to query to get the availability zone
	AvailabilityZoneEndpoint string = "placement/availability-zone"

	// InstanceTypeEndpoint is the ec2 instance metadata endpoint to query to get the instance type
	InstanceTypeEndpoint string = "instance-type"

	// DefaultTimeout bounds every call made to IMDS, token request included.
	DefaultTimeout = time.Second

	// the imds client wraps token failures with this message before any metadata request is sent
	tokenErrorMessage = "failed to get API token"
)

// IMDSConfig configures the sessions returned by NewIMDSClient.
type IMDSConfig struct {
	// Endpoint overrides the IMDS endpoint. Empty means the SDK default
	// (http://169.254.169.254 or AWS_EC2_METADATA_SERVICE_ENDPOINT).
	Endpoint string
	// Timeout applies to each HTTP call.
	Timeout time.Duration
}

// NewIMDSClient loads the AWS configuration once and returns a factory of
// IMDS sessions. Sessions do not retry and never fall back to IMDSv1.
func NewIMDSClient(ctx context.Context, cfg IMDSConfig) (IMDSClient, error) {
	envValue := os.Getenv("AWS_EC2_METADATA_DISABLED")
	if envValue != "" {
		klog.InfoS("The AWS_EC2_METADATA_DISABLED environment variable disables access to EC2 IMDS", "enabled", envValue)
	}

	awsCfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load AWS config: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return func() (IMDS, error) {
		return imds.NewFromConfig(awsCfg, func(o *imds.Options) {
			if cfg.Endpoint != "" {
				o.Endpoint = cfg.Endpoint
			}
			o.HTTPClient = awshttp.NewBuildableClient().WithTimeout(timeout)
			o.Retryer = aws.NopRetryer{}
			o.EnableFallback = aws.FalseTernary
		}), nil
	}, nil
}

func getMetadata(ctx context.Context, svc IMDS, path string) (string, error) {
	ctx, span := tracer.Start(ctx, "GetMetadata", trace.WithAttributes(attribute.String("imds.path", path)))
	defer span.End()

	output, err := svc.GetMetadata(ctx, &imds.GetMetadataInput{Path: path})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "metadata lookup failed")
		return "", fmt.Errorf("could not get EC2 metadata %q: %w", path, err)
	}
	defer output.Content.Close()

	data, err := io.ReadAll(output.Content)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "metadata read failed")
		return "", fmt.Errorf("could not read EC2 metadata %q content: %w", path, err)
	}
	return strings.TrimSpace(string(data)), nil
}

func isTokenError(err error) bool {
	return err != nil && strings.Contains(err.Error(), tokenErrorMessage)
}

func logLookupError(err error, path string) {
	var respErr *smithyhttp.ResponseError
	if errors.As(err, &respErr) {
		// public-ipv4 is absent on instances without a public address
		if respErr.HTTPStatusCode() == http.StatusNotFound {
			klog.V(4).InfoS("EC2 metadata not found", "path", path)
			return
		}
		klog.ErrorS(err, "Retrieving EC2 metadata failed", "path", path, "statusCode", respErr.HTTPStatusCode())
		return
	}
	klog.ErrorS(err, "Retrieving EC2 metadata failed", "path", path)
}
