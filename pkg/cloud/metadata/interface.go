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

//go:generate mockgen -source interface.go -destination mock_imds.go -package metadata

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/feature/ec2/imds"
)

// IMDS is the part of the imds client used to read instance metadata.
type IMDS interface {
	GetMetadata(ctx context.Context, params *imds.GetMetadataInput, optFns ...func(*imds.Options)) (*imds.GetMetadataOutput, error)
}

// IMDSClient opens a new IMDS session. A session negotiates its own
// IMDSv2 token on first use and must not outlive the request it serves.
type IMDSClient func() (IMDS, error)
