/*
Copyright 2018 The Kubernetes Authors.

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

package util

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestParseEndpoint(t *testing.T) {
	testCases := []struct {
		name      string
		endpoint  string
		expScheme string
		expAddr   string
		expErr    error
	}{
		{
			name:      "valid unix endpoint 1",
			endpoint:  "unix:///run/viewer/viewer.sock",
			expScheme: "unix",
			expAddr:   "/run/viewer/viewer.sock",
		},
		{
			name:      "valid unix endpoint 2",
			endpoint:  "unix://run/viewer.sock",
			expScheme: "unix",
			expAddr:   "/run/viewer.sock",
		},
		{
			name:      "valid unix endpoint 3",
			endpoint:  "unix:/run/viewer.sock",
			expScheme: "unix",
			expAddr:   "/run/viewer.sock",
		},
		{
			name:      "valid tcp endpoint with host and port",
			endpoint:  "tcp://0.0.0.0:8080",
			expScheme: "tcp",
			expAddr:   "0.0.0.0:8080",
		},
		{
			name:      "valid tcp endpoint with port only",
			endpoint:  "tcp://:80",
			expScheme: "tcp",
			expAddr:   ":80",
		},
		{
			name:     "invalid endpoint",
			endpoint: "http://127.0.0.1",
			expErr:   fmt.Errorf("unsupported protocol: http"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			scheme, addr, err := ParseEndpoint(tc.endpoint)

			if tc.expErr != nil {
				if err == nil || err.Error() != tc.expErr.Error() {
					t.Fatalf("Expecting err: expected %v, got %v", tc.expErr, err)
				}

			} else {
				if err != nil {
					t.Fatalf("err is not nil. got: %v", err)
				}
				if scheme != tc.expScheme {
					t.Fatalf("scheme mismatches: expected %v, got %v", tc.expScheme, scheme)
				}

				if addr != tc.expAddr {
					t.Fatalf("addr mismatches: expected %v, got %v", tc.expAddr, addr)
				}
			}
		})
	}

}

func TestSplitEndpointLeavesSocket(t *testing.T) {
	sock := filepath.Join(t.TempDir(), "viewer.sock")
	if err := os.WriteFile(sock, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	network, addr, err := SplitEndpoint("unix://" + sock)
	if err != nil {
		t.Fatalf("err is not nil. got: %v", err)
	}
	if network != "unix" || addr != sock {
		t.Fatalf("unexpected split: got %v %v", network, addr)
	}
	if _, err := os.Stat(sock); err != nil {
		t.Fatalf("socket file should be left in place, got: %v", err)
	}
}

func TestParseEndpointRemovesStaleSocket(t *testing.T) {
	sock := filepath.Join(t.TempDir(), "viewer.sock")
	if err := os.WriteFile(sock, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	if _, _, err := ParseEndpoint("unix://" + sock); err != nil {
		t.Fatalf("err is not nil. got: %v", err)
	}
	if _, err := os.Stat(sock); !os.IsNotExist(err) {
		t.Fatalf("stale socket should be removed, got: %v", err)
	}
}
