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

package util

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// SplitEndpoint splits a tcp:// or unix:// endpoint into the network and
// address accepted by net.Listen. It does not touch the filesystem.
func SplitEndpoint(endpoint string) (network, addr string, err error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", "", fmt.Errorf("could not parse endpoint: %w", err)
	}

	network = strings.ToLower(u.Scheme)
	switch network {
	case "tcp":
		return network, u.Host, nil
	case "unix":
		return network, filepath.Join("/", u.Host, filepath.FromSlash(u.Path)), nil
	default:
		return "", "", fmt.Errorf("unsupported protocol: %s", network)
	}
}

// ParseEndpoint is SplitEndpoint followed by removal of a stale unix socket
// left at the address, so the result can be passed straight to net.Listen.
func ParseEndpoint(endpoint string) (string, string, error) {
	network, addr, err := SplitEndpoint(endpoint)
	if err != nil {
		return "", "", err
	}
	if network == "unix" {
		if err := os.Remove(addr); err != nil && !os.IsNotExist(err) {
			return "", "", fmt.Errorf("could not remove unix domain socket %q: %w", addr, err)
		}
	}
	return network, addr, nil
}
