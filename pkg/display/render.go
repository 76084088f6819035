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
	"io"
	"slices"

	pt "github.com/jedib0t/go-pretty/v6/table"
	"k8s.io/klog/v2"
)

// RenderTally writes the share of responses served by each instance.
func RenderTally(w io.Writer, tally map[string]int) {
	total := 0
	for _, n := range tally {
		total += n
	}

	t := pt.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(pt.Row{"Instance ID", "Responses", "Share"})

	ids := make([]string, 0, len(tally))
	for id := range tally {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		t.AppendRow(pt.Row{id, tally[id], share(tally[id], total)})
	}

	t.AppendFooter(pt.Row{"Total", total, share(total, total)})
	t.Render()
}

func share(n, total int) string {
	if total == 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", 100*float64(n)/float64(total))
}

// LogResult reports a poll result through klog.
func LogResult(r Result) {
	switch r.State {
	case StateLoading:
		klog.V(4).InfoS("Polling metadata endpoint")
	case StateLoaded:
		klog.InfoS("Instance responded", "instanceID", r.Snapshot.InstanceID, "publicIP", r.Snapshot.PublicIP,
			"az", r.Snapshot.AvailabilityZone, "instanceType", r.Snapshot.InstanceType, "isAWS", r.Snapshot.IsAWS)
	case StateError:
		klog.ErrorS(r.Err, "Metadata endpoint unreachable, showing simulated data", "instanceID", r.Snapshot.InstanceID, "simulated", r.Simulated)
	}
}
