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

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alb-demo/ec2-instance-viewer/pkg/cloud/metadata"
	"github.com/alb-demo/ec2-instance-viewer/pkg/display"
	"github.com/alb-demo/ec2-instance-viewer/pkg/server"
	flag "github.com/spf13/pflag"
	"k8s.io/klog/v2"
)

func main() {
	fs := flag.NewFlagSet("ec2-instance-viewer", flag.ExitOnError)
	options := GetOptions(fs)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch options.Mode {
	case ServeMode:
		serve(ctx, options.ServerOptions)
	case WatchMode:
		watch(ctx, options.WatchOptions)
	}
	klog.Flush()
}

func serve(ctx context.Context, o *server.Options) {
	if o.EnableOtelTracing {
		exporter, err := server.InitOtelTracing(ctx)
		if err != nil {
			klog.ErrorS(err, "failed to initialize otel tracing")
			klog.FlushAndExit(klog.ExitFlushTimeout, 1)
		}
		// Exporter will flush traces on shutdown
		defer func() {
			if err := exporter.Shutdown(context.Background()); err != nil {
				klog.ErrorS(err, "could not shutdown otel exporter")
			}
		}()
	}

	imdsClient, err := metadata.NewIMDSClient(ctx, metadata.IMDSConfig{
		Endpoint: o.IMDSEndpoint,
		Timeout:  o.IMDSTimeout,
	})
	if err != nil {
		klog.ErrorS(err, "failed to initialize IMDS client")
		klog.FlushAndExit(klog.ExitFlushTimeout, 1)
	}

	srv, err := server.NewServer(o, imdsClient)
	if err != nil {
		klog.ErrorS(err, "failed to create server")
		klog.FlushAndExit(klog.ExitFlushTimeout, 1)
	}
	if err := srv.Run(ctx); err != nil {
		klog.ErrorS(err, "failed to run server")
		klog.FlushAndExit(klog.ExitFlushTimeout, 1)
	}
}

func watch(ctx context.Context, o *display.Options) {
	if err := o.Validate(); err != nil {
		klog.ErrorS(err, "invalid watch options")
		klog.FlushAndExit(klog.ExitFlushTimeout, 1)
	}

	w := display.NewWatcher(o, display.ObserverFunc(display.LogResult))
	klog.InfoS("Watching metadata endpoint", "url", o.URL, "interval", o.Interval)
	w.Run(ctx)

	display.RenderTally(os.Stdout, w.Tally())
}
