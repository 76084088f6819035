/*
Copyright 2020 The Kubernetes Authors.

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
	goflag "flag"
	"fmt"
	"os"
	"strings"

	"github.com/alb-demo/ec2-instance-viewer/pkg/display"
	"github.com/alb-demo/ec2-instance-viewer/pkg/server"
	flag "github.com/spf13/pflag"
	"k8s.io/klog/v2"
)

// Mode is the operating mode of the binary.
type Mode string

const (
	// ServeMode serves the page and the metadata endpoint.
	ServeMode Mode = "serve"
	// WatchMode polls a metadata endpoint from the terminal.
	WatchMode Mode = "watch"
)

// Options is the combined set of options for all operating modes.
type Options struct {
	Mode Mode

	ServerOptions *server.Options
	WatchOptions  *display.Options
}

// used for testing
var osExit = os.Exit

// GetOptions parses the command line options and returns a struct that contains
// the parsed options.
func GetOptions(fs *flag.FlagSet) *Options {
	var (
		version = fs.Bool("version", false, "Print the version and exit.")

		args = os.Args[1:]
		mode = ServeMode

		serverOptions = server.Options{}
		watchOptions  = display.Options{}
	)

	klogFlags := goflag.NewFlagSet("klog", goflag.ContinueOnError)
	klog.InitFlags(klogFlags)
	fs.AddGoFlagSet(klogFlags)

	cmd := ""
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch {
	case cmd == string(ServeMode):
		serverOptions.AddFlags(fs)
		args = os.Args[2:]

	case cmd == string(WatchMode):
		watchOptions.AddFlags(fs)
		args = os.Args[2:]
		mode = WatchMode

	case cmd == "" || strings.HasPrefix(cmd, "-"):
		serverOptions.AddFlags(fs)

	default:
		fmt.Printf("unknown command: %s: expected %q or %q\n", cmd, ServeMode, WatchMode)
		osExit(1)
		return nil
	}

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	if *version {
		info, err := server.GetVersionJSON()
		if err != nil {
			klog.Fatalln(err)
		}
		fmt.Println(info)
		osExit(0)
	}

	return &Options{
		Mode: mode,

		ServerOptions: &serverOptions,
		WatchOptions:  &watchOptions,
	}
}
