// Copyright 2025 breadsimd Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command packgen generates the capability table of the pack package.
//
// Usage:
//
//	packgen -o table_gen.go --native-output native_gen.go
//	packgen -o table_gen.go --types float32,int32 --native float32
//
// Or via go:generate, from the pack directory:
//
//	//go:generate go run ../cmd/packgen -o table_gen.go --native-output native_gen.go
//
// The table file holds the capabilityTable struct, its array-backend
// initializer and one lookup function per width and capability. The native
// file holds registerNative, which swaps the native backends into the table.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := newRootCmd(logger).Execute(); err != nil {
		os.Exit(1)
	}
}

// options are the command-line settings of one run.
type options struct {
	output       string
	nativeOutput string
	cfg          Config
}

func (o *options) bind(flags *pflag.FlagSet) {
	flags.StringVarP(&o.output, "output", "o", "table_gen.go", "Output file for the capability table")
	flags.StringVar(&o.nativeOutput, "native-output", "", "Output file for registerNative (skipped if empty)")
	flags.StringSliceVar(&o.cfg.Types, "types", allTypes, "Element types with a table entry")
	flags.StringSliceVar(&o.cfg.Native, "native", nativeCapable, "Element types with a native backend")
	flags.StringVar(&o.cfg.Package, "package", "pack", "Package name of the generated files")
}

func newRootCmd(logger *slog.Logger) *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:          "packgen",
		Short:        "Generate the pack capability table",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(logger)
		},
	}
	o.bind(cmd.Flags())
	return cmd
}

func (o *options) run(logger *slog.Logger) error {
	if err := writeGenerated(o.output, GenerateTable, o.cfg); err != nil {
		return err
	}
	logger.Info("wrote capability table", "file", o.output, "types", strings.Join(o.cfg.Types, ","))
	if o.nativeOutput == "" {
		return nil
	}
	if err := writeGenerated(o.nativeOutput, GenerateNative, o.cfg); err != nil {
		return err
	}
	logger.Info("wrote native registration", "file", o.nativeOutput, "types", strings.Join(o.cfg.Native, ","))
	return nil
}

func writeGenerated(path string, gen func(Config) ([]byte, error), cfg Config) error {
	src, err := gen(cfg)
	if err != nil {
		return fmt.Errorf("generating %s: %w", path, err)
	}
	if err := os.WriteFile(path, src, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
