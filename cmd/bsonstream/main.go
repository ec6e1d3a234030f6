// Copyright 2021 FerretDB Inc.
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

// The bsonstream command converts a stream of JSON documents to BSON.
package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/FerretDB/bsonstream/internal/util/debug"
	"github.com/FerretDB/bsonstream/internal/util/logging"
	"github.com/FerretDB/bsonstream/internal/util/must"
	"github.com/FerretDB/bsonstream/internal/writer"
)

// The cli struct represents all command-line commands, fields and flags.
// It's used for parsing the user input.
var cli struct {
	Input  string `arg:""      optional:"" help:"Input JSON file path. Standard input is used if not set."   type:"path"`
	Output string `short:"o"   default:""  help:"Output BSON file path. Standard output is used if not set." type:"path"`

	DebugAddr string `default:"" help:"Listen address for HTTP handlers for metrics, pprof, etc."`

	Log struct {
		Level string `default:"info" help:"Log level." enum:"debug,info,warn,error"`
	} `embed:"" prefix:"log-"`
}

func main() {
	kong.Parse(&cli)

	// the level is already validated by kong's enum
	level := must.NotFail(zapcore.ParseLevel(cli.Log.Level))
	logging.Setup(level)

	logger := zap.L()

	if _, err := maxprocs.Set(maxprocs.Logger(logger.Sugar().Debugf)); err != nil {
		logger.Warn("Failed to set GOMAXPROCS", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := writer.NewMetrics()
	prometheus.DefaultRegisterer.MustRegister(m)

	if cli.DebugAddr != "" {
		go debug.RunHandler(ctx, cli.DebugAddr, prometheus.DefaultRegisterer, logger.Named("debug"))
	}

	in := io.Reader(os.Stdin)
	if cli.Input != "" {
		f, err := os.Open(cli.Input)
		if err != nil {
			logger.Fatal("Failed to open input", zap.Error(err))
		}
		defer f.Close() //nolint:errcheck // read-only file

		in = f
	}

	out := io.Writer(os.Stdout)
	if cli.Output != "" {
		f, err := os.Create(cli.Output)
		if err != nil {
			logger.Fatal("Failed to create output", zap.Error(err))
		}

		defer func() {
			if err := f.Close(); err != nil {
				logger.Fatal("Failed to close output", zap.Error(err))
			}
		}()

		out = f
	}

	if err := convert(ctx, in, out, m, logger); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Warn("Conversion interrupted")
			return
		}

		logger.Fatal("Conversion failed", zap.Error(err))
	}
}
