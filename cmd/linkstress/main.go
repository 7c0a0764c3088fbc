// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command linkstress drives rendezvous workloads through a link registry
// and reports per-link match counts.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"code.hybscloud.com/link"
	"code.hybscloud.com/link/internal/scenario"
	"code.hybscloud.com/link/linkhttp"
	"github.com/jessevdk/go-flags"

	log "github.com/sirupsen/logrus"
)

type options struct {
	Config   string        `short:"c" long:"config" description:"TOML scenario file; overrides --link and --pairs"`
	Link     string        `long:"link" default:"go" description:"link identifier for the default scenario"`
	Pairs    int           `long:"pairs" default:"1024" description:"sender/receiver pairs for the default scenario"`
	Timeout  time.Duration `long:"timeout" description:"overall deadline, overrides the scenario timeout"`
	LogLevel string        `long:"log-level" default:"info" description:"log level"`
	Listen   string        `long:"listen" description:"serve link diagnostics on this address while running"`
}

func main() {
	opts := getCLIArgs()

	level, err := log.ParseLevel(opts.LogLevel)
	if err != nil {
		log.WithError(err).Fatal("Failed to set log level. Valid log levels are:", log.AllLevels)
	}
	log.SetLevel(level)

	sc, err := loadScenario(opts)
	if err != nil {
		log.WithError(err).Fatal("Failed to load scenario")
	}

	reg := link.NewRegistry(link.WithLogger(log.WithField("cmd", "linkstress")))
	if opts.Listen != "" {
		go serveDiagnostics(opts.Listen, reg)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rep, err := scenario.Run(ctx, reg, sc)
	if err != nil {
		log.WithError(err).Fatal("Scenario failed")
	}
	for id, n := range rep.Matches {
		log.WithFields(log.Fields{"run": rep.RunID, "link": id, "matches": n}).Info("link summary")
	}
}

func getCLIArgs() options {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.ParseArgs(os.Args[1:]); err != nil {
		if flags.WroteHelp(err) {
			os.Exit(0)
		}
		os.Exit(2)
	}
	return opts
}

func loadScenario(opts options) (scenario.Scenario, error) {
	sc := scenario.Default(opts.Link, opts.Pairs)
	if opts.Config != "" {
		var err error
		if sc, err = scenario.Load(opts.Config); err != nil {
			return scenario.Scenario{}, err
		}
	}
	if opts.Timeout > 0 {
		sc.Timeout = opts.Timeout
	}
	return sc, nil
}

func serveDiagnostics(addr string, reg *link.Registry) {
	log.WithField("addr", addr).Info("Serving link diagnostics")
	if err := http.ListenAndServe(addr, linkhttp.NewRouter(reg)); err != nil {
		log.WithError(err).Warn("Diagnostics server stopped")
	}
}
