// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command canvasdoc inspects and checks documents of the canvas
// object model: the attribute and path effect registries, the object
// tree of a file, XPath queries, idempotent writing, and live reloading.
package main

import (
	"fmt"
	"io"
	"os"

	"cogentcore.org/canvas/base/logx"
	"cogentcore.org/canvas/config"
	"github.com/alecthomas/kong"

	// registers the filter element and primitives
	_ "cogentcore.org/canvas/object/filters"
)

// Globals are the flags of every command, and the state set up
// from them before the command runs.
type Globals struct {
	Config   string `name:"config" short:"c" help:"Settings file (.toml, .yaml or .yml)" type:"path"`
	LogLevel string `name:"log-level" help:"Minimum level of log messages: debug, info, warn or error"`

	// Settings are the defaults, then the config file, then the flags.
	Settings config.Settings `kong:"-"`

	out io.Writer
}

// CLI is the command line of canvasdoc.
type CLI struct {
	Globals

	Attrs     AttrsCmd     `cmd:"" help:"List the tracked attribute names"`
	Lookup    LookupCmd    `cmd:"" help:"Look up attribute names"`
	LPEs      LPEsCmd      `cmd:"" name:"lpes" help:"List the live path effect kinds"`
	Tree      TreeCmd      `cmd:"" help:"Print the object tree of a document"`
	Roundtrip RoundtripCmd `cmd:"" help:"Write a document twice and check that the writes agree"`
	Fork      ForkCmd      `cmd:"" help:"Give items private copies of shared path effects"`
	Query     QueryCmd     `cmd:"" help:"Select nodes of a document with XPath"`
	Watch     WatchCmd     `cmd:"" help:"Reload a document when its file changes"`
}

// setup reads the settings and applies the log level.
func (g *Globals) setup() error {
	g.Settings = config.Defaults()
	if g.Config != "" {
		if err := g.Settings.Open(g.Config); err != nil {
			return err
		}
	}
	if g.LogLevel != "" {
		g.Settings.LogLevel = g.LogLevel
	}
	return g.Settings.Apply()
}

func (g *Globals) printf(format string, a ...any) {
	fmt.Fprintf(g.out, format, a...)
}

// run parses the arguments and runs the selected command,
// writing its output to out.
func run(args []string, out io.Writer, options ...kong.Option) error {
	var cli CLI
	cli.out = out
	options = append([]kong.Option{
		kong.Name("canvasdoc"),
		kong.Description("Inspect and check SVG documents of the canvas object model."),
		kong.UsageOnError(),
		kong.Writers(out, os.Stderr),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	}, options...)
	parser, err := kong.New(&cli, options...)
	if err != nil {
		return err
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	if err := cli.setup(); err != nil {
		return err
	}
	return ctx.Run(&cli.Globals)
}

func main() {
	logx.SetDefaultLogger()
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "canvasdoc:", err)
		os.Exit(1)
	}
}
