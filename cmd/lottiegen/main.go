// Copyright (c) The Lottie-Windows Authors
// SPDX-License-Identifier: MPL-2.0

// Command lottiegen translates BodyMovin (Lottie) JSON documents into
// optimized composition graphs and emits them as factory source code.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/cli"
	"github.com/spf13/afero"

	"github.com/karimalambert/Lottie-Windows/internal/command"
	"github.com/karimalambert/Lottie-Windows/internal/command/views"
	"github.com/karimalambert/Lottie-Windows/internal/didyoumean"
	"github.com/karimalambert/Lottie-Windows/internal/logging"
	"github.com/karimalambert/Lottie-Windows/internal/terminal"
)

// Version is the tool version, overridable at link time.
var Version = "0.1.0-dev"

func main() {
	os.Exit(realMain(os.Args[1:]))
}

func realMain(args []string) int {
	logging.Setup()

	streams, err := terminal.Init()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to configure the terminal: %s\n", err)
		return 1
	}

	meta := &command.Meta{
		Streams: streams,
		View:    views.NewView(streams),
		FS:      afero.NewOsFs(),
		Version: Version,
	}

	commands := map[string]cli.CommandFactory{
		"generate": func() (cli.Command, error) {
			return &command.GenerateCommand{Meta: meta}, nil
		},
		"show": func() (cli.Command, error) {
			return &command.ShowCommand{Meta: meta}, nil
		},
		"version": func() (cli.Command, error) {
			return &command.VersionCommand{Meta: meta}, nil
		},
	}

	suggestCommand(streams, args, commands)

	c := cli.NewCLI("lottiegen", Version)
	c.Args = args
	c.Commands = commands
	c.HelpWriter = streams.Stderr.File

	status, err := c.Run()
	if err != nil {
		streams.Eprintf("Error executing CLI: %s\n", err)
		return 1
	}
	return status
}

// suggestCommand prints a did-you-mean hint when the first argument is
// not a known command. The CLI's own help output follows.
func suggestCommand(streams *terminal.Streams, args []string, commands map[string]cli.CommandFactory) {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return
	}
	if _, ok := commands[args[0]]; ok {
		return
	}
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	if suggestion := didyoumean.NameSuggestion(args[0], names); suggestion != "" {
		streams.Eprintf("lottiegen has no command named %q. Did you mean %q?\n\n", args[0], suggestion)
	}
}
