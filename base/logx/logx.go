// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides level control and a colored terminal
// handler for the standard [log/slog] package.
package logx

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It should typically
// be set through the command line or settings. It defaults to
// [slog.LevelInfo], or [slog.LevelDebug] with the debug build tag and
// [slog.LevelWarn] with the release build tag.
var UserLevel = new(slog.LevelVar)

func init() {
	UserLevel.Set(defaultUserLevel)
}

// SetDefaultLogger sets the default logger to a [Handler] writing
// to stderr at [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, UserLevel)))
}

// LevelFromString returns the [slog.Level] for the given name
// (debug, info, warn, error), ignoring case.
func LevelFromString(str string) (slog.Level, error) {
	var lev slog.Level
	err := lev.UnmarshalText([]byte(strings.ToUpper(strings.TrimSpace(str))))
	if err != nil {
		return slog.LevelInfo, fmt.Errorf("logx: invalid level %q: %w", str, err)
	}
	return lev, nil
}

// SetLevel sets [UserLevel] from the given level name.
func SetLevel(str string) error {
	lev, err := LevelFromString(str)
	if err != nil {
		return err
	}
	UserLevel.Set(lev)
	return nil
}

// PrintlnDebug prints the given arguments to stdout if the
// [UserLevel] is at or below [slog.LevelDebug].
func PrintlnDebug(w io.Writer, a ...any) {
	if UserLevel.Level() <= slog.LevelDebug {
		fmt.Fprintln(w, a...)
	}
}
