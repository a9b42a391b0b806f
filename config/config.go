// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the settings of a document session,
// read from TOML or YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"cogentcore.org/canvas/base/logx"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for a settings file whose
// extension is not .toml, .yaml or .yml.
var ErrUnknownFormat = errors.New("config: unknown settings file format")

// Settings are the settings of a document session.
type Settings struct {

	// LogLevel is the name of the minimum level of log messages
	// that are shown: debug, info, warn or error.
	LogLevel string `toml:"log-level" yaml:"log-level"`

	// IDPrefix is prepended to the ids generated for new and forked
	// objects.
	IDPrefix string `toml:"id-prefix" yaml:"id-prefix"`

	// LPEShareLimit is the number of users a shared path effect,
	// gradient or pattern may have before an edit forks a private copy.
	LPEShareLimit int `toml:"lpe-share-limit" yaml:"lpe-share-limit"`

	// UndoLimit is the maximum number of undo records kept.
	UndoLimit int `toml:"undo-limit" yaml:"undo-limit"`

	// StrictXML requires documents to be well-formed XML.
	StrictXML bool `toml:"strict-xml" yaml:"strict-xml"`

	// WatchDebounce is how long a watched file must stay unchanged
	// before it is reloaded.
	WatchDebounce Duration `toml:"watch-debounce" yaml:"watch-debounce"`

	// Includes are settings files read before this one, so that the
	// settings here override theirs. Relative names are relative to
	// the directory of the including file.
	Includes []string `toml:"includes,omitempty" yaml:"includes,omitempty"`
}

// Duration is a [time.Duration] written as a string such as "250ms".
type Duration time.Duration

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Std returns the duration as a [time.Duration].
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Defaults returns the default settings.
func Defaults() Settings {
	return Settings{
		LogLevel:      "info",
		LPEShareLimit: 1,
		UndoLimit:     100,
		StrictXML:     true,
		WatchDebounce: Duration(200 * time.Millisecond),
	}
}

// Apply applies the process-wide settings, which is the log level.
func (s *Settings) Apply() error {
	if s.LogLevel == "" {
		return nil
	}
	return logx.SetLevel(s.LogLevel)
}

// maxIncludeDepth bounds include chains, which also stops cycles.
const maxIncludeDepth = 8

// Open reads the settings from the given file, over the current
// values: fields the file does not mention are kept. A leading ~ is
// expanded to the home directory. The files named in Includes are
// read first, in order, so that the including file has the final say.
func (s *Settings) Open(file string) error {
	return s.open(file, 0)
}

func (s *Settings) open(file string, depth int) error {
	if depth > maxIncludeDepth {
		return fmt.Errorf("config: includes nested more than %d deep at %q", maxIncludeDepth, file)
	}
	path, err := homedir.Expand(file)
	if err != nil {
		return err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	prev := s.Includes
	s.Includes = nil
	if err := s.decode(path, b); err != nil {
		return err
	}
	incs := s.Includes
	if len(incs) == 0 {
		s.Includes = prev
		return nil
	}
	for _, inc := range incs {
		if !filepath.IsAbs(inc) && !strings.HasPrefix(inc, "~") {
			inc = filepath.Join(filepath.Dir(path), inc)
		}
		if err := s.open(inc, depth+1); err != nil {
			return fmt.Errorf("config: include of %q: %w", file, err)
		}
	}
	// reopen the including file
	if err := s.decode(path, b); err != nil {
		return err
	}
	s.Includes = incs
	return nil
}

func (s *Settings) decode(path string, b []byte) error {
	var err error
	switch format(path) {
	case "toml":
		err = toml.Unmarshal(b, s)
	case "yaml":
		err = yaml.Unmarshal(b, s)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
	if err != nil {
		return fmt.Errorf("config: reading %q: %w", path, err)
	}
	return nil
}

// Save writes the settings to the given file, in the format
// given by its extension.
func (s *Settings) Save(file string) error {
	path, err := homedir.Expand(file)
	if err != nil {
		return err
	}
	var b []byte
	switch format(path) {
	case "toml":
		b, err = toml.Marshal(s)
	case "yaml":
		b, err = yaml.Marshal(s)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o666)
}

// format returns the format name for the extension of the path.
func format(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case ext == ".toml":
		return "toml"
	case slices.Contains([]string{".yaml", ".yml"}, ext):
		return "yaml"
	}
	return ""
}
