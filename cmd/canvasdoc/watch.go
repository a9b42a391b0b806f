// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"cogentcore.org/canvas/base/errors"
	"cogentcore.org/canvas/object"
	"cogentcore.org/canvas/repr"
	"github.com/fsnotify/fsnotify"
)

// WatchCmd keeps a document loaded and merges the file into it
// whenever it changes, logging the updates of the document.
type WatchCmd struct {
	File     string        `arg:"" help:"SVG file" type:"existingfile"`
	Debounce time.Duration `help:"Time the file must stay unchanged before a reload; the watch-debounce setting if 0"`
}

func (c *WatchCmd) Run(g *Globals) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	d, err := g.open(c.File)
	if err != nil {
		return err
	}
	defer d.Close()
	d.Modified.Connect(func(f object.Flags) {
		slog.Info("document updated", "flags", f, "objects", d.ObjectCount())
	})
	debounce := c.Debounce
	if debounce <= 0 {
		debounce = g.Settings.WatchDebounce.Std()
	}
	return watch(ctx, d, c.File, debounce, g.Settings.StrictXML)
}

// watch reloads file into d after each burst of changes, until ctx
// is done. The directory is watched, so that files replaced by
// renaming are seen.
func watch(ctx context.Context, d *object.Document, file string, debounce time.Duration, strict bool) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	abs, err := filepath.Abs(file)
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return err
	}
	slog.Info("watching", "file", abs, "debounce", debounce)

	timer := time.NewTimer(debounce)
	timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			timer.Reset(debounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		case <-timer.C:
			errors.Log(reload(d, abs, strict))
		}
	}
}

// reload merges the content of file into the document, matching
// elements by id, as one undoable action.
func reload(d *object.Document, file string, strict bool) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()
	src, err := repr.ParseWithOptions(f, repr.ParseOptions{Strict: strict})
	if err != nil {
		return fmt.Errorf("reloading %s: %w", file, err)
	}
	root := d.Repr().Root()
	if root.Name() != src.Root().Name() {
		return fmt.Errorf("reloading %s: root is %s, not %s", file, src.Root().Name(), root.Name())
	}
	root.MergeFrom(src.Root(), "id", true)
	if d.DoneAction("reload") {
		slog.Info("reloaded", "file", file, "objects", d.ObjectCount())
	}
	return nil
}
