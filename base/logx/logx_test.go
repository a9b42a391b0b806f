// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromString(t *testing.T) {
	lev, err := LevelFromString("debug")
	assert.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lev)
	lev, err = LevelFromString(" Warn ")
	assert.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lev)
	_, err = LevelFromString("loud")
	assert.Error(t, err)
}

func TestHandler(t *testing.T) {
	var buf bytes.Buffer
	lv := new(slog.LevelVar)
	lv.Set(slog.LevelInfo)
	lg := slog.New(NewHandler(&buf, lv))
	lg.Debug("hidden")
	lg.With("doc", "a.svg").WithGroup("obj").Info("updated", "id", "rect1")
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "updated")
	assert.Contains(t, out, "doc=a.svg")
	assert.Contains(t, out, "obj.id=rect1")
}
