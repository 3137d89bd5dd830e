// SPDX-License-Identifier: MIT

package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ncd/logger"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range cases {
		got, err := logger.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := logger.ParseLevel("loud")
	require.ErrorIs(t, err, logger.ErrUnknownLevel)
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := logger.New("warn", "json", &buf)
	require.NoError(t, err)

	l.Info("hidden")
	l.Warn("shown", logger.Err(errors.New("boom")))

	var rec map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "shown", rec["msg"])
	assert.Equal(t, "boom", rec["error"])
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	l, err := logger.New("debug", "text", &buf)
	require.NoError(t, err)
	l.Debug("hello", slog.Int("n", 3))
	assert.Contains(t, buf.String(), "msg=hello n=3")
}

func TestNew_Errors(t *testing.T) {
	_, err := logger.New("info", "xml", &bytes.Buffer{})
	require.ErrorIs(t, err, logger.ErrUnknownFormat)
	_, err = logger.New("verbose", "text", &bytes.Buffer{})
	require.ErrorIs(t, err, logger.ErrUnknownLevel)
}
