// SPDX-License-Identifier: MIT

package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qpca/logger"
)

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Level: "warn", Out: &buf})
	require.Equal(t, zerolog.WarnLevel, l.GetLevel())

	l.Info().Msg("hidden")
	require.Zero(t, buf.Len())

	l.Warn().Str("stage", "dataset").Msg("shown")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "shown", entry["message"])
	require.Equal(t, "dataset", entry["stage"])
	require.Contains(t, entry, "time")
	require.Contains(t, entry, "caller")
}

func TestNew_DefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Level: "verbose", Out: &buf})
	require.Equal(t, zerolog.InfoLevel, l.GetLevel())
}

func TestNew_Pretty(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Level: "debug", Pretty: true, Out: &buf})
	l.Debug().Msg("console")
	require.Contains(t, buf.String(), "console")
	require.NotContains(t, buf.String(), "{")
}
