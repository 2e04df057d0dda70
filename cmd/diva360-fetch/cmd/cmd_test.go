// SPDX-FileCopyrightText: © 2025 Diva360 authors
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// keep a developer's real profile file out of the tests
	t.Setenv("HOME", t.TempDir())

	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestScenesCommand(t *testing.T) {
	// ordered subtests: the first one exercises the default subset before
	// any --subset flag value sticks to the shared command tree
	t.Run("default subset", func(t *testing.T) {
		out, err := execute(t, "scenes")
		require.NoError(t, err)
		lines := strings.Fields(strings.TrimSpace(out))
		assert.Len(t, lines, 13)
	})

	t.Run("short", func(t *testing.T) {
		out, err := execute(t, "scenes", "--subset", "short")
		require.NoError(t, err)
		assert.Len(t, strings.Fields(strings.TrimSpace(out)), 25)
	})

	t.Run("full as json", func(t *testing.T) {
		out, err := execute(t, "scenes", "--subset", "full", "--format", "json")
		require.NoError(t, err)

		var scenes []string
		require.NoError(t, json.Unmarshal([]byte(out), &scenes))
		assert.Len(t, scenes, 45)
	})

	t.Run("unknown subset fails", func(t *testing.T) {
		_, err := execute(t, "scenes", "--subset", "bogus")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown subset")
	})
}

func TestConfigShow(t *testing.T) {
	out, err := execute(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "base_path")
	assert.Contains(t, out, "bucket")
	assert.NotContains(t, out, "aws_access_key_id")
}

func TestFetchUnknownSubsetFailsBeforeNetwork(t *testing.T) {
	_, err := execute(t, "fetch", "--subset", "bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown subset")
}

func TestFetchUnknownTransport(t *testing.T) {
	_, err := execute(t, "fetch", "--subset", "short-default", "--transport", "carrier-pigeon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown transport")
}
