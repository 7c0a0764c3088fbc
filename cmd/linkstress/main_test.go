// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) options {
	t.Helper()
	var opts options
	_, err := flags.NewParser(&opts, flags.None).ParseArgs(args)
	require.NoError(t, err)
	return opts
}

func TestDefaultOptions(t *testing.T) {
	opts := parse(t)
	assert.Equal(t, "go", opts.Link)
	assert.Equal(t, 1024, opts.Pairs)
	assert.Equal(t, "info", opts.LogLevel)

	sc, err := loadScenario(opts)
	require.NoError(t, err)
	require.Len(t, sc.Links, 1)
	assert.Equal(t, "go", sc.Links[0].ID)
	assert.Equal(t, 1024, sc.Links[0].Pairs)
}

func TestTimeoutOverridesScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.toml")
	require.NoError(t, os.WriteFile(path, []byte("timeout = \"1m\"\n[[link]]\nid = \"a\"\npairs = 3\n"), 0o600))

	sc, err := loadScenario(parse(t, "--config", path, "--timeout", "250ms"))
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, sc.Timeout)
	assert.Equal(t, "a", sc.Links[0].ID)
}

func TestMissingConfig(t *testing.T) {
	_, err := loadScenario(parse(t, "-c", filepath.Join(t.TempDir(), "none.toml")))
	assert.Error(t, err)
}
