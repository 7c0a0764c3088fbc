// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scenario

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
timeout = "2s"

[[link]]
id = "go"
pairs = 8

[[link]]
id = " stop "
pairs = 2

[[choice]]
links = ["left", "right", " "]
count = 4
`

func TestDecode(t *testing.T) {
	sc, err := Decode(sample)
	require.NoError(t, err)

	assert.Equal(t, 2*time.Second, sc.Timeout)
	assert.Equal(t, []LinkSpec{{ID: "go", Pairs: 8}, {ID: "stop", Pairs: 2}}, sc.Links)
	assert.Equal(t, []ChoiceSpec{{Links: []string{"left", "right"}, Count: 4}}, sc.Choices)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.toml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	sc, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, sc.Links, 2)
}

func TestDecodeDefaultsTimeout(t *testing.T) {
	sc, err := Decode("[[link]]\nid = \"a\"\npairs = 1\n")
	require.NoError(t, err)
	assert.Equal(t, defaultTimeout, sc.Timeout)
}

func TestDecodeRejects(t *testing.T) {
	cases := map[string]string{
		"empty":          ``,
		"blank id":       "[[link]]\nid = \"  \"\n",
		"negative pairs": "[[link]]\nid = \"a\"\npairs = -1\n",
		"bad timeout":    "timeout = \"soon\"\n[[link]]\nid = \"a\"\n",
		"no choice link": "[[choice]]\nlinks = []\ncount = 1\n",
		"negative count": "[[choice]]\nlinks = [\"a\"]\ncount = -2\n",
		"bad toml":       "[[link]\n",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(data)
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
