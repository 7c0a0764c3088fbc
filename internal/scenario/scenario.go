// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package scenario describes and runs rendezvous workloads against a
// link registry. It backs the linkstress command.
package scenario

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const defaultTimeout = 10 * time.Second

// LinkSpec runs Pairs blocking senders against Pairs blocking receivers
// on one link.
type LinkSpec struct {
	ID    string
	Pairs int
}

// ChoiceSpec runs Count guarded choices over Links, matched by Count
// senders spread round-robin across the candidates.
type ChoiceSpec struct {
	Links []string
	Count int
}

// Scenario is a complete workload.
type Scenario struct {
	Links   []LinkSpec
	Choices []ChoiceSpec
	Timeout time.Duration
}

// Default returns a single-link scenario.
func Default(id string, pairs int) Scenario {
	return Scenario{
		Links:   []LinkSpec{{ID: id, Pairs: pairs}},
		Timeout: defaultTimeout,
	}
}

type fileLink struct {
	ID    string `toml:"id"`
	Pairs int    `toml:"pairs"`
}

type fileChoice struct {
	Links []string `toml:"links"`
	Count int      `toml:"count"`
}

type fileConfig struct {
	Timeout string       `toml:"timeout"`
	Link    []fileLink   `toml:"link"`
	Choice  []fileChoice `toml:"choice"`
}

// Load reads a scenario from a TOML file.
func Load(path string) (Scenario, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Scenario{}, fmt.Errorf("load scenario: %w", err)
	}
	return fromFile(raw, meta)
}

// Decode parses a scenario from TOML text.
func Decode(data string) (Scenario, error) {
	var raw fileConfig
	meta, err := toml.Decode(data, &raw)
	if err != nil {
		return Scenario{}, fmt.Errorf("decode scenario: %w", err)
	}
	return fromFile(raw, meta)
}

func fromFile(raw fileConfig, meta toml.MetaData) (Scenario, error) {
	sc := Scenario{Timeout: defaultTimeout}

	if meta.IsDefined("timeout") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.Timeout))
		if err != nil {
			return Scenario{}, fmt.Errorf("parse timeout: %w", err)
		}
		sc.Timeout = d
	}

	for i, l := range raw.Link {
		id := strings.TrimSpace(l.ID)
		if id == "" {
			return Scenario{}, fmt.Errorf("link[%d]: empty id", i)
		}
		if l.Pairs < 0 {
			return Scenario{}, fmt.Errorf("link %q: negative pairs %d", id, l.Pairs)
		}
		sc.Links = append(sc.Links, LinkSpec{ID: id, Pairs: l.Pairs})
	}

	for i, c := range raw.Choice {
		if len(c.Links) == 0 {
			return Scenario{}, fmt.Errorf("choice[%d]: no links", i)
		}
		if c.Count < 0 {
			return Scenario{}, fmt.Errorf("choice[%d]: negative count %d", i, c.Count)
		}
		ids := make([]string, 0, len(c.Links))
		for _, id := range c.Links {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
		if len(ids) == 0 {
			return Scenario{}, fmt.Errorf("choice[%d]: no links", i)
		}
		sc.Choices = append(sc.Choices, ChoiceSpec{Links: ids, Count: c.Count})
	}

	if len(sc.Links) == 0 && len(sc.Choices) == 0 {
		return Scenario{}, errors.New("scenario declares no links")
	}
	return sc, nil
}
