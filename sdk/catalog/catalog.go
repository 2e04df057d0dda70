// SPDX-FileCopyrightText: © 2025 Diva360 authors
//
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	_ "embed"
	"fmt"
	"sort"

	"sigs.k8s.io/yaml"
)

// Subset names accepted by Scenes.
const (
	Full         = "full"
	Short        = "short"
	ShortDefault = "short-default"
)

// DefaultSubset drives the identifier list when nothing is configured.
const DefaultSubset = ShortDefault

//go:embed catalog.yaml
var catalogYAML []byte

var catalogs map[string][]string

func init() {
	if err := yaml.Unmarshal(catalogYAML, &catalogs); err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
}

// Scenes returns the ordered scene identifiers of a named subset.
func Scenes(subset string) ([]string, error) {
	scenes, ok := catalogs[subset]
	if !ok {
		return nil, fmt.Errorf("unknown subset %q (one of: %v)", subset, Subsets())
	}
	out := make([]string, len(scenes))
	copy(out, scenes)
	return out, nil
}

// Subsets lists the known subset names, sorted for stable help output.
func Subsets() []string {
	names := make([]string, 0, len(catalogs))
	for name := range catalogs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
