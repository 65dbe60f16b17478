package dom

import (
	_ "embed"

	"gopkg.in/yaml.v3"

	"src.weft.dev/pkg/must"
)

//go:embed tags.yaml
var tagsYAML []byte

type tagInfo struct {
	Void bool
}

var tags = func() map[string]tagInfo {
	var table struct {
		Void   []string `yaml:"void"`
		Normal []string `yaml:"normal"`
	}
	must.OK(yaml.Unmarshal(tagsYAML, &table))
	m := make(map[string]tagInfo, len(table.Void)+len(table.Normal))
	for _, t := range table.Void {
		m[t] = tagInfo{Void: true}
	}
	for _, t := range table.Normal {
		m[t] = tagInfo{}
	}
	return m
}()

// tagOf returns the tag table entry. Unknown tags are treated as custom,
// non-void elements.
func tagOf(name string) tagInfo { return tags[name] }
