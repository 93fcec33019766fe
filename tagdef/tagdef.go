// Package tagdef holds the reference tag patterns. A pattern definition is a
// string of comma-separated integers, one x,y pair per dot.
package tagdef

import (
	"fmt"
	"io"
	"sort"

	"github.com/snowshoe/tagmatch/core"
	"gopkg.in/yaml.v3"
)

type Table map[int]string

// Builtin is the table used when no pattern file is given.
var Builtin = Table{
	0: "0,0,100,0,100,100,0,100,50,50",
	1: "0,0,130,10,90,80,20,60,50,35",
	2: "10,0,160,40,120,110,40,90,70,50",
}

type tableFile struct {
	Patterns map[int]string `yaml:"patterns"`
}

// Lookup returns the definition for id.
func (t Table) Lookup(id int) (string, error) {
	def, ok := t[id]
	if !ok {
		return "", fmt.Errorf("unknown tag pattern %d", id)
	}
	return def, nil
}

// IDs returns the pattern ids in ascending order.
func (t Table) IDs() []int {
	ids := make([]int, 0, len(t))
	for id := range t {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// LoadTable reads a YAML document of the form
//
//	patterns:
//	  0: "0,0,100,0,100,100,0,100,50,50"
//
// Every definition must parse as patternSize points.
func LoadTable(r io.Reader, patternSize int) (Table, error) {
	var f tableFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode tag table: %w", err)
	}
	if len(f.Patterns) == 0 {
		return nil, fmt.Errorf("tag table has no patterns")
	}
	for _, id := range Table(f.Patterns).IDs() {
		if _, err := core.ParsePointSet(f.Patterns[id], patternSize); err != nil {
			return nil, fmt.Errorf("tag pattern %d: %w", id, err)
		}
	}
	return Table(f.Patterns), nil
}
