package tagmatch

import (
	"github.com/snowshoe/tagmatch/core"
	"github.com/snowshoe/tagmatch/tagdef"
)

var defaultMatcher = mustMatcher()

func mustMatcher() *core.Matcher {
	m, err := core.NewMatcher(nil)
	if err != nil {
		panic(err)
	}
	return m
}

// Match compares the dots string against a reference definition using the
// default options.
func Match(referenceDef string, dots string) (*core.Result, error) {
	return defaultMatcher.Match(referenceDef, dots)
}

// MatchPattern compares the dots string against a built-in tag pattern.
func MatchPattern(id int, dots string) (*core.Result, error) {
	def, err := tagdef.Builtin.Lookup(id)
	if err != nil {
		return nil, err
	}
	return defaultMatcher.Match(def, dots)
}
