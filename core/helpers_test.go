package core

import (
	"testing"

	"github.com/snowshoe/tagmatch/options"
	"github.com/stretchr/testify/require"
)

func newMatcher(tb testing.TB, opt *options.MatchOptions) *Matcher {
	tb.Helper()
	m, err := NewMatcher(opt)
	require.NoError(tb, err)
	return m
}
