package main

import (
	"testing"

	"github.com/npillmayer/feax/classes"
	"github.com/stretchr/testify/assert"
	"github.com/thatisuday/commando"
)

func TestSplitCSVSpace(t *testing.T) {
	assert.Equal(t, []string{"script=latn", "lang=dflt", "x=1"}, splitCSVSpace("script=latn, lang=dflt x=1"))
	assert.Empty(t, splitCSVSpace(" , "))
}

func TestAnalysisOptions(t *testing.T) {
	flags := map[string]commando.FlagValue{
		"omit":      {Value: "entry,exit"},
		"ligatures": {Value: "lastcomp"},
		"classes":   {Value: "-"},
	}
	opts := analysisOptions(flags)
	assert.Equal(t, []string{"entry", "exit"}, opts.OmittedAnchors)
	assert.Equal(t, classes.LigLastComp, opts.LigatureMode)
	assert.Equal(t, "", opts.ClassFile, "'-' means not set")
	assert.False(t, opts.IncludeClassProperties)
}
