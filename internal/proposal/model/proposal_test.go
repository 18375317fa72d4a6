package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywordHelpers(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		p := &Proposal{}
		p.SetKeywordList([]string{"quantum", "error correction"})

		assert.Equal(t, "quantum,error correction", p.Keywords)
		assert.Equal(t, []string{"quantum", "error correction"}, p.KeywordList())
	})

	t.Run("empty column yields no keywords", func(t *testing.T) {
		p := &Proposal{}
		assert.Empty(t, p.KeywordList())
	})

	t.Run("split trims whitespace and drops empties", func(t *testing.T) {
		got := SplitKeywords(" quantum , ,error correction,")
		assert.Equal(t, []string{"quantum", "error correction"}, got)
	})

	t.Run("join ignores empty entries", func(t *testing.T) {
		got := JoinKeywords([]string{"", "quantum", " "})
		assert.Equal(t, "quantum", got)
	})
}
