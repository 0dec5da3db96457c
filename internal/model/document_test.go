package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"drive letter", `C:\media\clip.mp4`, "clip.mp4"},
		{"unc", `\\server\share\x.mp4`, "x.mp4"},
		{"slash", "relative/name.png", "name.png"},
		{"mixed", `C:/media\sub/clip.mp4`, "clip.mp4"},
		{"bare", "clip.mp4", "clip.mp4"},
		{"trailing separator", `C:\media\dir\`, "dir"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BaseName(tt.in))
		})
	}
}

func TestMapping_SetKeepsOrder(t *testing.T) {
	mp := NewMapping(3)
	mp.Set("b", Number("1"))
	mp.Set("a", String("x"))
	mp.Set("b", Bool(true))

	assert.Equal(t, []string{"b", "a"}, mp.Keys())

	v, ok := mp.Get("b")
	assert.True(t, ok)
	assert.Equal(t, Bool(true), v)

	_, ok = mp.Get("missing")
	assert.False(t, ok)
}

func TestBuildSummary_AssetCount(t *testing.T) {
	s := BuildSummary{Documents: []DocumentResult{
		{Assets: []AssetRecord{{}, {}}},
		{},
		{Assets: []AssetRecord{{}}},
	}}

	assert.Equal(t, 3, s.AssetCount())
}

func TestNodeKinds(t *testing.T) {
	assert.Equal(t, KindMapping, NewMapping(0).Kind())
	assert.Equal(t, KindSequence, Sequence{}.Kind())
	assert.Equal(t, KindString, String("").Kind())
	assert.Equal(t, KindNumber, Number("1").Kind())
	assert.Equal(t, KindBool, Bool(false).Kind())
	assert.Equal(t, KindNull, Null{}.Kind())
	assert.Equal(t, "mapping", KindMapping.String())
}
