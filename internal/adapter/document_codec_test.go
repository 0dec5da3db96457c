package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "obsportable.dev/pkg/obsportable/internal/model"
)

func TestJSONCodec_DecodePreservesKeyOrder(t *testing.T) {
	codec := NewJSONCodec()

	node, err := codec.Decode([]byte(`{"zeta": 1, "alpha": {"y": true, "x": null}, "mid": [3, "a"]}`))
	require.NoError(t, err)

	mp, ok := node.(*m.Mapping)
	require.True(t, ok)
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, mp.Keys())

	alpha, _ := mp.Get("alpha")
	assert.Equal(t, []string{"y", "x"}, alpha.(*m.Mapping).Keys())

	mid, _ := mp.Get("mid")
	assert.Equal(t, m.Sequence{m.Number("3"), m.String("a")}, mid)
}

func TestJSONCodec_DecodeKeepsNumberLexeme(t *testing.T) {
	codec := NewJSONCodec()

	node, err := codec.Decode([]byte(`{"volume": 1.0, "big": 12345678901234567890, "exp": 1e-7}`))
	require.NoError(t, err)

	mp := node.(*m.Mapping)

	v, _ := mp.Get("volume")
	assert.Equal(t, m.Number("1.0"), v)

	v, _ = mp.Get("big")
	assert.Equal(t, m.Number("12345678901234567890"), v)

	v, _ = mp.Get("exp")
	assert.Equal(t, m.Number("1e-7"), v)
}

func TestJSONCodec_DecodeErrors(t *testing.T) {
	codec := NewJSONCodec()

	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"truncated", `{"a": [1, 2`},
		{"trailing value", `{} {}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Decode([]byte(tt.input))
			require.Error(t, err)
		})
	}
}

func TestJSONCodec_EncodeIndented(t *testing.T) {
	codec := NewJSONCodec()

	doc := m.NewMapping(4)
	doc.Set("name", m.String("Scene <1> & co"))
	doc.Set("sources", m.Sequence{
		m.NewMapping(0),
		m.Sequence{},
		m.Number("2"),
	})
	doc.Set("enabled", m.Bool(false))
	doc.Set("hotkeys", m.Null{})

	got, err := codec.Encode(doc)
	require.NoError(t, err)

	want := `{
    "name": "Scene <1> & co",
    "sources": [
        {},
        [],
        2
    ],
    "enabled": false,
    "hotkeys": null
}
`
	assert.Equal(t, want, string(got))
}

func TestJSONCodec_RoundTripIsStable(t *testing.T) {
	codec := NewJSONCodec()

	input := `{
    "current_scene": "Scene",
    "sources": [
        {
            "settings": {
                "local_file": "C:\\media\\clip.mp4",
                "looping": true
            },
            "volume": 1.0
        }
    ]
}
`

	node, err := codec.Decode([]byte(input))
	require.NoError(t, err)

	out, err := codec.Encode(node)
	require.NoError(t, err)
	assert.Equal(t, input, string(out))
}

func TestJSONCodec_EncodeRejectsInvalidNumber(t *testing.T) {
	codec := NewJSONCodec()

	_, err := codec.Encode(m.Sequence{m.Number("NaN")})
	require.Error(t, err)
}
