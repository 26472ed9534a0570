package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davelt/healthtui/internal/model"
)

func TestMythLookupSubstring(t *testing.T) {
	registry := DefaultMythRegistry()

	cases := []struct {
		query string
		want  string
	}{
		{"does sugar make kids hyperactive?", "sugar"},
		{"SUGAR rush", "sugar"},
		{"is cracking your knuckles bad for you", "knuckles"},
		{"cold weather and getting sick", "cold"},
		{"how much water should I drink", "water"},
		{"vitamin c megadoses", "vitamin"},
	}
	for _, tc := range cases {
		myth, err := registry.Lookup(tc.query)
		require.NoError(t, err, "query %q", tc.query)
		assert.Equal(t, tc.want, myth.Key, "query %q", tc.query)
	}
}

func TestMythLookupFirstDeclaredWins(t *testing.T) {
	registry := DefaultMythRegistry()

	// "cold" is declared before "water", so it wins when both match.
	myth, err := registry.Lookup("drinking cold water")
	require.NoError(t, err)
	assert.Equal(t, "cold", myth.Key)
}

func TestMythLookupNoMatch(t *testing.T) {
	registry := DefaultMythRegistry()

	_, err := registry.Lookup("5g towers")
	require.Error(t, err)

	var unknown *UnknownMythError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "5g towers", unknown.Query)
	assert.Equal(t, registry.Tokens(), unknown.Tokens)
}

func TestMythRegistryCopiesInput(t *testing.T) {
	src := []model.Myth{{Key: "coffee", Myth: "m", Truth: "t", Evidence: "e"}}
	registry := NewMythRegistry(src)
	src[0].Key = "mutated"

	myth, err := registry.Lookup("too much coffee?")
	require.NoError(t, err)
	assert.Equal(t, "coffee", myth.Key)
}

func TestDefaultMythData(t *testing.T) {
	registry := DefaultMythRegistry()
	myths := registry.All()
	require.NotEmpty(t, myths)

	for _, m := range myths {
		assert.NotEmpty(t, m.Key)
		assert.NotEmpty(t, m.Myth)
		assert.NotEmpty(t, m.Truth)
		assert.NotEmpty(t, m.Evidence)
	}
}
