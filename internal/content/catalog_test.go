package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davelt/healthtui/internal/model"
)

func TestCatalogLookupNormalizesKey(t *testing.T) {
	catalog := DefaultCatalog()

	for _, key := range []string{"diabetes", "DIABETES", "  Diabetes  "} {
		topic, err := catalog.Lookup(key)
		require.NoError(t, err, "key %q", key)
		assert.Equal(t, "diabetes", topic.Key)
		assert.Equal(t, "Diabetes Mellitus", topic.Title)
	}
}

func TestCatalogLookupUnknown(t *testing.T) {
	catalog := DefaultCatalog()

	_, err := catalog.Lookup("astrology")
	require.Error(t, err)

	var unknown *UnknownTopicError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "astrology", unknown.Key)
	assert.Equal(t, catalog.Keys(), unknown.Valid)

	// Failed lookups leave the catalog untouched.
	_, err = catalog.Lookup("diabetes")
	assert.NoError(t, err)
}

func TestCatalogKeysPreserveOrder(t *testing.T) {
	catalog := NewCatalog([]model.Topic{
		{Key: "zeta", Title: "Z"},
		{Key: "alpha", Title: "A"},
	})

	assert.Equal(t, []string{"zeta", "alpha"}, catalog.Keys())
}

func TestCatalogCategories(t *testing.T) {
	catalog := DefaultCatalog()

	cats := catalog.Categories()
	assert.Contains(t, cats, "Lifestyle")
	assert.Contains(t, cats, "Heart & Circulation")

	seen := map[string]bool{}
	for _, c := range cats {
		assert.False(t, seen[c], "duplicate category %q", c)
		seen[c] = true
	}

	lifestyle := catalog.TopicsInCategory("Lifestyle")
	require.NotEmpty(t, lifestyle)
	for _, topic := range lifestyle {
		assert.Equal(t, "Lifestyle", topic.Category)
	}
}

func TestDefaultCatalogData(t *testing.T) {
	catalog := DefaultCatalog()
	require.NotEmpty(t, catalog.Keys())

	for _, key := range catalog.Keys() {
		topic, err := catalog.Lookup(key)
		require.NoError(t, err)
		assert.NotEmpty(t, topic.Title, "topic %q missing title", key)
		assert.NotEmpty(t, topic.Category, "topic %q missing category", key)
		assert.NotEmpty(t, topic.Overview, "topic %q missing overview", key)
		for _, group := range topic.Facts {
			assert.NotEmpty(t, group.Label, "topic %q has unlabeled fact group", key)
			if group.IsList() {
				assert.NotEmpty(t, group.Items)
			} else {
				assert.NotEmpty(t, group.Value)
			}
		}
	}
}
