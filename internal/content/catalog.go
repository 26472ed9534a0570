// Package content holds the static health-education data and its lookups.
package content

import (
	"fmt"
	"sort"
	"strings"

	"github.com/davelt/healthtui/internal/model"
)

// UnknownTopicError reports a catalog miss and carries the valid keys so
// callers can present suggestions.
type UnknownTopicError struct {
	Key   string
	Valid []string
}

func (e *UnknownTopicError) Error() string {
	return fmt.Sprintf("unknown topic %q (try: %s)", e.Key, strings.Join(e.Valid, ", "))
}

// Catalog is an immutable set of topic fact sheets keyed by topic key.
type Catalog struct {
	topics map[string]model.Topic
	keys   []string
}

// NewCatalog builds a catalog from the given topics, preserving their order.
func NewCatalog(topics []model.Topic) *Catalog {
	byKey := make(map[string]model.Topic, len(topics))
	keys := make([]string, 0, len(topics))
	for _, t := range topics {
		if _, exists := byKey[t.Key]; exists {
			continue
		}
		byKey[t.Key] = t
		keys = append(keys, t.Key)
	}
	return &Catalog{topics: byKey, keys: keys}
}

// DefaultCatalog returns the catalog backed by the built-in topic data.
func DefaultCatalog() *Catalog {
	return NewCatalog(healthTopics)
}

// Lookup finds a topic by key. Input is trimmed and lowercased before
// matching. On a miss it returns an UnknownTopicError listing valid keys.
func (c *Catalog) Lookup(key string) (model.Topic, error) {
	normalized := NormalizeKey(key)
	topic, ok := c.topics[normalized]
	if !ok {
		return model.Topic{}, &UnknownTopicError{Key: key, Valid: c.Keys()}
	}
	return topic, nil
}

// Has reports whether the normalized key is in the catalog.
func (c *Catalog) Has(key string) bool {
	_, ok := c.topics[NormalizeKey(key)]
	return ok
}

// Keys returns the topic keys in declaration order.
func (c *Catalog) Keys() []string {
	return append([]string(nil), c.keys...)
}

// Categories returns the distinct topic categories, sorted.
func (c *Catalog) Categories() []string {
	seen := map[string]struct{}{}
	var out []string
	for _, key := range c.keys {
		cat := c.topics[key].Category
		if _, ok := seen[cat]; ok {
			continue
		}
		seen[cat] = struct{}{}
		out = append(out, cat)
	}
	sort.Strings(out)
	return out
}

// TopicsInCategory returns the topics of one category in declaration order.
func (c *Catalog) TopicsInCategory(category string) []model.Topic {
	var out []model.Topic
	for _, key := range c.keys {
		if c.topics[key].Category == category {
			out = append(out, c.topics[key])
		}
	}
	return out
}

// NormalizeKey lowercases and trims a user-supplied topic key.
func NormalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
