package content

import (
	"fmt"
	"strings"

	"github.com/davelt/healthtui/internal/model"
)

// UnknownMythError reports that no registry token matched the query.
type UnknownMythError struct {
	Query  string
	Tokens []string
}

func (e *UnknownMythError) Error() string {
	return fmt.Sprintf("no myth matched %q (try: %s)", e.Query, strings.Join(e.Tokens, ", "))
}

// MythRegistry is an ordered set of myth records matched by substring
// containment. Declaration order is significant: the first token contained
// in the query wins, so overlapping tokens resolve deterministically.
type MythRegistry struct {
	myths []model.Myth
}

// NewMythRegistry builds a registry preserving the given order.
func NewMythRegistry(myths []model.Myth) *MythRegistry {
	return &MythRegistry{myths: append([]model.Myth(nil), myths...)}
}

// DefaultMythRegistry returns the registry backed by the built-in myths.
func DefaultMythRegistry() *MythRegistry {
	return NewMythRegistry(healthMyths)
}

// Lookup matches free text against the registry. The query is lowercased;
// the first record whose token is a substring of the query is returned.
func (r *MythRegistry) Lookup(freeText string) (model.Myth, error) {
	query := strings.ToLower(freeText)
	for _, m := range r.myths {
		if strings.Contains(query, m.Key) {
			return m, nil
		}
	}
	return model.Myth{}, &UnknownMythError{Query: freeText, Tokens: r.Tokens()}
}

// Tokens returns the matching tokens in declaration order.
func (r *MythRegistry) Tokens() []string {
	out := make([]string, len(r.myths))
	for i, m := range r.myths {
		out[i] = m.Key
	}
	return out
}

// All returns the myth records in declaration order.
func (r *MythRegistry) All() []model.Myth {
	return append([]model.Myth(nil), r.myths...)
}
