package movie

import (
	"fmt"
	"strings"
)

// Resolver answers search criteria against a catalog.
type Resolver struct {
	r Reader
}

func NewResolver(r Reader) *Resolver {
	return &Resolver{r: r}
}

// Search returns the movies matching c. A usable ID takes precedence and
// suppresses the name and genre axes entirely. Otherwise name is matched as a
// case-insensitive substring and genre as a case-insensitive exact value, both
// trimmed, with blank values matching everything. The result keeps catalog
// order and is never nil.
func (rs *Resolver) Search(c Criteria) (result []Movie) {
	result = []Movie{}
	if rs == nil || rs.r == nil {
		return result
	}

	// a broken reader yields no results rather than a crash
	defer func() {
		if recover() != nil {
			result = []Movie{}
		}
	}()

	if c.HasID() {
		if m, ok := rs.r.GetByID(c.ID); ok {
			result = append(result, m)
		}
		return result
	}

	name := strings.ToLower(c.name())
	genre := strings.ToLower(c.genre())
	for _, m := range rs.r.ListAll() {
		if name != "" && !strings.Contains(strings.ToLower(m.Name), name) {
			continue
		}
		if genre != "" && strings.ToLower(m.Genre) != genre {
			continue
		}
		result = append(result, m)
	}
	return result
}

// Describe summarises a search outcome for display, e.g.
// "Found 2 movies with name containing 'the' and genre 'Drama'."
func Describe(count int, c Criteria) string {
	var parts []string
	if name := c.name(); name != "" {
		parts = append(parts, fmt.Sprintf("name containing '%s'", name))
	}
	if c.HasID() {
		parts = append(parts, fmt.Sprintf("ID %d", c.ID))
	}
	if genre := c.genre(); genre != "" {
		parts = append(parts, fmt.Sprintf("genre '%s'", genre))
	}

	criteria := "the given criteria"
	if len(parts) > 0 {
		criteria = strings.Join(parts, " and ")
	}

	switch count {
	case 0:
		return fmt.Sprintf("No movies found with %s. Try a different search.", criteria)
	case 1:
		return fmt.Sprintf("Found 1 movie with %s.", criteria)
	default:
		return fmt.Sprintf("Found %d movies with %s.", count, criteria)
	}
}
