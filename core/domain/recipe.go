// ABOUTME: Recipe domain model represents one entry of a fetched recipe collection
// ABOUTME: Optional URL fields are nil when the payload omits them or sends null

package domain

// Recipe is an immutable value decoded from the recipe endpoint
type Recipe struct {
	// ID is the stable identifier used as list identity
	ID string

	// Name is the display name, never empty
	Name string

	// Cuisine is the category label
	Cuisine string

	// Optional media and link fields
	PhotoURLSmall *string
	PhotoURLLarge *string
	YouTubeURL    *string
	SourceURL     *string

	// YouTubeVideoID is derived from YouTubeURL and may be nil even when
	// YouTubeURL is set
	YouTubeVideoID *string
}

// HasVideo reports whether the recipe has a playable video link
func (r Recipe) HasVideo() bool {
	return r.YouTubeURL != nil && r.YouTubeVideoID != nil
}

// HasSource reports whether the recipe links to an external source
func (r Recipe) HasSource() bool {
	return r.SourceURL != nil
}

// RecipeCollection is the ordered result of one successful fetch
type RecipeCollection []Recipe

// FindByID returns the recipe with the given id
func (c RecipeCollection) FindByID(id string) (Recipe, bool) {
	for _, r := range c {
		if r.ID == id {
			return r, true
		}
	}
	return Recipe{}, false
}

// Clone returns a copy whose backing array is not shared with c
func (c RecipeCollection) Clone() RecipeCollection {
	if c == nil {
		return nil
	}
	out := make(RecipeCollection, len(c))
	copy(out, c)
	return out
}

// StringPtr returns a pointer to s
func StringPtr(s string) *string {
	return &s
}
