package domain

// LibraryEntry is one item in a user's library, joined with the content's
// category. Rating is 1..5 when the user has rated the item, nil otherwise.
type LibraryEntry struct {
	Ref      ContentRef
	Rating   *int
	Category *string
}

// Rated reports whether the entry carries a rating of at least min.
func (e LibraryEntry) Rated(min int) bool {
	return e.Rating != nil && *e.Rating >= min
}
