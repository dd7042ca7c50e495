package store

// Chunk is one retrieved knowledge-base passage, ordered best-first by the
// index. Distance is the cosine similarity score reported by the search,
// higher means closer.
type Chunk struct {
	Section  string
	Content  string
	Link     string
	Metadata map[string]interface{}
	Distance float64
}
