package domain

// SearchResult is one keyword match from the card index.
type SearchResult struct {
	ID        string
	Source    string
	Directory string
	Snippet   string
}
