package config

type Config struct {
	RedisURL      string
	IndexName     string
	EmbedderURL   string
	EmbedderKey   string
	EmbedderModel string
	Environment   string
}

// Flags are the demo CLI options: which book to query and whether to
// (re)load the data set and (re)create the index first.
type Flags struct {
	RedisURL  string
	ID        string
	BooksPath string
	Load      bool
	Index     bool
}
