package config

import (
	"flag"
	"os"
)

// parses CLI flags for the recommender demo binary
func ParseRecommenderFlags() Flags {
	fs := flag.NewFlagSet("recommender", flag.ExitOnError)
	redisURL := fs.String("redis-url", defaultRedisURL, "redis connection url")
	id := fs.String("id", "", "book key to get recommendations for (empty runs the built-in demo pair)")
	booksPath := fs.String("books", "./testdata/books", "path to the book JSON directory")
	load := fs.Bool("load", false, "load the book data before querying")
	index := fs.Bool("index", false, "create the search index before querying")
	fs.Parse(os.Args[1:]) //nolint:errcheck,gosec // G104: ExitOnError flag set handles errors

	return Flags{
		RedisURL:  *redisURL,
		ID:        *id,
		BooksPath: *booksPath,
		Load:      *load,
		Index:     *index,
	}
}
