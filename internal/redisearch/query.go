package redisearch

import (
	"fmt"

	"github.com/bookshelf/recommender/internal/model"
)

const (
	// DefaultK is the neighbor count for KNN queries
	DefaultK = 5
	// DefaultRadius is the distance bound for range queries
	DefaultRadius = 3

	// both query modes return at most this many documents
	resultLimit = 5

	// DIALECT 2 is required for the vector query syntax
	dialect = 2
)

// Command is one engine command: a name plus its ordered argument list,
// ready to hand to the client's generic Do call.
type Command struct {
	Name string
	Args []any
}

// Build flattens the command into the argument slice the client expects
func (c Command) Build() []any {
	return append([]any{c.Name}, c.Args...)
}

// KNNQuery builds an exact top-k similarity search against the named index.
// The vector must already be encoded; an empty vector is a caller contract
// violation and fails before any command is issued. The query deliberately
// matches every indexed document, so a book can appear in its own results.
func KNNQuery(index string, vec []byte, k int) (Command, error) {
	if len(vec) == 0 {
		return Command{}, fmt.Errorf("knn query: empty vector")
	}

	if k <= 0 {
		k = DefaultK
	}

	query := fmt.Sprintf("*=>[KNN %d @embedding $vec AS score]", k)

	return Command{
		Name: "FT.SEARCH",
		Args: []any{
			index,
			query,
			"PARAMS", 2, "vec", vec,
			"RETURN", 2, "title", "score",
			"SORTBY", "score",
			"LIMIT", 0, resultLimit,
			"DIALECT", dialect,
		},
	}, nil
}

// RangeQuery builds a radius search against the named index: every document
// whose embedding lies within radius of the query vector, closest first. The
// reply shape is identical to KNNQuery's, so both share one decoder.
func RangeQuery(index string, vec []byte, radius float64) (Command, error) {
	if len(vec) == 0 {
		return Command{}, fmt.Errorf("range query: empty vector")
	}

	if radius <= 0 {
		radius = DefaultRadius
	}

	query := "@embedding:[VECTOR_RANGE $radius $vec]=>{$YIELD_DISTANCE_AS: score}"

	return Command{
		Name: "FT.SEARCH",
		Args: []any{
			index,
			query,
			"PARAMS", 4, "radius", radius, "vec", vec,
			"RETURN", 2, "title", "score",
			"SORTBY", "score",
			"LIMIT", 0, resultLimit,
			"DIALECT", dialect,
		},
	}, nil
}

// CreateIndex builds the index definition: a JSON index scoped to the given
// key prefix with full-text fields for author, title and description, and an
// HNSW cosine index over the 384-dim embedding vector.
func CreateIndex(index, prefix string) Command {
	return Command{
		Name: "FT.CREATE",
		Args: []any{
			index,
			"ON", "JSON",
			"PREFIX", 1, prefix,
			"SCHEMA",
			"$.author", "AS", "author", "TEXT",
			"$.title", "AS", "title", "TEXT",
			"$.description", "AS", "description", "TEXT",
			"$.embedding", "AS", "embedding", "VECTOR",
			"HNSW", 6,
			"TYPE", "FLOAT32",
			"DIM", model.EmbeddingDim,
			"DISTANCE_METRIC", "COSINE",
		},
	}
}

// ListIndexes builds the index listing command used to make index creation
// idempotent
func ListIndexes() Command {
	return Command{Name: "FT._LIST"}
}
