// Package loader bulk-loads the book data set: one JSON document per file,
// embedded and stored under its prefixed key.
package loader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bookshelf/recommender/internal/embedder"
	"github.com/bookshelf/recommender/internal/logger"
	"github.com/bookshelf/recommender/internal/model"
)

// BookSaver is the store surface the loader needs
type BookSaver interface {
	SaveBook(ctx context.Context, book *model.Book) error
}

// LoadBooks reads every JSON file under path, embeds each book's description
// and stores the result. A file that fails to decode aborts the load; partial
// data sets give misleading recommendations.
func LoadBooks(ctx context.Context, books BookSaver, emb embedder.Embedder, path string) (int, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read books directory: %w", err)
	}

	loaded := 0

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		book, err := ReadBookFile(filepath.Join(path, entry.Name()))
		if err != nil {
			return loaded, err
		}

		embedding, err := emb.Embed(ctx, book.Description)
		if err != nil {
			return loaded, fmt.Errorf("failed to embed book %s: %w", book.ID, err)
		}

		book.Embedding = embedding

		if err := books.SaveBook(ctx, book); err != nil {
			return loaded, err
		}

		loaded++
	}

	if loaded == 0 {
		return 0, fmt.Errorf("no book files found in %s", path)
	}

	logger.Info("loaded books", "count", loaded, "path", path)

	return loaded, nil
}

// ReadBookFile decodes a single stored book document from disk
func ReadBookFile(path string) (*model.Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	book, err := model.DecodeBook(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return book, nil
}
