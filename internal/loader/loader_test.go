package loader

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookshelf/recommender/internal/model"
)

type fakeSaver struct {
	saved []*model.Book
}

func (f *fakeSaver) SaveBook(_ context.Context, book *model.Book) error {
	f.saved = append(f.saved, book)
	return nil
}

type fakeEmbedder struct{}

func (fakeEmbedder) Embed(_ context.Context, _ string) ([]float32, error) {
	return make([]float32, model.EmbeddingDim), nil
}

func (e fakeEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, text := range texts {
		out[i], _ = e.Embed(ctx, text)
	}

	return out, nil
}

func TestLoadBooks(t *testing.T) {
	saver := &fakeSaver{}

	loaded, err := LoadBooks(context.Background(), saver, fakeEmbedder{}, filepath.Join("..", "..", "testdata", "books"))

	require.NoError(t, err)
	assert.Equal(t, loaded, len(saver.saved))
	require.NotEmpty(t, saver.saved)

	for _, book := range saver.saved {
		assert.Len(t, book.Embedding, model.EmbeddingDim, "every stored book gets an embedding attached")
	}
}

func TestLoadBooks_MissingDirectory(t *testing.T) {
	_, err := LoadBooks(context.Background(), &fakeSaver{}, fakeEmbedder{}, filepath.Join("testdata", "nope"))
	assert.Error(t, err)
}

func TestReadBookFile(t *testing.T) {
	book, err := ReadBookFile(filepath.Join("..", "..", "testdata", "books", "9.json"))

	require.NoError(t, err)
	assert.Equal(t, "9", book.ID)
	assert.Equal(t, "Pride and Prejudice", book.Title)
	assert.Nil(t, book.Embedding, "fixtures store no embedding")
}
