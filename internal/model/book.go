package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// EmbeddingDim is the dimensionality of the sentence embeddings stored on
// books. The vector index is created with the same value, so a book whose
// embedding has a different length can never match.
const EmbeddingDim = 384

// book edition language
type Edition string

const (
	EditionEnglish Edition = "english"
	EditionSpanish Edition = "spanish"
	EditionFrench  Edition = "french"
)

// physical copy status
type InventoryStatus string

const (
	StatusOnLoan      InventoryStatus = "on_loan"
	StatusAvailable   InventoryStatus = "available"
	StatusMaintenance InventoryStatus = "maintenance"
)

// ParseEdition parses a free-text edition name, case-insensitively
func ParseEdition(s string) (Edition, error) {
	switch strings.ToLower(s) {
	case "english":
		return EditionEnglish, nil
	case "spanish":
		return EditionSpanish, nil
	case "french":
		return EditionFrench, nil
	default:
		return "", &UnknownVariantError{Kind: "edition", Token: s}
	}
}

// ParseInventoryStatus parses a free-text inventory status, case-insensitively.
// Both "on_loan" and "onloan" map to StatusOnLoan: redis round-trips the
// value without the underscore.
func ParseInventoryStatus(s string) (InventoryStatus, error) {
	switch strings.ToLower(s) {
	case "on_loan", "onloan":
		return StatusOnLoan, nil
	case "available":
		return StatusAvailable, nil
	case "maintenance":
		return StatusMaintenance, nil
	default:
		return "", &UnknownVariantError{Kind: "inventory status", Token: s}
	}
}

// UnmarshalJSON parses the edition through ParseEdition so unknown values
// fail loudly instead of passing through as arbitrary strings
func (e *Edition) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := ParseEdition(s)
	if err != nil {
		return err
	}

	*e = parsed

	return nil
}

func (s *InventoryStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parsed, err := ParseInventoryStatus(raw)
	if err != nil {
		return err
	}

	*s = parsed

	return nil
}

// a single physical copy of a book
type Inventory struct {
	Status  InventoryStatus `json:"status"`
	StockID string          `json:"stock_id"`
}

// aggregate reader ratings
type Metrics struct {
	RatingVotes uint32  `json:"rating_votes"`
	Score       float32 `json:"score"`
}

// Book is the stored document shape. Embedding is nil until one is attached
// between load and store; a book without an embedding cannot participate in
// similarity queries.
type Book struct {
	Author        string      `json:"author"`
	ID            string      `json:"id"`
	Description   string      `json:"description"`
	Embedding     []float32   `json:"embedding,omitempty"`
	Editions      []Edition   `json:"editions"`
	Genres        []string    `json:"genres"`
	Inventory     []Inventory `json:"inventory"`
	Metrics       Metrics     `json:"metrics"`
	Pages         uint32      `json:"pages"`
	Title         string      `json:"title"`
	URL           string      `json:"url"`
	YearPublished uint16      `json:"year_published"`
}

// DecodeBook decodes a stored book. Path-scoped JSON.GET replies wrap the
// document in a one-element array, so both `{...}` and `[{...}]` are
// accepted; anything else is a decode error.
func DecodeBook(data []byte) (*Book, error) {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return nil, fmt.Errorf("decode book: %w", ErrNotFound)
	}

	if strings.HasPrefix(trimmed, "[") {
		var books []Book
		if err := json.Unmarshal(data, &books); err != nil {
			return nil, fmt.Errorf("decode book: %w", err)
		}

		switch len(books) {
		case 0:
			return nil, fmt.Errorf("decode book: %w", ErrNotFound)
		case 1:
			return &books[0], nil
		default:
			return nil, fmt.Errorf("decode book: ambiguous result, got %d documents", len(books))
		}
	}

	var book Book
	if err := json.Unmarshal(data, &book); err != nil {
		return nil, fmt.Errorf("decode book: %w", err)
	}

	return &book, nil
}
