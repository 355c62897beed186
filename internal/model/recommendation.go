package model

// Recommendation is a single similarity hit. Score is the cosine distance
// yielded by the engine: lower means more similar.
type Recommendation struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Score float32 `json:"score"`
}

// Recommendations is one decoded search reply. Count is the total number of
// matches the engine reported, which can exceed the number of returned
// recommendations when the result window is smaller than the match set.
type Recommendations struct {
	Count           uint64           `json:"count"`
	Recommendations []Recommendation `json:"recommendations"`
}
