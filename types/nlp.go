package types

// Sentiment is the score/magnitude pair returned by the Cloud Natural
// Language second-opinion backend. Score is in [-1, 1].
type Sentiment struct {
	Magnitude float32 `firestore:"magnitude" json:"magnitude"`
	Score     float32 `firestore:"score" json:"score"`
}
