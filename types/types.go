package types

import "time"

// Decision is the tri-state judgment derived from a raw model label/score.
type Decision string

const (
	Positive Decision = "positive"
	Negative Decision = "negative"
	Neutral  Decision = "neutral"
)

// Classification is the outcome of one classifier call. RawLabel keeps the
// model's original casing so clients can show it next to the derived decision.
type Classification struct {
	RawLabel string   `json:"rawLabel" firestore:"rawLabel"`
	RawScore float64  `json:"rawScore" firestore:"rawScore"`
	Decision Decision `json:"decision" firestore:"decision"`
}

// ClassificationRecord is one persisted classification in the history collection.
type ClassificationRecord struct {
	ID        string    `json:"id" firestore:"id"`
	Text      string    `json:"text" firestore:"text"`
	RawLabel  string    `json:"rawLabel" firestore:"rawLabel"`
	RawScore  float64   `json:"rawScore" firestore:"rawScore"`
	Decision  Decision  `json:"decision" firestore:"decision"`
	Source    string    `json:"source" firestore:"source"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
}

// DecisionCount holds per-decision tallies over a set of records.
type DecisionCount struct {
	PositiveCount int `json:"positiveCount"`
	NegativeCount int `json:"negativeCount"`
	NeutralCount  int `json:"neutralCount"`
}

// SentimentReport aggregates a batch of classification records.
type SentimentReport struct {
	TotalCount       int           `json:"totalCount"`
	Counts           DecisionCount `json:"counts"`
	AverageScore     float64       `json:"averageScore"`
	DominantDecision Decision      `json:"dominantDecision"`
	Mood             Mood          `json:"mood"`
}

// Mood is a coarse band over the positive/negative balance of a report.
type Mood string

const (
	MoodGlowing  Mood = "glowing"
	MoodUpbeat   Mood = "upbeat"
	MoodMixed    Mood = "mixed"
	MoodGrumpy   Mood = "grumpy"
	MoodScathing Mood = "scathing"
)
