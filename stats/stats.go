// Package stats aggregates classification history into a report. Pure
// computation, no I/O.
package stats

import (
	"go-reviewbird/types"
)

const (
	// Mood band cutoffs over the positive share of non-neutral decisions.
	glowingShare  = 0.85
	upbeatShare   = 0.60
	grumpyShare   = 0.40
	scathingShare = 0.15

	// Below this many decided (non-neutral) records the mood stays mixed,
	// a handful of reviews shouldn't swing the banner.
	minDecidedForMood = 3
)

// BuildReport tallies decisions, averages the raw model score and derives a
// coarse mood band from the positive/negative balance.
func BuildReport(records []types.ClassificationRecord) types.SentimentReport {
	report := types.SentimentReport{
		TotalCount:       len(records),
		DominantDecision: types.Neutral,
		Mood:             types.MoodMixed,
	}
	if len(records) == 0 {
		return report
	}

	var scoreSum float64
	for _, rec := range records {
		scoreSum += rec.RawScore
		switch rec.Decision {
		case types.Positive:
			report.Counts.PositiveCount++
		case types.Negative:
			report.Counts.NegativeCount++
		default:
			report.Counts.NeutralCount++
		}
	}
	report.AverageScore = scoreSum / float64(len(records))
	report.DominantDecision = dominantDecision(report.Counts)
	report.Mood = moodBand(report.Counts)

	return report
}

// dominantDecision picks the decision with the highest count. Ties go to
// neutral, a split verdict is not a verdict.
func dominantDecision(counts types.DecisionCount) types.Decision {
	if counts.PositiveCount > counts.NegativeCount && counts.PositiveCount > counts.NeutralCount {
		return types.Positive
	}
	if counts.NegativeCount > counts.PositiveCount && counts.NegativeCount > counts.NeutralCount {
		return types.Negative
	}
	return types.Neutral
}

func moodBand(counts types.DecisionCount) types.Mood {
	decided := counts.PositiveCount + counts.NegativeCount
	if decided < minDecidedForMood {
		return types.MoodMixed
	}

	share := float64(counts.PositiveCount) / float64(decided)
	switch {
	case share >= glowingShare:
		return types.MoodGlowing
	case share >= upbeatShare:
		return types.MoodUpbeat
	case share <= scathingShare:
		return types.MoodScathing
	case share <= grumpyShare:
		return types.MoodGrumpy
	default:
		return types.MoodMixed
	}
}
