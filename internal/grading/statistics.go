package grading

import "github.com/SAP-F-2025/practice-quiz/internal/models"

// Aggregate summarises result percentages. An empty input yields all zeros.
func Aggregate(results []*models.Result) models.Statistics {
	stats := models.Statistics{Total: len(results)}
	if len(results) == 0 {
		return stats
	}

	sum := 0
	stats.Highest = results[0].Percentage
	stats.Lowest = results[0].Percentage
	for _, r := range results {
		sum += r.Percentage
		stats.Highest = max(stats.Highest, r.Percentage)
		stats.Lowest = min(stats.Lowest, r.Percentage)
	}
	stats.Average = roundHalfUp(float64(sum) / float64(len(results)))

	return stats
}
