package domain

// Statistics counts winning tickets per tier
type Statistics map[Tier]int

// NewStatistics returns statistics with every tier set to zero
func NewStatistics() Statistics {
	stats := make(Statistics, len(DisplayOrder))
	for _, tier := range DisplayOrder {
		stats[tier] = 0
	}
	return stats
}

// Increment returns a copy of s with tier counted once more. s is left untouched.
func (s Statistics) Increment(tier Tier) Statistics {
	updated := make(Statistics, len(s)+1)
	for k, v := range s {
		updated[k] = v
	}
	updated[tier]++
	return updated
}

// Total is the number of winning tickets across all tiers
func (s Statistics) Total() int {
	total := 0
	for _, count := range s {
		total += count
	}
	return total
}
