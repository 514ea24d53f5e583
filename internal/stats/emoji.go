package stats

import (
	"sort"
	"strings"

	"github.com/forPelevin/gomoji"
	"github.com/rivo/uniseg"

	"example.com/recap/internal/domain"
)

// extractTopEmojis scans every activity name for emoji, tallies frequency,
// and returns the three most frequent distinct ones. Names are walked by
// grapheme cluster so variation-selector forms are detected whole; the tally
// key strips U+FE0F so "❤️" and "❤" count together. Ties keep first-seen
// order.
func extractTopEmojis(activities []domain.Activity) []string {
	counts := make(map[string]int)
	order := make([]string, 0, 8)

	for _, a := range activities {
		graphemes := uniseg.NewGraphemes(a.Name)
		for graphemes.Next() {
			cluster := graphemes.Str()
			if !gomoji.ContainsEmoji(cluster) {
				continue
			}
			key := strings.ReplaceAll(cluster, "️", "")
			if key == "" {
				continue
			}
			if counts[key] == 0 {
				order = append(order, key)
			}
			counts[key]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > 3 {
		order = order[:3]
	}
	return order
}
