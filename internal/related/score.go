package related

import "calc-catalog/internal/models"

const (
	// coreMatchBonus is added when both tools share the same core tag.
	coreMatchBonus = 100
	// sharedTagWeight is added per clean tag the two tools have in common.
	sharedTagWeight = 12
)

// Score rates how related other is to base. It returns 0 when the
// tools have no clean tag in common. Otherwise the score is
// sharedTagWeight per shared tag plus coreMatchBonus when both tools
// have the same core tag.
//
// Clean tags are compared as sets, so a tag repeated on either tool
// counts once and Score(a, b) == Score(b, a).
func Score(base, other models.Tool) int {
	baseTags := cleanTags(base.Tags)
	otherTags := cleanTags(other.Tags)

	inBase := make(map[string]struct{}, len(baseTags))
	for _, tag := range baseTags {
		inBase[tag] = struct{}{}
	}

	shared := 0
	for _, tag := range otherTags {
		if _, ok := inBase[tag]; ok {
			shared++
		}
	}
	if shared == 0 {
		return 0
	}

	score := 0
	baseCore, otherCore := coreTag(baseTags), coreTag(otherTags)
	if baseCore != "" && baseCore == otherCore {
		score += coreMatchBonus
	}
	return score + sharedTagWeight*shared
}

// cleanTags normalizes tags, drops stop tags and empty strings, and
// removes duplicates while keeping first-seen order.
func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range NormalizeAll(tags) {
		if tag == "" || IsStopTag(tag) {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// coreTag picks the clean tag with the highest core weight. The first
// tag wins among equal weights; "" means the tool has no core tag.
func coreTag(clean []string) string {
	best, bestWeight := "", 0
	for _, tag := range clean {
		if weight := CoreTagWeight(tag); weight > bestWeight {
			best, bestWeight = tag, weight
		}
	}
	return best
}
