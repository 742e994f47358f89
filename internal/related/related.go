package related

import (
	"sort"

	"calc-catalog/internal/models"
)

// Recommender links a tool to similar tools in the same category. It
// keeps its own copy of the catalog and is safe for concurrent use.
type Recommender struct {
	tools []models.Tool
}

// New creates a Recommender over tools. Catalog order is kept and
// decides ties between equally scored candidates.
func New(tools []models.Tool) *Recommender {
	cp := make([]models.Tool, len(tools))
	copy(cp, tools)
	return &Recommender{tools: cp}
}

// Related returns up to limit tools from tool's category, excluding
// tool itself, ranked by Score in descending order. Candidates scoring
// 0 are dropped. A non-positive limit returns an empty slice.
func (r *Recommender) Related(tool models.Tool, limit int) []models.Tool {
	if limit <= 0 {
		return []models.Tool{}
	}

	type candidate struct {
		tool  models.Tool
		score int
	}

	var candidates []candidate
	for _, other := range r.tools {
		if other.Category != tool.Category || other.Slug == tool.Slug {
			continue
		}
		if score := Score(tool, other); score > 0 {
			candidates = append(candidates, candidate{tool: other, score: score})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	out := make([]models.Tool, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.tool)
	}
	return out
}
