package rank

import "github.com/docsift/docsift/internal/section"

// SelectDiverse picks at most maxSections from sections already sorted
// descending by relevance, in two passes:
//
// Pass 1 admits top-ranked sections while their source document has fewer
// than perDocCap admitted, preventing one document from dominating. Pass 2
// rescans and fills any remaining slots regardless of document, so the
// result is always maxSections when enough sections exist.
//
// Ranked order is preserved within each pass.
func SelectDiverse(sections []section.Section, maxSections, perDocCap int) []section.Section {
	if maxSections <= 0 {
		return nil
	}

	selected := make([]section.Section, 0, maxSections)
	taken := make([]bool, len(sections))
	perDoc := make(map[string]int)

	for i, s := range sections {
		if len(selected) >= maxSections {
			break
		}
		if perDoc[s.Document] < perDocCap {
			selected = append(selected, s)
			taken[i] = true
			perDoc[s.Document]++
		}
	}

	for i, s := range sections {
		if len(selected) >= maxSections {
			break
		}
		if !taken[i] {
			selected = append(selected, s)
			taken[i] = true
		}
	}

	return selected
}
