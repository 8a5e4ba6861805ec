package rank

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/docsift/docsift/internal/embed"
	"github.com/docsift/docsift/internal/section"
)

// Embedder maps texts to fixed-dimension vectors. Pure and deterministic
// for a fixed model version; batching does not change results.
type Embedder interface {
	EmbedBatch(ctx context.Context, texts []string) ([][]float64, error)
}

// Scorer assigns relevance to pooled sections: cosine similarity between
// each section's representation and the query, plus cumulative keyword
// boosts.
type Scorer struct {
	embedder       Embedder
	boostKeywords  []string
	boostIncrement float64
}

func NewScorer(embedder Embedder, boostKeywords []string, boostIncrement float64) *Scorer {
	return &Scorer{
		embedder:       embedder,
		boostKeywords:  boostKeywords,
		boostIncrement: boostIncrement,
	}
}

// SectionText builds a section's comparison text: heading repeated twice,
// then body, biasing similarity toward sections whose heading names the
// topic directly.
func SectionText(s section.Section) string {
	return s.Heading + " " + s.Heading + " " + s.Body
}

// Score embeds the query and all sections in one batch call and fills in
// each section's relevance. Input order is preserved; sorting is the
// caller's concern.
func (sc *Scorer) Score(ctx context.Context, sections []section.Section, query string) error {
	if len(sections) == 0 {
		return nil
	}

	texts := make([]string, 0, len(sections)+1)
	texts = append(texts, query)
	for _, s := range sections {
		texts = append(texts, SectionText(s))
	}

	vectors, err := sc.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return fmt.Errorf("embed sections: %w", err)
	}

	queryVec := vectors[0]
	for i := range sections {
		sections[i].Relevance = embed.CosineSimilarity(queryVec, vectors[i+1])
		sections[i].Relevance += sc.boost(sections[i])
	}
	return nil
}

// boost adds the configured increment once per distinct matching keyword
// (cumulative policy), matching on case-insensitive substrings of heading
// or body.
func (sc *Scorer) boost(s section.Section) float64 {
	heading := strings.ToLower(s.Heading)
	body := strings.ToLower(s.Body)

	var total float64
	for _, kw := range sc.boostKeywords {
		kw = strings.ToLower(kw)
		if strings.Contains(heading, kw) || strings.Contains(body, kw) {
			total += sc.boostIncrement
		}
	}
	return total
}

// SortByRelevance orders sections descending by relevance. The sort is
// stable: equal scores keep the scorer's input order (document, then
// in-document position).
func SortByRelevance(sections []section.Section) {
	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].Relevance > sections[j].Relevance
	})
}
