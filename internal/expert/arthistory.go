package expert

import "github.com/studiominds/expertpanel/internal/analysis"

// ArtHistoryProfile defines the historical and cultural reference analyst.
func ArtHistoryProfile() Profile {
	return Profile{
		Name: "Dr. Elena Vasquez",
		Role: "Art History Analyst",
		Triggers: Triggers{
			Keywords:     []string{"historical", "heritage", "classic", "vintage", "retro", "tradition"},
			ProjectTypes: []string{"brand", "design"},
			ContentTypes: []string{"museum", "gallery", "archive"},
		},
		Assessment: "Historical references in this brief need provenance checks before they anchor the visual direction",
		Headline:   "Borrowed visual history works only when the reference is understood, credited, and earned",
		DomainKeywords: []string{
			"historical", "heritage", "art", "classic", "vintage", "tradition", "movement",
		},
		DomainTypes: []string{"brand", "design"},
		ComplexityIndicators: []string{
			"multiple eras", "religious", "indigenous", "international", "archive",
		},
		Baseline: []analysis.Recommendation{
			{
				Priority:       analysis.PriorityMedium,
				Category:       "Visual References",
				Description:    "Document the lineage of every historical style the project borrows from",
				Reasoning:      "Unattributed references invite both shallow execution and appropriation risk",
				Implementation: "Build a reference sheet naming each movement, period, and original context used",
				Impact:         "Design decisions that can be defended and extended coherently",
			},
		},
		Rules: []ContentRule{
			{
				Topic:    "appropriation risk",
				Keywords: []string{"indigenous", "tribal", "religious", "sacred", "ethnic"},
				Insight:  "The brief touches traditions where borrowing without consultation causes real harm",
				Recommendation: &analysis.Recommendation{
					Priority:       analysis.PriorityCritical,
					Category:       "Cultural Adaptation",
					Description:    "Engage representatives of the referenced tradition before any visual development",
					Reasoning:      "Appropriation of living cultural or sacred imagery is reputationally and ethically unacceptable",
					Implementation: "Commission a cultural consultation and obtain explicit guidance on acceptable usage",
					Impact:         "Avoids harm to the referenced community and to the brand",
				},
			},
		},
		Uncertainty: []UncertaintyRule{
			{MissingField: "context", Note: "Without business context the appropriate historical register is a guess"},
		},
	}
}
