package model

// BrandRating is the aggregate for one brand.
// AverageScore divides by the brand's own answer count, while each
// CriteriaScores entry divides by the total response count, so a
// combination left unanswered in some responses drags that criterion
// score down. Both denominators are intentional; see GetStatistics docs.
type BrandRating struct {
	AverageScore   float64            `json:"averageScore"`
	CriteriaScores map[string]float64 `json:"criteriaScores"`
}

// Statistics is the aggregate over a questionnaire's submitted responses
type Statistics struct {
	TotalResponses   int                    `json:"totalResponses"`
	BrandRatings     map[string]BrandRating `json:"brandRatings"`
	BrandPreferences map[string]int         `json:"brandPreferences"`
	CriteriaAverages map[string]float64     `json:"criteriaAverages"`
}
