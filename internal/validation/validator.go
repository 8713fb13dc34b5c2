// Package validation checks response payloads against questionnaire
// structure. It is pure: no I/O, no mutation of inputs.
package validation

import (
	"fmt"
	"strings"

	"github.com/ChanitaIvanova/pastry-tasting-platform/internal/model"
)

// Result carries every violation found in one pass, keyed by field,
// so callers can show the full error list at once.
type Result struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors"`
}

// Validate checks payload against the questionnaire for the given target
// status. Structural checks (unknown criterion, unknown brand) always
// apply; rating range and preferred-brand checks apply only when the
// target status is submitted, since a draft may be arbitrarily
// incomplete.
func Validate(q *model.Questionnaire, payload model.ResponsePayload, target model.ResponseStatus) Result {
	errs := make(map[string]string)

	if len(payload.Answers) == 0 {
		errs["answers"] = "at least one answer is required"
	}

	var unknownCriteria []string
	var unknownBrands []string
	var badRatings []string
	seenCriteria := make(map[string]bool)
	seenBrands := make(map[string]bool)

	for _, a := range payload.Answers {
		if !q.HasCriterion(a.Criterion) && !seenCriteria[a.Criterion] {
			seenCriteria[a.Criterion] = true
			unknownCriteria = append(unknownCriteria, a.Criterion)
		}
		if !q.HasBrand(a.BrandID) && !seenBrands[a.BrandID] {
			seenBrands[a.BrandID] = true
			unknownBrands = append(unknownBrands, a.BrandID)
		}
		if target == model.ResponseSubmitted && (a.Rating < 1 || a.Rating > 5) {
			badRatings = append(badRatings, fmt.Sprintf("%s/%s", a.BrandID, a.Criterion))
		}
	}

	var answerProblems []string
	if len(unknownCriteria) > 0 {
		answerProblems = append(answerProblems, "unknown criteria: "+strings.Join(unknownCriteria, ", "))
	}
	if len(unknownBrands) > 0 {
		answerProblems = append(answerProblems, "unknown brands: "+strings.Join(unknownBrands, ", "))
	}
	if len(badRatings) > 0 {
		answerProblems = append(answerProblems, "ratings must be between 1 and 5 for: "+strings.Join(badRatings, ", "))
	}
	if len(answerProblems) > 0 {
		if prev, ok := errs["answers"]; ok {
			answerProblems = append([]string{prev}, answerProblems...)
		}
		errs["answers"] = strings.Join(answerProblems, "; ")
	}

	if target == model.ResponseSubmitted {
		switch {
		case payload.Comparative.PreferredBrandID == "":
			errs["preferredBrand"] = "preferred brand is required"
		case !q.HasBrand(payload.Comparative.PreferredBrandID):
			errs["preferredBrand"] = "preferred brand is not part of this questionnaire"
		}
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}
