package service

import (
	"context"
	"fmt"
	"log"
	"math"

	"github.com/ChanitaIvanova/pastry-tasting-platform/internal/cache"
	"github.com/ChanitaIvanova/pastry-tasting-platform/internal/model"
	"github.com/ChanitaIvanova/pastry-tasting-platform/internal/repository"
)

// Aggregate computes comparison statistics over a questionnaire's
// submitted responses. Pure function over already-loaded data. Answers
// and preferences referencing brands or criteria no longer declared by
// the questionnaire are skipped; a nil questionnaire skips nothing.
//
// Denominators differ on purpose and mirror long-standing behavior:
// a brand's criteriaScores divide by the total response count (an
// unanswered combination contributes 0 to that pair, keeping scores
// comparable across brands), while its averageScore divides by the
// brand's own answer count. Changing either would silently shift all
// historical statistics.
func Aggregate(q *model.Questionnaire, responses []*model.Response) model.Statistics {
	stats := model.Statistics{
		TotalResponses:   len(responses),
		BrandRatings:     make(map[string]model.BrandRating),
		BrandPreferences: make(map[string]int),
		CriteriaAverages: make(map[string]float64),
	}

	type brandAccum struct {
		total          int
		count          int
		criteriaTotals map[string]int
	}
	brandAccums := make(map[string]*brandAccum)

	type criterionAccum struct {
		sum   int
		count int
	}
	criterionAccums := make(map[string]*criterionAccum)

	for _, resp := range responses {
		for _, a := range resp.Answers {
			if q != nil && (!q.HasBrand(a.BrandID) || !q.HasCriterion(a.Criterion)) {
				continue
			}
			acc := brandAccums[a.BrandID]
			if acc == nil {
				acc = &brandAccum{criteriaTotals: make(map[string]int)}
				brandAccums[a.BrandID] = acc
			}
			acc.total += a.Rating
			acc.count++
			acc.criteriaTotals[a.Criterion] += a.Rating

			ca := criterionAccums[a.Criterion]
			if ca == nil {
				ca = &criterionAccum{}
				criterionAccums[a.Criterion] = ca
			}
			ca.sum += a.Rating
			ca.count++
		}

		// Brands nobody prefers are simply absent from the map.
		if preferred := resp.Comparative.PreferredBrandID; preferred != "" {
			if q == nil || q.HasBrand(preferred) {
				stats.BrandPreferences[preferred]++
			}
		}
	}

	for brandID, acc := range brandAccums {
		rating := model.BrandRating{
			CriteriaScores: make(map[string]float64, len(acc.criteriaTotals)),
		}
		if acc.count > 0 {
			rating.AverageScore = round2(float64(acc.total) / float64(acc.count))
		}
		for criterion, sum := range acc.criteriaTotals {
			rating.CriteriaScores[criterion] = round2(float64(sum) / float64(stats.TotalResponses))
		}
		stats.BrandRatings[brandID] = rating
	}

	for criterion, acc := range criterionAccums {
		if acc.count > 0 {
			stats.CriteriaAverages[criterion] = round2(float64(acc.sum) / float64(acc.count))
		}
	}

	return stats
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// StatisticsService serves aggregate statistics for questionnaires,
// caching results in Redis between response saves.
type StatisticsService struct {
	responseRepo      repository.ResponseRepo
	questionnaireRepo repository.QuestionnaireRepo
	statsCache        cache.StatisticsCache
	activitySvc       *ActivityService
}

// NewStatisticsService creates a new statistics service
func NewStatisticsService(
	responseRepo repository.ResponseRepo,
	questionnaireRepo repository.QuestionnaireRepo,
	statsCache cache.StatisticsCache,
	activitySvc *ActivityService,
) *StatisticsService {
	return &StatisticsService{
		responseRepo:      responseRepo,
		questionnaireRepo: questionnaireRepo,
		statsCache:        statsCache,
		activitySvc:       activitySvc,
	}
}

// GetStatistics aggregates the submitted responses of a questionnaire.
// Zero submitted responses is not an error; the zero-value Statistics
// is a valid result. The response set is a snapshot read, eventually
// consistent with in-flight saves.
func (s *StatisticsService) GetStatistics(ctx context.Context, questionnaireID, viewerID string) (*model.Statistics, error) {
	questionnaire, err := s.questionnaireRepo.GetByID(ctx, questionnaireID)
	if err != nil {
		return nil, fmt.Errorf("load questionnaire: %w", err)
	}
	if questionnaire == nil {
		return nil, ErrQuestionnaireNotFound
	}

	if cached, err := s.statsCache.Get(ctx, questionnaireID); err != nil {
		log.Printf("statistics cache read for %s: %v", questionnaireID, err)
	} else if cached != nil {
		return cached, nil
	}

	responses, err := s.responseRepo.GetSubmitted(ctx, questionnaireID)
	if err != nil {
		return nil, fmt.Errorf("load submitted responses: %w", err)
	}

	stats := Aggregate(questionnaire, responses)

	if err := s.statsCache.Set(ctx, questionnaireID, &stats); err != nil {
		log.Printf("statistics cache write for %s: %v", questionnaireID, err)
	}

	if s.activitySvc != nil {
		s.activitySvc.Log(ctx, viewerID, model.ActionViewStatistics, model.EntityQuestionnaire, questionnaireID, nil)
	}

	return &stats, nil
}
