package application

import (
	"context"

	"github.com/sirupsen/logrus"

	repo "github.com/rizkyamd/todo-graph-api/internal/domain/repository"
)

// RecommendationService reads suggestions straight from the graph mirror.
// It never waits for in-flight propagations, so a just-created todo may not
// be reflected yet.
type RecommendationService struct {
	Mirror repo.GraphMirror
	Logger *logrus.Logger
}

func NewRecommendationService(mirror repo.GraphMirror, logger *logrus.Logger) *RecommendationService {
	return &RecommendationService{Mirror: mirror, Logger: logger}
}

// Recommend returns up to 5 todo titles from other users sharing a category
// with userID. No qualifying todos is an empty result, not an error.
func (s *RecommendationService) Recommend(ctx context.Context, userID int64) ([]repo.Recommendation, error) {
	recs, err := s.Mirror.Recommendations(ctx, userID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", userID).Error("recommendation query failed")
		}
		return nil, err
	}
	if recs == nil {
		recs = []repo.Recommendation{}
	}
	return recs, nil
}
