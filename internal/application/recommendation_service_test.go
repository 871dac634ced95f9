package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	repo "github.com/rizkyamd/todo-graph-api/internal/domain/repository"
)

func TestRecommendationService_EmptyIsNotAnError(t *testing.T) {
	svc := NewRecommendationService(&fakeMirror{}, nil)

	recs, err := svc.Recommend(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, recs)
	assert.Empty(t, recs)
}

func TestRecommendationService_PassesThroughResults(t *testing.T) {
	mirror := &fakeMirror{recs: []repo.Recommendation{
		{Title: "Ship release", Category: "Work"},
	}}
	svc := NewRecommendationService(mirror, nil)

	recs, err := svc.Recommend(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Ship release", recs[0].Title)
	assert.Equal(t, "Work", recs[0].Category)
}

func TestRecommendationService_MirrorErrorSurfaces(t *testing.T) {
	mirror := &fakeMirror{err: errors.New("bolt unavailable")}
	svc := NewRecommendationService(mirror, nil)

	_, err := svc.Recommend(context.Background(), 1)
	assert.Error(t, err)
}
