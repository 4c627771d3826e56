package service

import (
	"context"

	"github.com/recipefinder/recipefinder-go/internal/model"
)

const recommendationPageSize = 10

// RecommendService produces a personalized recipe feed driven purely by
// stored preferences. Anonymous users get a popularity-sorted page.
type RecommendService struct {
	search *SearchService
}

// NewRecommendService creates a new RecommendService.
func NewRecommendService(search *SearchService) *RecommendService {
	return &RecommendService{search: search}
}

// Recommend returns a page of recommended recipes for the given user.
// userID 0 means anonymous.
func (s *RecommendService) Recommend(ctx context.Context, userID int64) (*model.SearchResponse, error) {
	return s.search.Search(ctx, model.SearchParams{Number: recommendationPageSize}, userID)
}
