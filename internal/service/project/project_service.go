package project

import (
	"context"

	"user-directory/internal/http/api"
	"user-directory/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=ProjectCreator
type ProjectCreator interface {
	Create(ctx context.Context, name string) (int, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=ProjectSummaryProvider
type ProjectSummaryProvider interface {
	GetSummary(ctx context.Context, name string) (*models.ProjectSummary, error)
}

type ProjectService struct {
	creator         ProjectCreator
	summaryProvider ProjectSummaryProvider
}

func NewProjectService(creator ProjectCreator, summaryProvider ProjectSummaryProvider) *ProjectService {
	return &ProjectService{
		creator:         creator,
		summaryProvider: summaryProvider,
	}
}

func (s *ProjectService) Add(ctx context.Context, name string) (*api.ProjectSchema, error) {
	if _, err := s.creator.Create(ctx, name); err != nil {
		return nil, err
	}

	return &api.ProjectSchema{Name: name}, nil
}

func (s *ProjectService) Get(ctx context.Context, name string) (*api.ProjectSchema, error) {
	summary, err := s.summaryProvider.GetSummary(ctx, name)
	if err != nil {
		return nil, err
	}

	return &api.ProjectSchema{
		Name:      summary.Name,
		UserCount: summary.UserCount,
	}, nil
}
