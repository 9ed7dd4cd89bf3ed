package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/darkstate/cms/internal/core/domain"
	"github.com/darkstate/cms/internal/core/ports"
)

type aboutService struct {
	repo ports.AboutRepository
}

func NewAboutService(repo ports.AboutRepository) ports.AboutService {
	return &aboutService{repo: repo}
}

func (s *aboutService) Get(ctx context.Context) (*domain.About, error) {
	about, err := s.repo.GetOrInit(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get about page: %w", err)
	}
	return about, nil
}

func (s *aboutService) UpdateHeader(ctx context.Context, patch ports.AboutHeaderPatch) (*domain.AboutHeader, error) {
	if err := s.repo.UpdateHeader(ctx, patch); err != nil {
		return nil, fmt.Errorf("failed to update header: %w", err)
	}
	about, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &about.Header, nil
}

func (s *aboutService) UpdateMission(ctx context.Context, patch ports.AboutMissionPatch) (*domain.AboutMission, error) {
	if err := s.repo.UpdateMission(ctx, patch); err != nil {
		return nil, fmt.Errorf("failed to update mission: %w", err)
	}
	about, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &about.Mission, nil
}

func (s *aboutService) AddFeature(ctx context.Context, feature string) ([]string, error) {
	feature = strings.TrimSpace(feature)
	if feature == "" {
		return nil, domain.NewValidationError("Feature text is required")
	}
	features, err := s.repo.AddFeature(ctx, feature)
	if err != nil {
		return nil, fmt.Errorf("failed to add feature: %w", err)
	}
	return features, nil
}

func (s *aboutService) RemoveFeature(ctx context.Context, index int) ([]string, error) {
	if index < 0 {
		return nil, domain.NewValidationError("Invalid feature index")
	}
	features, err := s.repo.RemoveFeature(ctx, index)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NewValidationError("Invalid feature index")
	}
	return features, err
}

func (s *aboutService) AddCarouselImage(ctx context.Context, input ports.AddCarouselImageInput) (*domain.About, error) {
	if input.URL == "" || input.Title == "" {
		return nil, domain.NewValidationError("URL and title are required")
	}

	active := true
	if input.Active != nil {
		active = *input.Active
	}

	image := &domain.CarouselImage{
		ID:          uuid.New(),
		URL:         input.URL,
		Title:       input.Title,
		Description: input.Description,
		Active:      active,
	}
	if err := s.repo.AddCarouselImage(ctx, image); err != nil {
		return nil, fmt.Errorf("failed to add carousel image: %w", err)
	}
	return s.Get(ctx)
}

func (s *aboutService) SetCarouselImageStatus(ctx context.Context, id string, active bool) (*domain.CarouselImage, error) {
	imageID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	return s.repo.SetCarouselImageStatus(ctx, imageID, active)
}

func (s *aboutService) DeleteCarouselImage(ctx context.Context, id string) error {
	imageID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrNotFound
	}
	return s.repo.DeleteCarouselImage(ctx, imageID)
}

func (s *aboutService) UpdateStat(ctx context.Context, id string, patch ports.AboutStatPatch) (*domain.AboutStat, error) {
	statID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	return s.repo.UpdateStat(ctx, statID, patch)
}
