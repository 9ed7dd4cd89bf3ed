package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/darkstate/cms/internal/core/domain"
	"github.com/darkstate/cms/internal/core/ports"
)

type homepageService struct {
	repo ports.HomepageRepository
}

func NewHomepageService(repo ports.HomepageRepository) ports.HomepageService {
	return &homepageService{repo: repo}
}

func (s *homepageService) Get(ctx context.Context) (*domain.Homepage, error) {
	homepage, err := s.repo.GetOrInit(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get homepage: %w", err)
	}
	return homepage, nil
}

func (s *homepageService) UpdateContent(ctx context.Context, patch ports.HomepageContentPatch) (*domain.Homepage, error) {
	if err := s.repo.UpdateContent(ctx, patch); err != nil {
		return nil, fmt.Errorf("failed to update homepage content: %w", err)
	}
	return s.Get(ctx)
}

func (s *homepageService) UpdateSocialLinks(ctx context.Context, patch ports.SocialLinksPatch) (*domain.SocialLinks, error) {
	if err := s.repo.UpdateSocialLinks(ctx, patch); err != nil {
		return nil, fmt.Errorf("failed to update social links: %w", err)
	}
	homepage, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &homepage.SocialLinks, nil
}

func (s *homepageService) UpdateSettings(ctx context.Context, patch ports.DisplaySettingsPatch) (*domain.DisplaySettings, error) {
	if v := patch.ImageRotationInterval; v != nil && (*v < 2 || *v > 30) {
		return nil, domain.NewValidationError("Image rotation interval must be between 2 and 30 seconds")
	}
	if v := patch.AnimationDuration; v != nil && (*v < 1 || *v > 10) {
		return nil, domain.NewValidationError("Animation duration must be between 1 and 10 seconds")
	}

	if err := s.repo.UpdateSettings(ctx, patch); err != nil {
		return nil, fmt.Errorf("failed to update display settings: %w", err)
	}
	homepage, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &homepage.DisplaySettings, nil
}

func (s *homepageService) AddImage(ctx context.Context, input ports.AddBackgroundImageInput) ([]domain.BackgroundImage, error) {
	if input.URL == "" || input.Alt == "" {
		return nil, domain.NewValidationError("URL and alt text are required")
	}

	active := true
	if input.Active != nil {
		active = *input.Active
	}

	image := &domain.BackgroundImage{
		ID:     uuid.New(),
		URL:    input.URL,
		Alt:    input.Alt,
		Active: active,
	}
	if err := s.repo.AddImage(ctx, image); err != nil {
		return nil, fmt.Errorf("failed to add background image: %w", err)
	}

	return s.repo.ListImages(ctx)
}

func (s *homepageService) UpdateImage(ctx context.Context, id string, patch ports.BackgroundImagePatch) (*domain.BackgroundImage, error) {
	imageID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	image, err := s.repo.UpdateImage(ctx, imageID, patch)
	if err != nil {
		return nil, err
	}
	return image, nil
}

func (s *homepageService) DeleteImage(ctx context.Context, id string) ([]domain.BackgroundImage, error) {
	imageID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	if err := s.repo.DeleteImage(ctx, imageID); err != nil {
		return nil, err
	}
	return s.repo.ListImages(ctx)
}
