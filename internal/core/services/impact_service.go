package services

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/darkstate/cms/internal/core/domain"
	"github.com/darkstate/cms/internal/core/ports"
)

type impactService struct {
	repo ports.ImpactRepository
}

func NewImpactService(repo ports.ImpactRepository) ports.ImpactService {
	return &impactService{repo: repo}
}

func (s *impactService) Get(ctx context.Context) (*domain.Impact, error) {
	impact, err := s.repo.GetOrInit(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get impact page: %w", err)
	}
	return impact, nil
}

func (s *impactService) UpdateContent(ctx context.Context, patch ports.ImpactContentPatch) (*domain.Impact, error) {
	if err := s.repo.UpdateContent(ctx, patch); err != nil {
		return nil, fmt.Errorf("failed to update impact content: %w", err)
	}
	return s.Get(ctx)
}

func (s *impactService) AddStat(ctx context.Context, input ports.ImpactStatInput) (*domain.Impact, error) {
	if input.Number == "" || input.Label == "" || input.Description == "" {
		return nil, domain.NewValidationError("Number, label and description are required")
	}
	if !slices.Contains(domain.ImpactStatIcons, input.Icon) {
		return nil, domain.NewValidationError("Invalid stat icon")
	}

	stat := &domain.ImpactStat{
		ID:          uuid.New(),
		Icon:        input.Icon,
		Number:      input.Number,
		Label:       input.Label,
		Description: input.Description,
		Color:       defaultString(input.Color, "from-yellow-500 to-orange-500"),
	}
	if err := s.repo.AddStat(ctx, stat); err != nil {
		return nil, fmt.Errorf("failed to add impact stat: %w", err)
	}
	return s.Get(ctx)
}

func (s *impactService) DeleteStat(ctx context.Context, id string) error {
	statID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrNotFound
	}
	return s.repo.DeleteStat(ctx, statID)
}

func (s *impactService) AddStory(ctx context.Context, input ports.SuccessStoryInput) (*domain.Impact, error) {
	if input.Title == "" || input.Location == "" || input.Result == "" || input.Year == "" || input.Description == "" {
		return nil, domain.NewValidationError("Title, location, result, year and description are required")
	}

	story := &domain.SuccessStory{
		ID:          uuid.New(),
		Title:       input.Title,
		Location:    input.Location,
		Result:      input.Result,
		Year:        input.Year,
		Description: input.Description,
		Metrics:     trimAll(input.Metrics),
		Image:       input.Image,
	}
	if err := s.repo.AddStory(ctx, story); err != nil {
		return nil, fmt.Errorf("failed to add success story: %w", err)
	}
	return s.Get(ctx)
}

func (s *impactService) DeleteStory(ctx context.Context, id string) error {
	storyID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrNotFound
	}
	return s.repo.DeleteStory(ctx, storyID)
}

func (s *impactService) AddAchievement(ctx context.Context, input ports.KeyAchievementInput) (*domain.Impact, error) {
	if strings.TrimSpace(input.Category) == "" || len(trimAll(input.Achievements)) == 0 {
		return nil, domain.NewValidationError("Category and at least one achievement are required")
	}

	achievement := &domain.KeyAchievement{
		ID:           uuid.New(),
		Category:     strings.TrimSpace(input.Category),
		Achievements: trimAll(input.Achievements),
	}
	if err := s.repo.AddAchievement(ctx, achievement); err != nil {
		return nil, fmt.Errorf("failed to add key achievement: %w", err)
	}
	return s.Get(ctx)
}

func (s *impactService) DeleteAchievement(ctx context.Context, id string) error {
	achievementID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrNotFound
	}
	return s.repo.DeleteAchievement(ctx, achievementID)
}

func (s *impactService) AddTestimonial(ctx context.Context, input ports.TestimonialInput) (*domain.Impact, error) {
	if input.Name == "" || input.Position == "" || input.Quote == "" {
		return nil, domain.NewValidationError("Name, position and quote are required")
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domain.NewValidationError("Rating must be between 1 and 5")
	}

	testimonial := &domain.Testimonial{
		ID:       uuid.New(),
		Name:     input.Name,
		Position: input.Position,
		Quote:    input.Quote,
		Rating:   input.Rating,
		Image:    input.Image,
	}
	if err := s.repo.AddTestimonial(ctx, testimonial); err != nil {
		return nil, fmt.Errorf("failed to add testimonial: %w", err)
	}
	return s.Get(ctx)
}

func (s *impactService) DeleteTestimonial(ctx context.Context, id string) error {
	testimonialID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrNotFound
	}
	return s.repo.DeleteTestimonial(ctx, testimonialID)
}

func (s *impactService) AddArea(ctx context.Context, input ports.ImpactAreaInput) (*domain.Impact, error) {
	if input.Title == "" || input.Description == "" || input.Stats == "" {
		return nil, domain.NewValidationError("Title, description and stats are required")
	}
	if !slices.Contains(domain.ImpactAreaIcons, input.Icon) {
		return nil, domain.NewValidationError("Invalid impact area icon")
	}

	area := &domain.ImpactArea{
		ID:          uuid.New(),
		Icon:        input.Icon,
		Title:       input.Title,
		Description: input.Description,
		Stats:       input.Stats,
	}
	if err := s.repo.AddArea(ctx, area); err != nil {
		return nil, fmt.Errorf("failed to add impact area: %w", err)
	}
	return s.Get(ctx)
}

func (s *impactService) DeleteArea(ctx context.Context, id string) error {
	areaID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrNotFound
	}
	return s.repo.DeleteArea(ctx, areaID)
}
