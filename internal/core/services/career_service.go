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

type careerService struct {
	repo ports.CareerRepository
}

func NewCareerService(repo ports.CareerRepository) ports.CareerService {
	return &careerService{repo: repo}
}

func (s *careerService) GetAll(ctx context.Context) (*domain.Career, error) {
	areas, err := s.repo.ListExpertiseAreas(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list expertise areas: %w", err)
	}
	paths, err := s.repo.ListCareerPaths(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list career paths: %w", err)
	}
	benefits, err := s.repo.ListBenefits(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list benefits: %w", err)
	}
	return &domain.Career{
		ExpertiseAreas: areas,
		CareerPaths:    paths,
		Benefits:       benefits,
	}, nil
}

func (s *careerService) ListExpertiseAreas(ctx context.Context) ([]domain.ExpertiseArea, error) {
	return s.repo.ListExpertiseAreas(ctx)
}

func (s *careerService) GetExpertiseArea(ctx context.Context, id string) (*domain.ExpertiseArea, error) {
	areaID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	return s.repo.GetExpertiseArea(ctx, areaID)
}

func (s *careerService) CreateExpertiseArea(ctx context.Context, input ports.ExpertiseAreaInput) (*domain.ExpertiseArea, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Description) == "" {
		return nil, domain.NewValidationError("Title and description are required")
	}

	area := &domain.ExpertiseArea{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Details:     trimAll(input.Details),
		Color:       defaultString(input.Color, "from-orange-500 to-red-500"),
		Icon:        defaultString(input.Icon, "MapPin"),
	}
	if err := s.repo.CreateExpertiseArea(ctx, area); err != nil {
		return nil, fmt.Errorf("failed to create expertise area: %w", err)
	}
	return area, nil
}

func (s *careerService) UpdateExpertiseArea(ctx context.Context, id string, patch ports.ExpertiseAreaPatch) (*domain.ExpertiseArea, error) {
	areaID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	return s.repo.UpdateExpertiseArea(ctx, areaID, patch)
}

func (s *careerService) DeleteExpertiseArea(ctx context.Context, id string) error {
	areaID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrNotFound
	}
	return s.repo.DeleteExpertiseArea(ctx, areaID)
}

func (s *careerService) ListCareerPaths(ctx context.Context) ([]domain.CareerPath, error) {
	return s.repo.ListCareerPaths(ctx)
}

func (s *careerService) GetCareerPath(ctx context.Context, id string) (*domain.CareerPath, error) {
	pathID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	return s.repo.GetCareerPath(ctx, pathID)
}

func (s *careerService) CreateCareerPath(ctx context.Context, input ports.CareerPathInput) (*domain.CareerPath, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Description) == "" {
		return nil, domain.NewValidationError("Title and description are required")
	}
	if !slices.Contains(domain.CareerPathLevels, input.Level) {
		return nil, domain.NewValidationError("Invalid career path level")
	}
	shape := defaultString(input.Shape, "hexagon")
	if !slices.Contains(domain.CareerPathShapes, shape) {
		return nil, domain.NewValidationError("Invalid career path shape")
	}

	path := &domain.CareerPath{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(input.Title),
		Level:       input.Level,
		Description: strings.TrimSpace(input.Description),
		Skills:      trimAll(input.Skills),
		Growth:      strings.TrimSpace(input.Growth),
		Icon:        defaultString(input.Icon, "BarChart3"),
		Shape:       shape,
	}
	if err := s.repo.CreateCareerPath(ctx, path); err != nil {
		return nil, fmt.Errorf("failed to create career path: %w", err)
	}
	return path, nil
}

func (s *careerService) UpdateCareerPath(ctx context.Context, id string, patch ports.CareerPathPatch) (*domain.CareerPath, error) {
	pathID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	if patch.Level != nil && !slices.Contains(domain.CareerPathLevels, *patch.Level) {
		return nil, domain.NewValidationError("Invalid career path level")
	}
	if patch.Shape != nil && !slices.Contains(domain.CareerPathShapes, *patch.Shape) {
		return nil, domain.NewValidationError("Invalid career path shape")
	}
	return s.repo.UpdateCareerPath(ctx, pathID, patch)
}

func (s *careerService) DeleteCareerPath(ctx context.Context, id string) error {
	pathID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrNotFound
	}
	return s.repo.DeleteCareerPath(ctx, pathID)
}

func (s *careerService) ListBenefits(ctx context.Context) ([]domain.Benefit, error) {
	return s.repo.ListBenefits(ctx)
}

func (s *careerService) GetBenefit(ctx context.Context, id string) (*domain.Benefit, error) {
	benefitID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	return s.repo.GetBenefit(ctx, benefitID)
}

func (s *careerService) CreateBenefit(ctx context.Context, input ports.BenefitInput) (*domain.Benefit, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Description) == "" {
		return nil, domain.NewValidationError("Title and description are required")
	}
	accent := defaultString(input.Accent, "orange")
	if !slices.Contains(domain.BenefitAccents, accent) {
		return nil, domain.NewValidationError("Invalid benefit accent")
	}

	benefit := &domain.Benefit{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Icon:        defaultString(input.Icon, "Award"),
		Accent:      accent,
	}
	if err := s.repo.CreateBenefit(ctx, benefit); err != nil {
		return nil, fmt.Errorf("failed to create benefit: %w", err)
	}
	return benefit, nil
}

func (s *careerService) UpdateBenefit(ctx context.Context, id string, patch ports.BenefitPatch) (*domain.Benefit, error) {
	benefitID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	if patch.Accent != nil && !slices.Contains(domain.BenefitAccents, *patch.Accent) {
		return nil, domain.NewValidationError("Invalid benefit accent")
	}
	return s.repo.UpdateBenefit(ctx, benefitID, patch)
}

func (s *careerService) DeleteBenefit(ctx context.Context, id string) error {
	benefitID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrNotFound
	}
	return s.repo.DeleteBenefit(ctx, benefitID)
}

func defaultString(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return strings.TrimSpace(v)
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if t := strings.TrimSpace(v); t != "" {
			out = append(out, t)
		}
	}
	return out
}
