package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/darkstate/cms/internal/core/domain"
	"github.com/darkstate/cms/internal/core/ports"
)

type servicesService struct {
	repo        ports.ServiceRepository
	contentRepo ports.ServicesContentRepository
}

func NewServicesService(repo ports.ServiceRepository, contentRepo ports.ServicesContentRepository) ports.ServicesService {
	return &servicesService{repo: repo, contentRepo: contentRepo}
}

func (s *servicesService) GetPage(ctx context.Context) (*domain.ServicesPage, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	header, cta, err := s.contentRepo.GetOrInit(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get services page content: %w", err)
	}

	return &domain.ServicesPage{
		Services:      list,
		HeaderContent: *header,
		CtaSection:    *cta,
	}, nil
}

func (s *servicesService) Create(ctx context.Context, input ports.CreateServiceInput) (*domain.Service, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Description) == "" {
		return nil, domain.NewValidationError("Title and description are required")
	}

	icon := input.Icon
	if icon == "" {
		icon = "Users"
	}
	active := true
	if input.Active != nil {
		active = *input.Active
	}
	position := 0
	if input.Position != nil {
		position = *input.Position
	}

	service := &domain.Service{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Features:    input.Features,
		Icon:        icon,
		Active:      active,
		Position:    position,
	}
	if err := s.repo.Create(ctx, service); err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return service, nil
}

func (s *servicesService) Update(ctx context.Context, id string, patch ports.ServicePatch) (*domain.Service, error) {
	serviceID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	return s.repo.Update(ctx, serviceID, patch)
}

func (s *servicesService) Delete(ctx context.Context, id string) error {
	serviceID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrNotFound
	}
	return s.repo.Delete(ctx, serviceID)
}

func (s *servicesService) ToggleActive(ctx context.Context, id string) (*domain.Service, error) {
	serviceID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	return s.repo.ToggleActive(ctx, serviceID)
}

func (s *servicesService) GetHeader(ctx context.Context) (*domain.ServicesHeader, error) {
	header, _, err := s.contentRepo.GetOrInit(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get services header: %w", err)
	}
	return header, nil
}

func (s *servicesService) UpdateHeader(ctx context.Context, patch ports.ServicesHeaderPatch) (*domain.ServicesHeader, error) {
	if err := s.contentRepo.UpdateHeader(ctx, patch); err != nil {
		return nil, fmt.Errorf("failed to update services header: %w", err)
	}
	return s.GetHeader(ctx)
}

func (s *servicesService) GetCTA(ctx context.Context) (*domain.ServicesCTA, error) {
	_, cta, err := s.contentRepo.GetOrInit(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get services CTA: %w", err)
	}
	return cta, nil
}

func (s *servicesService) UpdateCTA(ctx context.Context, patch ports.ServicesCTAPatch) (*domain.ServicesCTA, error) {
	if err := s.contentRepo.UpdateCTA(ctx, patch); err != nil {
		return nil, fmt.Errorf("failed to update services CTA: %w", err)
	}
	return s.GetCTA(ctx)
}
