package ports

import (
	"context"

	"github.com/darkstate/cms/internal/core/domain"
	"github.com/google/uuid"
)

type CreateServiceInput struct {
	Title       string
	Description string
	Features    []string
	Icon        string
	Active      *bool
	Position    *int
}

type ServicePatch struct {
	Title       *string
	Description *string
	Features    []string
	Icon        *string
	Active      *bool
	Position    *int
}

type ServicesHeaderPatch struct {
	Subtitle    *string
	MainTitle   *string
	Description *string
}

type ServicesCTAPatch struct {
	Title       *string
	Description *string
	ButtonText  *string
}

type ServiceRepository interface {
	List(ctx context.Context) ([]domain.Service, error)
	Create(ctx context.Context, service *domain.Service) error
	Update(ctx context.Context, id uuid.UUID, patch ServicePatch) (*domain.Service, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ToggleActive(ctx context.Context, id uuid.UUID) (*domain.Service, error)
}

// ServicesContentRepository holds the services page header and CTA record.
type ServicesContentRepository interface {
	GetOrInit(ctx context.Context) (*domain.ServicesHeader, *domain.ServicesCTA, error)
	UpdateHeader(ctx context.Context, patch ServicesHeaderPatch) error
	UpdateCTA(ctx context.Context, patch ServicesCTAPatch) error
}

type ServicesService interface {
	GetPage(ctx context.Context) (*domain.ServicesPage, error)
	Create(ctx context.Context, input CreateServiceInput) (*domain.Service, error)
	Update(ctx context.Context, id string, patch ServicePatch) (*domain.Service, error)
	Delete(ctx context.Context, id string) error
	ToggleActive(ctx context.Context, id string) (*domain.Service, error)

	GetHeader(ctx context.Context) (*domain.ServicesHeader, error)
	UpdateHeader(ctx context.Context, patch ServicesHeaderPatch) (*domain.ServicesHeader, error)
	GetCTA(ctx context.Context) (*domain.ServicesCTA, error)
	UpdateCTA(ctx context.Context, patch ServicesCTAPatch) (*domain.ServicesCTA, error)
}
