package ports

import (
	"context"

	"github.com/darkstate/cms/internal/core/domain"
	"github.com/google/uuid"
)

type AboutHeaderPatch struct {
	Subtitle    *string
	Title       *string
	Description *string
}

type AboutMissionPatch struct {
	Title           *string
	Content         *string
	SubsectionTitle *string
}

type AboutStatPatch struct {
	Number *string
	Label  *string
}

type AboutRepository interface {
	GetOrInit(ctx context.Context) (*domain.About, error)

	UpdateHeader(ctx context.Context, patch AboutHeaderPatch) error
	UpdateMission(ctx context.Context, patch AboutMissionPatch) error

	AddFeature(ctx context.Context, feature string) ([]string, error)
	RemoveFeature(ctx context.Context, index int) ([]string, error)

	AddCarouselImage(ctx context.Context, image *domain.CarouselImage) error
	SetCarouselImageStatus(ctx context.Context, id uuid.UUID, active bool) (*domain.CarouselImage, error)
	DeleteCarouselImage(ctx context.Context, id uuid.UUID) error

	UpdateStat(ctx context.Context, id uuid.UUID, patch AboutStatPatch) (*domain.AboutStat, error)
}

type AddCarouselImageInput struct {
	URL         string
	Title       string
	Description string
	Active      *bool
}

type AboutService interface {
	Get(ctx context.Context) (*domain.About, error)
	UpdateHeader(ctx context.Context, patch AboutHeaderPatch) (*domain.AboutHeader, error)
	UpdateMission(ctx context.Context, patch AboutMissionPatch) (*domain.AboutMission, error)
	AddFeature(ctx context.Context, feature string) ([]string, error)
	RemoveFeature(ctx context.Context, index int) ([]string, error)
	AddCarouselImage(ctx context.Context, input AddCarouselImageInput) (*domain.About, error)
	SetCarouselImageStatus(ctx context.Context, id string, active bool) (*domain.CarouselImage, error)
	DeleteCarouselImage(ctx context.Context, id string) error
	UpdateStat(ctx context.Context, id string, patch AboutStatPatch) (*domain.AboutStat, error)
}
