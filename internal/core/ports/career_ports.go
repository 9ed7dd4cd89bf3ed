package ports

import (
	"context"

	"github.com/darkstate/cms/internal/core/domain"
	"github.com/google/uuid"
)

type ExpertiseAreaInput struct {
	Title       string
	Description string
	Details     []string
	Color       string
	Icon        string
}

type ExpertiseAreaPatch struct {
	Title       *string
	Description *string
	Details     []string
	Color       *string
	Icon        *string
}

type CareerPathInput struct {
	Title       string
	Level       string
	Description string
	Skills      []string
	Growth      string
	Icon        string
	Shape       string
}

type CareerPathPatch struct {
	Title       *string
	Level       *string
	Description *string
	Skills      []string
	Growth      *string
	Icon        *string
	Shape       *string
}

type BenefitInput struct {
	Title       string
	Description string
	Icon        string
	Accent      string
}

type BenefitPatch struct {
	Title       *string
	Description *string
	Icon        *string
	Accent      *string
}

type CareerRepository interface {
	ListExpertiseAreas(ctx context.Context) ([]domain.ExpertiseArea, error)
	GetExpertiseArea(ctx context.Context, id uuid.UUID) (*domain.ExpertiseArea, error)
	CreateExpertiseArea(ctx context.Context, area *domain.ExpertiseArea) error
	UpdateExpertiseArea(ctx context.Context, id uuid.UUID, patch ExpertiseAreaPatch) (*domain.ExpertiseArea, error)
	DeleteExpertiseArea(ctx context.Context, id uuid.UUID) error

	ListCareerPaths(ctx context.Context) ([]domain.CareerPath, error)
	GetCareerPath(ctx context.Context, id uuid.UUID) (*domain.CareerPath, error)
	CreateCareerPath(ctx context.Context, path *domain.CareerPath) error
	UpdateCareerPath(ctx context.Context, id uuid.UUID, patch CareerPathPatch) (*domain.CareerPath, error)
	DeleteCareerPath(ctx context.Context, id uuid.UUID) error

	ListBenefits(ctx context.Context) ([]domain.Benefit, error)
	GetBenefit(ctx context.Context, id uuid.UUID) (*domain.Benefit, error)
	CreateBenefit(ctx context.Context, benefit *domain.Benefit) error
	UpdateBenefit(ctx context.Context, id uuid.UUID, patch BenefitPatch) (*domain.Benefit, error)
	DeleteBenefit(ctx context.Context, id uuid.UUID) error
}

type CareerService interface {
	GetAll(ctx context.Context) (*domain.Career, error)

	ListExpertiseAreas(ctx context.Context) ([]domain.ExpertiseArea, error)
	GetExpertiseArea(ctx context.Context, id string) (*domain.ExpertiseArea, error)
	CreateExpertiseArea(ctx context.Context, input ExpertiseAreaInput) (*domain.ExpertiseArea, error)
	UpdateExpertiseArea(ctx context.Context, id string, patch ExpertiseAreaPatch) (*domain.ExpertiseArea, error)
	DeleteExpertiseArea(ctx context.Context, id string) error

	ListCareerPaths(ctx context.Context) ([]domain.CareerPath, error)
	GetCareerPath(ctx context.Context, id string) (*domain.CareerPath, error)
	CreateCareerPath(ctx context.Context, input CareerPathInput) (*domain.CareerPath, error)
	UpdateCareerPath(ctx context.Context, id string, patch CareerPathPatch) (*domain.CareerPath, error)
	DeleteCareerPath(ctx context.Context, id string) error

	ListBenefits(ctx context.Context) ([]domain.Benefit, error)
	GetBenefit(ctx context.Context, id string) (*domain.Benefit, error)
	CreateBenefit(ctx context.Context, input BenefitInput) (*domain.Benefit, error)
	UpdateBenefit(ctx context.Context, id string, patch BenefitPatch) (*domain.Benefit, error)
	DeleteBenefit(ctx context.Context, id string) error
}
