package ports

import (
	"context"

	"github.com/darkstate/cms/internal/core/domain"
	"github.com/google/uuid"
)

type ImpactContentPatch struct {
	MainHeading         *string
	MainDescription     *string
	OverviewDescription *string
}

type ImpactStatInput struct {
	Icon        string
	Number      string
	Label       string
	Description string
	Color       string
}

type SuccessStoryInput struct {
	Title       string
	Location    string
	Result      string
	Year        string
	Description string
	Metrics     []string
	Image       string
}

type KeyAchievementInput struct {
	Category     string
	Achievements []string
}

type TestimonialInput struct {
	Name     string
	Position string
	Quote    string
	Rating   int
	Image    string
}

type ImpactAreaInput struct {
	Icon        string
	Title       string
	Description string
	Stats       string
}

type ImpactRepository interface {
	GetOrInit(ctx context.Context) (*domain.Impact, error)
	UpdateContent(ctx context.Context, patch ImpactContentPatch) error

	AddStat(ctx context.Context, stat *domain.ImpactStat) error
	DeleteStat(ctx context.Context, id uuid.UUID) error

	AddStory(ctx context.Context, story *domain.SuccessStory) error
	DeleteStory(ctx context.Context, id uuid.UUID) error

	AddAchievement(ctx context.Context, achievement *domain.KeyAchievement) error
	DeleteAchievement(ctx context.Context, id uuid.UUID) error

	AddTestimonial(ctx context.Context, testimonial *domain.Testimonial) error
	DeleteTestimonial(ctx context.Context, id uuid.UUID) error

	AddArea(ctx context.Context, area *domain.ImpactArea) error
	DeleteArea(ctx context.Context, id uuid.UUID) error
}

type ImpactService interface {
	Get(ctx context.Context) (*domain.Impact, error)
	UpdateContent(ctx context.Context, patch ImpactContentPatch) (*domain.Impact, error)

	AddStat(ctx context.Context, input ImpactStatInput) (*domain.Impact, error)
	DeleteStat(ctx context.Context, id string) error
	AddStory(ctx context.Context, input SuccessStoryInput) (*domain.Impact, error)
	DeleteStory(ctx context.Context, id string) error
	AddAchievement(ctx context.Context, input KeyAchievementInput) (*domain.Impact, error)
	DeleteAchievement(ctx context.Context, id string) error
	AddTestimonial(ctx context.Context, input TestimonialInput) (*domain.Impact, error)
	DeleteTestimonial(ctx context.Context, id string) error
	AddArea(ctx context.Context, input ImpactAreaInput) (*domain.Impact, error)
	DeleteArea(ctx context.Context, id string) error
}
