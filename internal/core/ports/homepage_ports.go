package ports

import (
	"context"

	"github.com/darkstate/cms/internal/core/domain"
	"github.com/google/uuid"
)

// Patch inputs use pointers so only fields present in the request are
// applied; nil fields keep their stored value.

type HomepageContentPatch struct {
	BrandName   *string
	Tagline     *string
	MainHeading *string
	Description *string
	CtaButton   *string
}

type SocialLinksPatch struct {
	Linkedin *string
	Twitter  *string
	Email    *string
}

type DisplaySettingsPatch struct {
	ImageRotationInterval    *int
	AnimationDuration        *int
	EnableFloatingAnimations *bool
	AutoRotateImages         *bool
	MaintenanceMode          *bool
}

type BackgroundImagePatch struct {
	URL    *string
	Alt    *string
	Active *bool
}

type HomepageRepository interface {
	// GetOrInit returns the single homepage record, installing the default
	// one on first access. Installation is an upsert so concurrent first
	// reads cannot create duplicates.
	GetOrInit(ctx context.Context) (*domain.Homepage, error)

	UpdateContent(ctx context.Context, patch HomepageContentPatch) error
	UpdateSocialLinks(ctx context.Context, patch SocialLinksPatch) error
	UpdateSettings(ctx context.Context, patch DisplaySettingsPatch) error

	AddImage(ctx context.Context, image *domain.BackgroundImage) error
	UpdateImage(ctx context.Context, id uuid.UUID, patch BackgroundImagePatch) (*domain.BackgroundImage, error)
	DeleteImage(ctx context.Context, id uuid.UUID) error
	ListImages(ctx context.Context) ([]domain.BackgroundImage, error)
}

type AddBackgroundImageInput struct {
	URL    string
	Alt    string
	Active *bool
}

type HomepageService interface {
	Get(ctx context.Context) (*domain.Homepage, error)
	UpdateContent(ctx context.Context, patch HomepageContentPatch) (*domain.Homepage, error)
	UpdateSocialLinks(ctx context.Context, patch SocialLinksPatch) (*domain.SocialLinks, error)
	UpdateSettings(ctx context.Context, patch DisplaySettingsPatch) (*domain.DisplaySettings, error)
	AddImage(ctx context.Context, input AddBackgroundImageInput) ([]domain.BackgroundImage, error)
	UpdateImage(ctx context.Context, id string, patch BackgroundImagePatch) (*domain.BackgroundImage, error)
	DeleteImage(ctx context.Context, id string) ([]domain.BackgroundImage, error)
}
