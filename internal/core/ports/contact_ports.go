package ports

import (
	"context"

	"github.com/darkstate/cms/internal/core/domain"
	"github.com/google/uuid"
)

type ContactInfoInput struct {
	Type    string
	Title   string
	Info    string
	SubInfo string
	Icon    string
	Active  *bool
}

type ContactInfoPatch struct {
	Type    *string
	Title   *string
	Info    *string
	SubInfo *string
	Icon    *string
	Active  *bool
}

type ContactLinkInput struct {
	Platform string
	URL      string
	Active   *bool
}

type ContactLinkPatch struct {
	Platform *string
	URL      *string
	Active   *bool
}

type OfficeDetailsPatch struct {
	Address     *string
	Description *string
	MapURL      *string
}

type ContactRepository interface {
	ListInfo(ctx context.Context, activeOnly bool) ([]domain.ContactInfo, error)
	AddInfo(ctx context.Context, info *domain.ContactInfo) error
	UpdateInfo(ctx context.Context, id uuid.UUID, patch ContactInfoPatch) (*domain.ContactInfo, error)
	SetInfoActive(ctx context.Context, id uuid.UUID, active *bool) (*domain.ContactInfo, error)
	DeleteInfo(ctx context.Context, id uuid.UUID) error

	GetOrInitOffice(ctx context.Context) (*domain.OfficeDetails, error)
	UpdateOffice(ctx context.Context, patch OfficeDetailsPatch) error

	ListLinks(ctx context.Context, activeOnly bool) ([]domain.ContactLink, error)
	AddLink(ctx context.Context, link *domain.ContactLink) error
	UpdateLink(ctx context.Context, id uuid.UUID, patch ContactLinkPatch) (*domain.ContactLink, error)
	SetLinkActive(ctx context.Context, id uuid.UUID, active *bool) (*domain.ContactLink, error)
	DeleteLink(ctx context.Context, id uuid.UUID) error
}

type ContactService interface {
	// Get returns everything for the admin view; GetPublic filters down to
	// active records for the public site.
	Get(ctx context.Context) (*domain.Contact, error)
	GetPublic(ctx context.Context) (*domain.Contact, error)

	AddInfo(ctx context.Context, input ContactInfoInput) (*domain.ContactInfo, error)
	UpdateInfo(ctx context.Context, id string, patch ContactInfoPatch) (*domain.ContactInfo, error)
	// ToggleInfo sets the flag when active is provided and flips the
	// stored value when it is nil.
	ToggleInfo(ctx context.Context, id string, active *bool) (*domain.ContactInfo, error)
	DeleteInfo(ctx context.Context, id string) error

	UpdateOffice(ctx context.Context, patch OfficeDetailsPatch) (*domain.OfficeDetails, error)

	AddLink(ctx context.Context, input ContactLinkInput) (*domain.ContactLink, error)
	UpdateLink(ctx context.Context, id string, patch ContactLinkPatch) (*domain.ContactLink, error)
	ToggleLink(ctx context.Context, id string, active *bool) (*domain.ContactLink, error)
	DeleteLink(ctx context.Context, id string) error
}
