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

type contactService struct {
	repo ports.ContactRepository
}

func NewContactService(repo ports.ContactRepository) ports.ContactService {
	return &contactService{repo: repo}
}

func (s *contactService) Get(ctx context.Context) (*domain.Contact, error) {
	return s.get(ctx, false)
}

func (s *contactService) GetPublic(ctx context.Context) (*domain.Contact, error) {
	return s.get(ctx, true)
}

func (s *contactService) get(ctx context.Context, activeOnly bool) (*domain.Contact, error) {
	info, err := s.repo.ListInfo(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact info: %w", err)
	}
	office, err := s.repo.GetOrInitOffice(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get office details: %w", err)
	}
	links, err := s.repo.ListLinks(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list social links: %w", err)
	}
	return &domain.Contact{
		ContactInfo:   info,
		OfficeDetails: *office,
		SocialLinks:   links,
	}, nil
}

func (s *contactService) AddInfo(ctx context.Context, input ports.ContactInfoInput) (*domain.ContactInfo, error) {
	if !slices.Contains(domain.ContactInfoTypes, input.Type) {
		return nil, domain.NewValidationError("Invalid contact info type")
	}
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Info) == "" {
		return nil, domain.NewValidationError("Title and info are required")
	}
	icon := defaultString(input.Icon, "Mail")
	if !slices.Contains(domain.ContactInfoIcons, icon) {
		return nil, domain.NewValidationError("Invalid contact info icon")
	}

	active := true
	if input.Active != nil {
		active = *input.Active
	}

	info := &domain.ContactInfo{
		ID:      uuid.New(),
		Type:    input.Type,
		Title:   strings.TrimSpace(input.Title),
		Info:    strings.TrimSpace(input.Info),
		SubInfo: strings.TrimSpace(input.SubInfo),
		Icon:    icon,
		Active:  active,
	}
	if err := s.repo.AddInfo(ctx, info); err != nil {
		return nil, fmt.Errorf("failed to add contact info: %w", err)
	}
	return info, nil
}

func (s *contactService) UpdateInfo(ctx context.Context, id string, patch ports.ContactInfoPatch) (*domain.ContactInfo, error) {
	infoID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	if patch.Type != nil && !slices.Contains(domain.ContactInfoTypes, *patch.Type) {
		return nil, domain.NewValidationError("Invalid contact info type")
	}
	if patch.Icon != nil && !slices.Contains(domain.ContactInfoIcons, *patch.Icon) {
		return nil, domain.NewValidationError("Invalid contact info icon")
	}
	return s.repo.UpdateInfo(ctx, infoID, patch)
}

func (s *contactService) ToggleInfo(ctx context.Context, id string, active *bool) (*domain.ContactInfo, error) {
	infoID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	return s.repo.SetInfoActive(ctx, infoID, active)
}

func (s *contactService) DeleteInfo(ctx context.Context, id string) error {
	infoID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrNotFound
	}
	return s.repo.DeleteInfo(ctx, infoID)
}

func (s *contactService) UpdateOffice(ctx context.Context, patch ports.OfficeDetailsPatch) (*domain.OfficeDetails, error) {
	if err := s.repo.UpdateOffice(ctx, patch); err != nil {
		return nil, fmt.Errorf("failed to update office details: %w", err)
	}
	return s.repo.GetOrInitOffice(ctx)
}

func (s *contactService) AddLink(ctx context.Context, input ports.ContactLinkInput) (*domain.ContactLink, error) {
	if strings.TrimSpace(input.Platform) == "" || strings.TrimSpace(input.URL) == "" {
		return nil, domain.NewValidationError("Platform and URL are required")
	}

	active := true
	if input.Active != nil {
		active = *input.Active
	}

	link := &domain.ContactLink{
		ID:       uuid.New(),
		Platform: strings.TrimSpace(input.Platform),
		URL:      strings.TrimSpace(input.URL),
		Active:   active,
	}
	if err := s.repo.AddLink(ctx, link); err != nil {
		return nil, fmt.Errorf("failed to add social link: %w", err)
	}
	return link, nil
}

func (s *contactService) UpdateLink(ctx context.Context, id string, patch ports.ContactLinkPatch) (*domain.ContactLink, error) {
	linkID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	return s.repo.UpdateLink(ctx, linkID, patch)
}

func (s *contactService) ToggleLink(ctx context.Context, id string, active *bool) (*domain.ContactLink, error) {
	linkID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	return s.repo.SetLinkActive(ctx, linkID, active)
}

func (s *contactService) DeleteLink(ctx context.Context, id string) error {
	linkID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrNotFound
	}
	return s.repo.DeleteLink(ctx, linkID)
}
