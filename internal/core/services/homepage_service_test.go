package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darkstate/cms/internal/core/domain"
	"github.com/darkstate/cms/internal/core/ports"
)

type fakeHomepageRepo struct {
	homepage domain.Homepage
	images   []domain.BackgroundImage
}

func (r *fakeHomepageRepo) GetOrInit(_ context.Context) (*domain.Homepage, error) {
	h := r.homepage
	h.BackgroundImages = r.images
	return &h, nil
}

func (r *fakeHomepageRepo) UpdateContent(_ context.Context, patch ports.HomepageContentPatch) error {
	if patch.BrandName != nil {
		r.homepage.BrandName = *patch.BrandName
	}
	if patch.Tagline != nil {
		r.homepage.Tagline = *patch.Tagline
	}
	return nil
}

func (r *fakeHomepageRepo) UpdateSocialLinks(_ context.Context, patch ports.SocialLinksPatch) error {
	if patch.Linkedin != nil {
		r.homepage.SocialLinks.Linkedin = *patch.Linkedin
	}
	return nil
}

func (r *fakeHomepageRepo) UpdateSettings(_ context.Context, patch ports.DisplaySettingsPatch) error {
	if patch.ImageRotationInterval != nil {
		r.homepage.DisplaySettings.ImageRotationInterval = *patch.ImageRotationInterval
	}
	if patch.AnimationDuration != nil {
		r.homepage.DisplaySettings.AnimationDuration = *patch.AnimationDuration
	}
	return nil
}

func (r *fakeHomepageRepo) AddImage(_ context.Context, image *domain.BackgroundImage) error {
	r.images = append(r.images, *image)
	return nil
}

func (r *fakeHomepageRepo) UpdateImage(_ context.Context, id uuid.UUID, patch ports.BackgroundImagePatch) (*domain.BackgroundImage, error) {
	for i := range r.images {
		if r.images[i].ID == id {
			if patch.Active != nil {
				r.images[i].Active = *patch.Active
			}
			return &r.images[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeHomepageRepo) DeleteImage(_ context.Context, id uuid.UUID) error {
	for i := range r.images {
		if r.images[i].ID == id {
			r.images = append(r.images[:i], r.images[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeHomepageRepo) ListImages(_ context.Context) ([]domain.BackgroundImage, error) {
	return r.images, nil
}

func intPtr(v int) *int { return &v }

func TestUpdateSettingsRanges(t *testing.T) {
	svc := NewHomepageService(&fakeHomepageRepo{})
	ctx := context.Background()

	var vErr *domain.ValidationError

	_, err := svc.UpdateSettings(ctx, ports.DisplaySettingsPatch{ImageRotationInterval: intPtr(1)})
	assert.ErrorAs(t, err, &vErr)

	_, err = svc.UpdateSettings(ctx, ports.DisplaySettingsPatch{ImageRotationInterval: intPtr(31)})
	assert.ErrorAs(t, err, &vErr)

	_, err = svc.UpdateSettings(ctx, ports.DisplaySettingsPatch{AnimationDuration: intPtr(0)})
	assert.ErrorAs(t, err, &vErr)

	settings, err := svc.UpdateSettings(ctx, ports.DisplaySettingsPatch{
		ImageRotationInterval: intPtr(5),
		AnimationDuration:     intPtr(3),
	})
	require.NoError(t, err)
	assert.Equal(t, 5, settings.ImageRotationInterval)
	assert.Equal(t, 3, settings.AnimationDuration)
}

func TestAddImageRequiresURLAndAlt(t *testing.T) {
	svc := NewHomepageService(&fakeHomepageRepo{})
	ctx := context.Background()

	var vErr *domain.ValidationError
	_, err := svc.AddImage(ctx, ports.AddBackgroundImageInput{URL: "", Alt: "hero"})
	assert.ErrorAs(t, err, &vErr)

	images, err := svc.AddImage(ctx, ports.AddBackgroundImageInput{URL: "https://example.com/a.jpg", Alt: "hero"})
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.True(t, images[0].Active, "images default to active")
	assert.NotEqual(t, uuid.Nil, images[0].ID)
}

func TestUpdateImageBadID(t *testing.T) {
	svc := NewHomepageService(&fakeHomepageRepo{})

	// A malformed id is reported as a missing record, not an internal error.
	_, err := svc.UpdateImage(context.Background(), "not-a-uuid", ports.BackgroundImagePatch{})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.DeleteImage(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPartialContentUpdate(t *testing.T) {
	repo := &fakeHomepageRepo{homepage: domain.Homepage{BrandName: "DARK STATE", Tagline: "original"}}
	svc := NewHomepageService(repo)

	tagline := "updated tagline"
	homepage, err := svc.UpdateContent(context.Background(), ports.HomepageContentPatch{Tagline: &tagline})
	require.NoError(t, err)
	assert.Equal(t, "DARK STATE", homepage.BrandName, "absent fields keep their value")
	assert.Equal(t, "updated tagline", homepage.Tagline)
}
