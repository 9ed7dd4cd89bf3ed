package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/darkstate/cms/internal/core/domain"
	"github.com/darkstate/cms/internal/core/ports"
)

type HomepageRepository struct {
	db *sql.DB
}

func NewHomepageRepository(db *sql.DB) ports.HomepageRepository {
	return &HomepageRepository{db: db}
}

func (r *HomepageRepository) GetOrInit(ctx context.Context) (*domain.Homepage, error) {
	// Upsert-with-default: concurrent first reads race on the insert, not on
	// a read-then-write, so only one row can ever exist.
	if _, err := r.db.ExecContext(ctx, `INSERT INTO homepage_content (id) VALUES (1) ON CONFLICT (id) DO NOTHING`); err != nil {
		return nil, err
	}

	query := `
		SELECT brand_name, tagline, main_heading, description, cta_button,
		       social_linkedin, social_twitter, social_email,
		       image_rotation_interval, animation_duration,
		       enable_floating_animations, auto_rotate_images, maintenance_mode,
		       updated_at
		FROM homepage_content WHERE id = 1
	`
	h := &domain.Homepage{}
	err := r.db.QueryRowContext(ctx, query).Scan(
		&h.BrandName, &h.Tagline, &h.MainHeading, &h.Description, &h.CtaButton,
		&h.SocialLinks.Linkedin, &h.SocialLinks.Twitter, &h.SocialLinks.Email,
		&h.DisplaySettings.ImageRotationInterval, &h.DisplaySettings.AnimationDuration,
		&h.DisplaySettings.EnableFloatingAnimations, &h.DisplaySettings.AutoRotateImages,
		&h.DisplaySettings.MaintenanceMode,
		&h.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	images, err := r.ListImages(ctx)
	if err != nil {
		return nil, err
	}
	h.BackgroundImages = images
	return h, nil
}

func (r *HomepageRepository) UpdateContent(ctx context.Context, patch ports.HomepageContentPatch) error {
	query := `
		UPDATE homepage_content SET
			brand_name = COALESCE($1, brand_name),
			tagline = COALESCE($2, tagline),
			main_heading = COALESCE($3, main_heading),
			description = COALESCE($4, description),
			cta_button = COALESCE($5, cta_button),
			updated_at = now()
		WHERE id = 1
	`
	_, err := r.db.ExecContext(ctx, query, patch.BrandName, patch.Tagline, patch.MainHeading, patch.Description, patch.CtaButton)
	return err
}

func (r *HomepageRepository) UpdateSocialLinks(ctx context.Context, patch ports.SocialLinksPatch) error {
	query := `
		UPDATE homepage_content SET
			social_linkedin = COALESCE($1, social_linkedin),
			social_twitter = COALESCE($2, social_twitter),
			social_email = COALESCE($3, social_email),
			updated_at = now()
		WHERE id = 1
	`
	_, err := r.db.ExecContext(ctx, query, patch.Linkedin, patch.Twitter, patch.Email)
	return err
}

func (r *HomepageRepository) UpdateSettings(ctx context.Context, patch ports.DisplaySettingsPatch) error {
	query := `
		UPDATE homepage_content SET
			image_rotation_interval = COALESCE($1, image_rotation_interval),
			animation_duration = COALESCE($2, animation_duration),
			enable_floating_animations = COALESCE($3, enable_floating_animations),
			auto_rotate_images = COALESCE($4, auto_rotate_images),
			maintenance_mode = COALESCE($5, maintenance_mode),
			updated_at = now()
		WHERE id = 1
	`
	_, err := r.db.ExecContext(ctx, query,
		patch.ImageRotationInterval, patch.AnimationDuration,
		patch.EnableFloatingAnimations, patch.AutoRotateImages, patch.MaintenanceMode)
	return err
}

func (r *HomepageRepository) AddImage(ctx context.Context, image *domain.BackgroundImage) error {
	query := `INSERT INTO homepage_images (id, url, alt, active) VALUES ($1, $2, $3, $4) RETURNING created_at`
	return r.db.QueryRowContext(ctx, query, image.ID, image.URL, image.Alt, image.Active).Scan(&image.CreatedAt)
}

func (r *HomepageRepository) UpdateImage(ctx context.Context, id uuid.UUID, patch ports.BackgroundImagePatch) (*domain.BackgroundImage, error) {
	query := `
		UPDATE homepage_images SET
			url = COALESCE($2, url),
			alt = COALESCE($3, alt),
			active = COALESCE($4, active)
		WHERE id = $1
		RETURNING id, url, alt, active, created_at
	`
	image := &domain.BackgroundImage{}
	err := r.db.QueryRowContext(ctx, query, id, patch.URL, patch.Alt, patch.Active).
		Scan(&image.ID, &image.URL, &image.Alt, &image.Active, &image.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return image, nil
}

func (r *HomepageRepository) DeleteImage(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM homepage_images WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *HomepageRepository) ListImages(ctx context.Context) ([]domain.BackgroundImage, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, url, alt, active, created_at FROM homepage_images ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	images := []domain.BackgroundImage{}
	for rows.Next() {
		var image domain.BackgroundImage
		if err := rows.Scan(&image.ID, &image.URL, &image.Alt, &image.Active, &image.CreatedAt); err != nil {
			return nil, err
		}
		images = append(images, image)
	}
	return images, rows.Err()
}

// requireAffected maps a zero-row write to ErrNotFound.
func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
