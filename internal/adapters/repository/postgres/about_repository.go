package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/darkstate/cms/internal/core/domain"
	"github.com/darkstate/cms/internal/core/ports"
)

type AboutRepository struct {
	db *sql.DB
}

func NewAboutRepository(db *sql.DB) ports.AboutRepository {
	return &AboutRepository{db: db}
}

func (r *AboutRepository) GetOrInit(ctx context.Context) (*domain.About, error) {
	if _, err := r.db.ExecContext(ctx, `INSERT INTO about_content (id) VALUES (1) ON CONFLICT (id) DO NOTHING`); err != nil {
		return nil, err
	}

	query := `
		SELECT header_subtitle, header_title, header_description,
		       mission_title, mission_content, mission_subsection_title,
		       features, updated_at
		FROM about_content WHERE id = 1
	`
	about := &domain.About{}
	err := r.db.QueryRowContext(ctx, query).Scan(
		&about.Header.Subtitle, &about.Header.Title, &about.Header.Description,
		&about.Mission.Title, &about.Mission.Content, &about.Mission.SubsectionTitle,
		pq.Array(&about.Features), &about.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `SELECT id, url, title, description, active, created_at FROM about_carousel_images ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	about.CarouselImages = []domain.CarouselImage{}
	for rows.Next() {
		var image domain.CarouselImage
		if err := rows.Scan(&image.ID, &image.URL, &image.Title, &image.Description, &image.Active, &image.CreatedAt); err != nil {
			return nil, err
		}
		about.CarouselImages = append(about.CarouselImages, image)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	statRows, err := r.db.QueryContext(ctx, `SELECT id, number, label FROM about_stats ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer statRows.Close()
	about.Stats = []domain.AboutStat{}
	for statRows.Next() {
		var stat domain.AboutStat
		if err := statRows.Scan(&stat.ID, &stat.Number, &stat.Label); err != nil {
			return nil, err
		}
		about.Stats = append(about.Stats, stat)
	}
	return about, statRows.Err()
}

func (r *AboutRepository) UpdateHeader(ctx context.Context, patch ports.AboutHeaderPatch) error {
	query := `
		UPDATE about_content SET
			header_subtitle = COALESCE($1, header_subtitle),
			header_title = COALESCE($2, header_title),
			header_description = COALESCE($3, header_description),
			updated_at = now()
		WHERE id = 1
	`
	_, err := r.db.ExecContext(ctx, query, patch.Subtitle, patch.Title, patch.Description)
	return err
}

func (r *AboutRepository) UpdateMission(ctx context.Context, patch ports.AboutMissionPatch) error {
	query := `
		UPDATE about_content SET
			mission_title = COALESCE($1, mission_title),
			mission_content = COALESCE($2, mission_content),
			mission_subsection_title = COALESCE($3, mission_subsection_title),
			updated_at = now()
		WHERE id = 1
	`
	_, err := r.db.ExecContext(ctx, query, patch.Title, patch.Content, patch.SubsectionTitle)
	return err
}

func (r *AboutRepository) AddFeature(ctx context.Context, feature string) ([]string, error) {
	query := `
		UPDATE about_content
		SET features = array_append(features, $1), updated_at = now()
		WHERE id = 1
		RETURNING features
	`
	var features []string
	if err := r.db.QueryRowContext(ctx, query, feature).Scan(pq.Array(&features)); err != nil {
		return nil, err
	}
	return features, nil
}

func (r *AboutRepository) RemoveFeature(ctx context.Context, index int) ([]string, error) {
	// Postgres arrays are 1-based; the API is 0-based.
	query := `
		UPDATE about_content
		SET features = features[:$1] || features[$1+2:], updated_at = now()
		WHERE id = 1 AND $1 < cardinality(features)
		RETURNING features
	`
	var features []string
	err := r.db.QueryRowContext(ctx, query, index).Scan(pq.Array(&features))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return features, nil
}

func (r *AboutRepository) AddCarouselImage(ctx context.Context, image *domain.CarouselImage) error {
	query := `INSERT INTO about_carousel_images (id, url, title, description, active) VALUES ($1, $2, $3, $4, $5) RETURNING created_at`
	return r.db.QueryRowContext(ctx, query, image.ID, image.URL, image.Title, image.Description, image.Active).Scan(&image.CreatedAt)
}

func (r *AboutRepository) SetCarouselImageStatus(ctx context.Context, id uuid.UUID, active bool) (*domain.CarouselImage, error) {
	query := `
		UPDATE about_carousel_images SET active = $2
		WHERE id = $1
		RETURNING id, url, title, description, active, created_at
	`
	image := &domain.CarouselImage{}
	err := r.db.QueryRowContext(ctx, query, id, active).
		Scan(&image.ID, &image.URL, &image.Title, &image.Description, &image.Active, &image.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return image, nil
}

func (r *AboutRepository) DeleteCarouselImage(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM about_carousel_images WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *AboutRepository) UpdateStat(ctx context.Context, id uuid.UUID, patch ports.AboutStatPatch) (*domain.AboutStat, error) {
	query := `
		UPDATE about_stats SET
			number = COALESCE($2, number),
			label = COALESCE($3, label)
		WHERE id = $1
		RETURNING id, number, label
	`
	stat := &domain.AboutStat{}
	err := r.db.QueryRowContext(ctx, query, id, patch.Number, patch.Label).Scan(&stat.ID, &stat.Number, &stat.Label)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return stat, nil
}
