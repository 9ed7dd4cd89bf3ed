package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/darkstate/cms/internal/core/domain"
	"github.com/darkstate/cms/internal/core/ports"
)

type ImpactRepository struct {
	db *sql.DB
}

func NewImpactRepository(db *sql.DB) ports.ImpactRepository {
	return &ImpactRepository{db: db}
}

func (r *ImpactRepository) GetOrInit(ctx context.Context) (*domain.Impact, error) {
	if _, err := r.db.ExecContext(ctx, `INSERT INTO impact_content (id) VALUES (1) ON CONFLICT (id) DO NOTHING`); err != nil {
		return nil, err
	}

	impact := &domain.Impact{}
	err := r.db.QueryRowContext(ctx, `
		SELECT main_heading, main_description, overview_description, updated_at
		FROM impact_content WHERE id = 1
	`).Scan(&impact.MainHeading, &impact.MainDescription, &impact.OverviewDescription, &impact.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if impact.ImpactStats, err = r.listStats(ctx); err != nil {
		return nil, err
	}
	if impact.SuccessStories, err = r.listStories(ctx); err != nil {
		return nil, err
	}
	if impact.KeyAchievements, err = r.listAchievements(ctx); err != nil {
		return nil, err
	}
	if impact.ClientTestimonials, err = r.listTestimonials(ctx); err != nil {
		return nil, err
	}
	if impact.ImpactAreas, err = r.listAreas(ctx); err != nil {
		return nil, err
	}
	return impact, nil
}

func (r *ImpactRepository) UpdateContent(ctx context.Context, patch ports.ImpactContentPatch) error {
	query := `
		UPDATE impact_content SET
			main_heading = COALESCE($1, main_heading),
			main_description = COALESCE($2, main_description),
			overview_description = COALESCE($3, overview_description),
			updated_at = now()
		WHERE id = 1
	`
	_, err := r.db.ExecContext(ctx, query, patch.MainHeading, patch.MainDescription, patch.OverviewDescription)
	return err
}

func (r *ImpactRepository) listStats(ctx context.Context) ([]domain.ImpactStat, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, icon, number, label, description, color, created_at FROM impact_stats ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := []domain.ImpactStat{}
	for rows.Next() {
		var stat domain.ImpactStat
		if err := rows.Scan(&stat.ID, &stat.Icon, &stat.Number, &stat.Label, &stat.Description, &stat.Color, &stat.CreatedAt); err != nil {
			return nil, err
		}
		stats = append(stats, stat)
	}
	return stats, rows.Err()
}

func (r *ImpactRepository) AddStat(ctx context.Context, stat *domain.ImpactStat) error {
	query := `
		INSERT INTO impact_stats (id, icon, number, label, description, color)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`
	return r.db.QueryRowContext(ctx, query, stat.ID, stat.Icon, stat.Number, stat.Label, stat.Description, stat.Color).Scan(&stat.CreatedAt)
}

func (r *ImpactRepository) DeleteStat(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM impact_stats WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *ImpactRepository) listStories(ctx context.Context) ([]domain.SuccessStory, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, title, location, result, year, description, metrics, image, created_at FROM success_stories ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stories := []domain.SuccessStory{}
	for rows.Next() {
		var story domain.SuccessStory
		if err := rows.Scan(&story.ID, &story.Title, &story.Location, &story.Result, &story.Year,
			&story.Description, pq.Array(&story.Metrics), &story.Image, &story.CreatedAt); err != nil {
			return nil, err
		}
		stories = append(stories, story)
	}
	return stories, rows.Err()
}

func (r *ImpactRepository) AddStory(ctx context.Context, story *domain.SuccessStory) error {
	query := `
		INSERT INTO success_stories (id, title, location, result, year, description, metrics, image)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`
	return r.db.QueryRowContext(ctx, query, story.ID, story.Title, story.Location, story.Result,
		story.Year, story.Description, pq.Array(story.Metrics), story.Image).Scan(&story.CreatedAt)
}

func (r *ImpactRepository) DeleteStory(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM success_stories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *ImpactRepository) listAchievements(ctx context.Context) ([]domain.KeyAchievement, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, category, achievements, created_at FROM key_achievements ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	achievements := []domain.KeyAchievement{}
	for rows.Next() {
		var achievement domain.KeyAchievement
		if err := rows.Scan(&achievement.ID, &achievement.Category, pq.Array(&achievement.Achievements), &achievement.CreatedAt); err != nil {
			return nil, err
		}
		achievements = append(achievements, achievement)
	}
	return achievements, rows.Err()
}

func (r *ImpactRepository) AddAchievement(ctx context.Context, achievement *domain.KeyAchievement) error {
	query := `
		INSERT INTO key_achievements (id, category, achievements)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`
	return r.db.QueryRowContext(ctx, query, achievement.ID, achievement.Category, pq.Array(achievement.Achievements)).Scan(&achievement.CreatedAt)
}

func (r *ImpactRepository) DeleteAchievement(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM key_achievements WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *ImpactRepository) listTestimonials(ctx context.Context) ([]domain.Testimonial, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, position, quote, rating, image, created_at FROM testimonials ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	testimonials := []domain.Testimonial{}
	for rows.Next() {
		var testimonial domain.Testimonial
		if err := rows.Scan(&testimonial.ID, &testimonial.Name, &testimonial.Position, &testimonial.Quote,
			&testimonial.Rating, &testimonial.Image, &testimonial.CreatedAt); err != nil {
			return nil, err
		}
		testimonials = append(testimonials, testimonial)
	}
	return testimonials, rows.Err()
}

func (r *ImpactRepository) AddTestimonial(ctx context.Context, testimonial *domain.Testimonial) error {
	query := `
		INSERT INTO testimonials (id, name, position, quote, rating, image)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`
	return r.db.QueryRowContext(ctx, query, testimonial.ID, testimonial.Name, testimonial.Position,
		testimonial.Quote, testimonial.Rating, testimonial.Image).Scan(&testimonial.CreatedAt)
}

func (r *ImpactRepository) DeleteTestimonial(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *ImpactRepository) listAreas(ctx context.Context) ([]domain.ImpactArea, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, icon, title, description, stats, created_at FROM impact_areas ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	areas := []domain.ImpactArea{}
	for rows.Next() {
		var area domain.ImpactArea
		if err := rows.Scan(&area.ID, &area.Icon, &area.Title, &area.Description, &area.Stats, &area.CreatedAt); err != nil {
			return nil, err
		}
		areas = append(areas, area)
	}
	return areas, rows.Err()
}

func (r *ImpactRepository) AddArea(ctx context.Context, area *domain.ImpactArea) error {
	query := `
		INSERT INTO impact_areas (id, icon, title, description, stats)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`
	return r.db.QueryRowContext(ctx, query, area.ID, area.Icon, area.Title, area.Description, area.Stats).Scan(&area.CreatedAt)
}

func (r *ImpactRepository) DeleteArea(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM impact_areas WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
