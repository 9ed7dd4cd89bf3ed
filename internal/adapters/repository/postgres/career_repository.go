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

type CareerRepository struct {
	db *sql.DB
}

func NewCareerRepository(db *sql.DB) ports.CareerRepository {
	return &CareerRepository{db: db}
}

func (r *CareerRepository) ListExpertiseAreas(ctx context.Context) ([]domain.ExpertiseArea, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, title, description, details, color, icon, created_at FROM expertise_areas ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	areas := []domain.ExpertiseArea{}
	for rows.Next() {
		var area domain.ExpertiseArea
		if err := rows.Scan(&area.ID, &area.Title, &area.Description, pq.Array(&area.Details), &area.Color, &area.Icon, &area.CreatedAt); err != nil {
			return nil, err
		}
		areas = append(areas, area)
	}
	return areas, rows.Err()
}

func (r *CareerRepository) GetExpertiseArea(ctx context.Context, id uuid.UUID) (*domain.ExpertiseArea, error) {
	area := &domain.ExpertiseArea{}
	err := r.db.QueryRowContext(ctx, `SELECT id, title, description, details, color, icon, created_at FROM expertise_areas WHERE id = $1`, id).
		Scan(&area.ID, &area.Title, &area.Description, pq.Array(&area.Details), &area.Color, &area.Icon, &area.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return area, nil
}

func (r *CareerRepository) CreateExpertiseArea(ctx context.Context, area *domain.ExpertiseArea) error {
	query := `
		INSERT INTO expertise_areas (id, title, description, details, color, icon)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`
	return r.db.QueryRowContext(ctx, query, area.ID, area.Title, area.Description, pq.Array(area.Details), area.Color, area.Icon).Scan(&area.CreatedAt)
}

func (r *CareerRepository) UpdateExpertiseArea(ctx context.Context, id uuid.UUID, patch ports.ExpertiseAreaPatch) (*domain.ExpertiseArea, error) {
	query := `
		UPDATE expertise_areas SET
			title = COALESCE($2, title),
			description = COALESCE($3, description),
			details = COALESCE($4, details),
			color = COALESCE($5, color),
			icon = COALESCE($6, icon)
		WHERE id = $1
		RETURNING id, title, description, details, color, icon, created_at
	`
	var details any
	if patch.Details != nil {
		details = pq.Array(patch.Details)
	}
	area := &domain.ExpertiseArea{}
	err := r.db.QueryRowContext(ctx, query, id, patch.Title, patch.Description, details, patch.Color, patch.Icon).
		Scan(&area.ID, &area.Title, &area.Description, pq.Array(&area.Details), &area.Color, &area.Icon, &area.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return area, nil
}

func (r *CareerRepository) DeleteExpertiseArea(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM expertise_areas WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *CareerRepository) ListCareerPaths(ctx context.Context) ([]domain.CareerPath, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, title, level, description, skills, growth, icon, shape, created_at FROM career_paths ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	paths := []domain.CareerPath{}
	for rows.Next() {
		var path domain.CareerPath
		if err := rows.Scan(&path.ID, &path.Title, &path.Level, &path.Description, pq.Array(&path.Skills),
			&path.Growth, &path.Icon, &path.Shape, &path.CreatedAt); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, rows.Err()
}

func (r *CareerRepository) GetCareerPath(ctx context.Context, id uuid.UUID) (*domain.CareerPath, error) {
	path := &domain.CareerPath{}
	err := r.db.QueryRowContext(ctx, `SELECT id, title, level, description, skills, growth, icon, shape, created_at FROM career_paths WHERE id = $1`, id).
		Scan(&path.ID, &path.Title, &path.Level, &path.Description, pq.Array(&path.Skills), &path.Growth, &path.Icon, &path.Shape, &path.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return path, nil
}

func (r *CareerRepository) CreateCareerPath(ctx context.Context, path *domain.CareerPath) error {
	query := `
		INSERT INTO career_paths (id, title, level, description, skills, growth, icon, shape)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`
	return r.db.QueryRowContext(ctx, query, path.ID, path.Title, path.Level, path.Description,
		pq.Array(path.Skills), path.Growth, path.Icon, path.Shape).Scan(&path.CreatedAt)
}

func (r *CareerRepository) UpdateCareerPath(ctx context.Context, id uuid.UUID, patch ports.CareerPathPatch) (*domain.CareerPath, error) {
	query := `
		UPDATE career_paths SET
			title = COALESCE($2, title),
			level = COALESCE($3, level),
			description = COALESCE($4, description),
			skills = COALESCE($5, skills),
			growth = COALESCE($6, growth),
			icon = COALESCE($7, icon),
			shape = COALESCE($8, shape)
		WHERE id = $1
		RETURNING id, title, level, description, skills, growth, icon, shape, created_at
	`
	var skills any
	if patch.Skills != nil {
		skills = pq.Array(patch.Skills)
	}
	path := &domain.CareerPath{}
	err := r.db.QueryRowContext(ctx, query, id, patch.Title, patch.Level, patch.Description, skills, patch.Growth, patch.Icon, patch.Shape).
		Scan(&path.ID, &path.Title, &path.Level, &path.Description, pq.Array(&path.Skills), &path.Growth, &path.Icon, &path.Shape, &path.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return path, nil
}

func (r *CareerRepository) DeleteCareerPath(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM career_paths WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *CareerRepository) ListBenefits(ctx context.Context) ([]domain.Benefit, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, title, description, icon, accent, created_at FROM benefits ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	benefits := []domain.Benefit{}
	for rows.Next() {
		var benefit domain.Benefit
		if err := rows.Scan(&benefit.ID, &benefit.Title, &benefit.Description, &benefit.Icon, &benefit.Accent, &benefit.CreatedAt); err != nil {
			return nil, err
		}
		benefits = append(benefits, benefit)
	}
	return benefits, rows.Err()
}

func (r *CareerRepository) GetBenefit(ctx context.Context, id uuid.UUID) (*domain.Benefit, error) {
	benefit := &domain.Benefit{}
	err := r.db.QueryRowContext(ctx, `SELECT id, title, description, icon, accent, created_at FROM benefits WHERE id = $1`, id).
		Scan(&benefit.ID, &benefit.Title, &benefit.Description, &benefit.Icon, &benefit.Accent, &benefit.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return benefit, nil
}

func (r *CareerRepository) CreateBenefit(ctx context.Context, benefit *domain.Benefit) error {
	query := `
		INSERT INTO benefits (id, title, description, icon, accent)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`
	return r.db.QueryRowContext(ctx, query, benefit.ID, benefit.Title, benefit.Description, benefit.Icon, benefit.Accent).Scan(&benefit.CreatedAt)
}

func (r *CareerRepository) UpdateBenefit(ctx context.Context, id uuid.UUID, patch ports.BenefitPatch) (*domain.Benefit, error) {
	query := `
		UPDATE benefits SET
			title = COALESCE($2, title),
			description = COALESCE($3, description),
			icon = COALESCE($4, icon),
			accent = COALESCE($5, accent)
		WHERE id = $1
		RETURNING id, title, description, icon, accent, created_at
	`
	benefit := &domain.Benefit{}
	err := r.db.QueryRowContext(ctx, query, id, patch.Title, patch.Description, patch.Icon, patch.Accent).
		Scan(&benefit.ID, &benefit.Title, &benefit.Description, &benefit.Icon, &benefit.Accent, &benefit.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return benefit, nil
}

func (r *CareerRepository) DeleteBenefit(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM benefits WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
