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

type ServiceRepository struct {
	db *sql.DB
}

func NewServiceRepository(db *sql.DB) ports.ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) List(ctx context.Context) ([]domain.Service, error) {
	query := `
		SELECT id, title, description, features, icon, active, position, created_at
		FROM services ORDER BY position, created_at
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	services := []domain.Service{}
	for rows.Next() {
		var service domain.Service
		if err := rows.Scan(&service.ID, &service.Title, &service.Description, pq.Array(&service.Features),
			&service.Icon, &service.Active, &service.Position, &service.CreatedAt); err != nil {
			return nil, err
		}
		services = append(services, service)
	}
	return services, rows.Err()
}

func (r *ServiceRepository) Create(ctx context.Context, service *domain.Service) error {
	query := `
		INSERT INTO services (id, title, description, features, icon, active, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`
	return r.db.QueryRowContext(ctx, query, service.ID, service.Title, service.Description,
		pq.Array(service.Features), service.Icon, service.Active, service.Position).Scan(&service.CreatedAt)
}

func (r *ServiceRepository) Update(ctx context.Context, id uuid.UUID, patch ports.ServicePatch) (*domain.Service, error) {
	query := `
		UPDATE services SET
			title = COALESCE($2, title),
			description = COALESCE($3, description),
			features = COALESCE($4, features),
			icon = COALESCE($5, icon),
			active = COALESCE($6, active),
			position = COALESCE($7, position)
		WHERE id = $1
		RETURNING id, title, description, features, icon, active, position, created_at
	`
	var features any
	if patch.Features != nil {
		features = pq.Array(patch.Features)
	}
	service := &domain.Service{}
	err := r.db.QueryRowContext(ctx, query, id, patch.Title, patch.Description, features,
		patch.Icon, patch.Active, patch.Position).
		Scan(&service.ID, &service.Title, &service.Description, pq.Array(&service.Features),
			&service.Icon, &service.Active, &service.Position, &service.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return service, nil
}

func (r *ServiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *ServiceRepository) ToggleActive(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	query := `
		UPDATE services SET active = NOT active
		WHERE id = $1
		RETURNING id, title, description, features, icon, active, position, created_at
	`
	service := &domain.Service{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&service.ID, &service.Title, &service.Description, pq.Array(&service.Features),
			&service.Icon, &service.Active, &service.Position, &service.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return service, nil
}

type ServicesContentRepository struct {
	db *sql.DB
}

func NewServicesContentRepository(db *sql.DB) ports.ServicesContentRepository {
	return &ServicesContentRepository{db: db}
}

func (r *ServicesContentRepository) GetOrInit(ctx context.Context) (*domain.ServicesHeader, *domain.ServicesCTA, error) {
	if _, err := r.db.ExecContext(ctx, `INSERT INTO services_page_content (id) VALUES (1) ON CONFLICT (id) DO NOTHING`); err != nil {
		return nil, nil, err
	}

	query := `
		SELECT header_subtitle, header_main_title, header_description,
		       cta_title, cta_description, cta_button_text
		FROM services_page_content WHERE id = 1
	`
	header := &domain.ServicesHeader{}
	cta := &domain.ServicesCTA{}
	err := r.db.QueryRowContext(ctx, query).Scan(
		&header.Subtitle, &header.MainTitle, &header.Description,
		&cta.Title, &cta.Description, &cta.ButtonText,
	)
	if err != nil {
		return nil, nil, err
	}
	return header, cta, nil
}

func (r *ServicesContentRepository) UpdateHeader(ctx context.Context, patch ports.ServicesHeaderPatch) error {
	query := `
		UPDATE services_page_content SET
			header_subtitle = COALESCE($1, header_subtitle),
			header_main_title = COALESCE($2, header_main_title),
			header_description = COALESCE($3, header_description),
			updated_at = now()
		WHERE id = 1
	`
	_, err := r.db.ExecContext(ctx, query, patch.Subtitle, patch.MainTitle, patch.Description)
	return err
}

func (r *ServicesContentRepository) UpdateCTA(ctx context.Context, patch ports.ServicesCTAPatch) error {
	query := `
		UPDATE services_page_content SET
			cta_title = COALESCE($1, cta_title),
			cta_description = COALESCE($2, cta_description),
			cta_button_text = COALESCE($3, cta_button_text),
			updated_at = now()
		WHERE id = 1
	`
	_, err := r.db.ExecContext(ctx, query, patch.Title, patch.Description, patch.ButtonText)
	return err
}
