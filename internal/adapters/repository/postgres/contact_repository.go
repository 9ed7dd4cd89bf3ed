package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/darkstate/cms/internal/core/domain"
	"github.com/darkstate/cms/internal/core/ports"
)

type ContactRepository struct {
	db *sql.DB
}

func NewContactRepository(db *sql.DB) ports.ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) ListInfo(ctx context.Context, activeOnly bool) ([]domain.ContactInfo, error) {
	query := `SELECT id, type, title, info, sub_info, icon, active, created_at FROM contact_info`
	if activeOnly {
		query += ` WHERE active`
	}
	query += ` ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	infos := []domain.ContactInfo{}
	for rows.Next() {
		var info domain.ContactInfo
		if err := rows.Scan(&info.ID, &info.Type, &info.Title, &info.Info, &info.SubInfo, &info.Icon, &info.Active, &info.CreatedAt); err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

func (r *ContactRepository) AddInfo(ctx context.Context, info *domain.ContactInfo) error {
	query := `
		INSERT INTO contact_info (id, type, title, info, sub_info, icon, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`
	return r.db.QueryRowContext(ctx, query, info.ID, info.Type, info.Title, info.Info, info.SubInfo, info.Icon, info.Active).Scan(&info.CreatedAt)
}

func (r *ContactRepository) UpdateInfo(ctx context.Context, id uuid.UUID, patch ports.ContactInfoPatch) (*domain.ContactInfo, error) {
	query := `
		UPDATE contact_info SET
			type = COALESCE($2, type),
			title = COALESCE($3, title),
			info = COALESCE($4, info),
			sub_info = COALESCE($5, sub_info),
			icon = COALESCE($6, icon),
			active = COALESCE($7, active)
		WHERE id = $1
		RETURNING id, type, title, info, sub_info, icon, active, created_at
	`
	info := &domain.ContactInfo{}
	err := r.db.QueryRowContext(ctx, query, id, patch.Type, patch.Title, patch.Info, patch.SubInfo, patch.Icon, patch.Active).
		Scan(&info.ID, &info.Type, &info.Title, &info.Info, &info.SubInfo, &info.Icon, &info.Active, &info.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return info, nil
}

func (r *ContactRepository) SetInfoActive(ctx context.Context, id uuid.UUID, active *bool) (*domain.ContactInfo, error) {
	query := `
		UPDATE contact_info SET active = COALESCE($2, NOT active)
		WHERE id = $1
		RETURNING id, type, title, info, sub_info, icon, active, created_at
	`
	info := &domain.ContactInfo{}
	err := r.db.QueryRowContext(ctx, query, id, active).
		Scan(&info.ID, &info.Type, &info.Title, &info.Info, &info.SubInfo, &info.Icon, &info.Active, &info.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return info, nil
}

func (r *ContactRepository) DeleteInfo(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM contact_info WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *ContactRepository) GetOrInitOffice(ctx context.Context) (*domain.OfficeDetails, error) {
	if _, err := r.db.ExecContext(ctx, `INSERT INTO office_details (id) VALUES (1) ON CONFLICT (id) DO NOTHING`); err != nil {
		return nil, err
	}

	office := &domain.OfficeDetails{}
	err := r.db.QueryRowContext(ctx, `SELECT address, description, map_url FROM office_details WHERE id = 1`).
		Scan(&office.Address, &office.Description, &office.MapURL)
	if err != nil {
		return nil, err
	}
	return office, nil
}

func (r *ContactRepository) UpdateOffice(ctx context.Context, patch ports.OfficeDetailsPatch) error {
	query := `
		UPDATE office_details SET
			address = COALESCE($1, address),
			description = COALESCE($2, description),
			map_url = COALESCE($3, map_url),
			updated_at = now()
		WHERE id = 1
	`
	_, err := r.db.ExecContext(ctx, query, patch.Address, patch.Description, patch.MapURL)
	return err
}

func (r *ContactRepository) ListLinks(ctx context.Context, activeOnly bool) ([]domain.ContactLink, error) {
	query := `SELECT id, platform, url, active, created_at FROM contact_social_links`
	if activeOnly {
		query += ` WHERE active`
	}
	query += ` ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	links := []domain.ContactLink{}
	for rows.Next() {
		var link domain.ContactLink
		if err := rows.Scan(&link.ID, &link.Platform, &link.URL, &link.Active, &link.CreatedAt); err != nil {
			return nil, err
		}
		links = append(links, link)
	}
	return links, rows.Err()
}

func (r *ContactRepository) AddLink(ctx context.Context, link *domain.ContactLink) error {
	query := `
		INSERT INTO contact_social_links (id, platform, url, active)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`
	return r.db.QueryRowContext(ctx, query, link.ID, link.Platform, link.URL, link.Active).Scan(&link.CreatedAt)
}

func (r *ContactRepository) UpdateLink(ctx context.Context, id uuid.UUID, patch ports.ContactLinkPatch) (*domain.ContactLink, error) {
	query := `
		UPDATE contact_social_links SET
			platform = COALESCE($2, platform),
			url = COALESCE($3, url),
			active = COALESCE($4, active)
		WHERE id = $1
		RETURNING id, platform, url, active, created_at
	`
	link := &domain.ContactLink{}
	err := r.db.QueryRowContext(ctx, query, id, patch.Platform, patch.URL, patch.Active).
		Scan(&link.ID, &link.Platform, &link.URL, &link.Active, &link.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return link, nil
}

func (r *ContactRepository) SetLinkActive(ctx context.Context, id uuid.UUID, active *bool) (*domain.ContactLink, error) {
	query := `
		UPDATE contact_social_links SET active = COALESCE($2, NOT active)
		WHERE id = $1
		RETURNING id, platform, url, active, created_at
	`
	link := &domain.ContactLink{}
	err := r.db.QueryRowContext(ctx, query, id, active).
		Scan(&link.ID, &link.Platform, &link.URL, &link.Active, &link.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return link, nil
}

func (r *ContactRepository) DeleteLink(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM contact_social_links WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
