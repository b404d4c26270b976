// File: store/organisations.go
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"community-connect/models"
)

const organisationColumns = `id, email, password, name, address, website, description`

func scanOrganisation(row pgx.Row) (*models.Organisation, error) {
	var o models.Organisation
	err := row.Scan(&o.ID, &o.Email, &o.Password, &o.Name, &o.Address, &o.Website, &o.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan organisation: %w", err)
	}
	return &o, nil
}

// GetOrganisationByCredentials matches email and password exactly; plaintext
// comparison preserved from the original application.
func (s *SQLStore) GetOrganisationByCredentials(ctx context.Context, email, password string) (*models.Organisation, error) {
	row := s.db.QueryRow(ctx,
		`SELECT `+organisationColumns+` FROM organisations WHERE email = $1 AND password = $2`,
		email, password)
	return scanOrganisation(row)
}

// GetOrganisation returns an organisation by id or ErrNotFound.
func (s *SQLStore) GetOrganisation(ctx context.Context, id int) (*models.Organisation, error) {
	row := s.db.QueryRow(ctx,
		`SELECT `+organisationColumns+` FROM organisations WHERE id = $1`, id)
	return scanOrganisation(row)
}

// CreateOrganisation inserts a new organisation and returns the generated id.
func (s *SQLStore) CreateOrganisation(ctx context.Context, o models.Organisation) (int, error) {
	var id int
	err := s.db.QueryRow(ctx,
		`INSERT INTO organisations (email, password, name, address, website, description)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		o.Email, o.Password, o.Name, o.Address, o.Website, o.Description,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert organisation: %w", err)
	}
	return id, nil
}

// ListOrganisations returns all organisations ordered by name ascending.
func (s *SQLStore) ListOrganisations(ctx context.Context) ([]models.Organisation, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+organisationColumns+` FROM organisations ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list organisations: %w", err)
	}
	defer rows.Close()

	var orgs []models.Organisation
	for rows.Next() {
		var o models.Organisation
		if err := rows.Scan(&o.ID, &o.Email, &o.Password, &o.Name, &o.Address,
			&o.Website, &o.Description); err != nil {
			return nil, fmt.Errorf("scan organisation: %w", err)
		}
		orgs = append(orgs, o)
	}
	return orgs, rows.Err()
}

var organisationColumnFor = map[models.ProfileField]string{
	models.FieldEmail:    "email",
	models.FieldPassword: "password",
	models.FieldOrgName:  "name",
	models.FieldAddress:  "address",
	models.FieldWebsite:  "website",
}

// UpdateOrganisationField updates a single profile column.
func (s *SQLStore) UpdateOrganisationField(ctx context.Context, id int, field models.ProfileField, value string) error {
	column, ok := organisationColumnFor[field]
	if !ok {
		return fmt.Errorf("field %q is not an organisation column", field)
	}
	_, err := s.db.Exec(ctx,
		`UPDATE organisations SET `+column+` = $1 WHERE id = $2`, value, id)
	if err != nil {
		return fmt.Errorf("update organisation %s: %w", column, err)
	}
	return nil
}
