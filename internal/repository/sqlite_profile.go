package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/timesheet/internal/db"
	"github.com/alexanderramin/timesheet/internal/domain"
)

// SQLiteProfileRepo implements ProfileRepo using a SQLite database.
type SQLiteProfileRepo struct {
	db db.DBTX
}

// NewSQLiteProfileRepo creates a new SQLiteProfileRepo.
func NewSQLiteProfileRepo(conn db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: conn}
}

func (r *SQLiteProfileRepo) Get(ctx context.Context) (*domain.Profile, error) {
	query := `SELECT p.employee_name, p.client_name, p.updated_at, s.mime, s.data
		FROM profile p
		LEFT JOIN profile_signature s ON s.profile_id = p.id
		WHERE p.id = ?`
	row := r.db.QueryRowContext(ctx, query, db.ProfileID)

	var (
		p         domain.Profile
		updatedAt string
		mime      sql.NullString
		data      []byte
	)
	err := row.Scan(&p.EmployeeName, &p.ClientName, &updatedAt, &mime, &data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning profile: %w", err)
	}
	p.UpdatedAt = parseStamp(updatedAt)
	p.SignatureMIME = mime.String
	if len(data) > 0 {
		p.Signature = data
	}
	return &p, nil
}

// Put replaces the stored profile. A profile without a signature removes any
// stored signature. Callers wanting both writes to land together run Put
// inside a UnitOfWork.
func (r *SQLiteProfileRepo) Put(ctx context.Context, p *domain.Profile) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO profile (id, employee_name, client_name, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			employee_name = excluded.employee_name,
			client_name = excluded.client_name,
			updated_at = excluded.updated_at`,
		db.ProfileID, p.EmployeeName, p.ClientName, stamp())
	if err != nil {
		return fmt.Errorf("upserting profile: %w", err)
	}

	if !p.HasSignature() {
		if _, err := r.db.ExecContext(ctx, `DELETE FROM profile_signature WHERE profile_id = ?`, db.ProfileID); err != nil {
			return fmt.Errorf("clearing profile signature: %w", err)
		}
		return nil
	}
	_, err = r.db.ExecContext(ctx, `INSERT INTO profile_signature (profile_id, mime, data)
		VALUES (?, ?, ?)
		ON CONFLICT(profile_id) DO UPDATE SET mime = excluded.mime, data = excluded.data`,
		db.ProfileID, p.SignatureMIME, p.Signature)
	if err != nil {
		return fmt.Errorf("upserting profile signature: %w", err)
	}
	return nil
}

// Delete removes the stored profile and its signature. Deleting an empty
// store is not an error.
func (r *SQLiteProfileRepo) Delete(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM profile WHERE id = ?`, db.ProfileID); err != nil {
		return fmt.Errorf("deleting profile: %w", err)
	}
	return nil
}
