package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/frontdesk/visitor-registry/internal/core/domain"
)

const visitorColumns = `id, first_name, last_name, middle_initial, purpose, purpose_other,
	department, department_other, contact_number, email, visit_date, visit_time, created_at`

type VisitorRepository struct {
	db *sql.DB
}

func NewVisitorRepository(db *sql.DB) *VisitorRepository {
	return &VisitorRepository{db: db}
}

func scanVisitor(row rowScanner) (*domain.Visitor, error) {
	var (
		id int64
		v  domain.Visitor
	)
	if err := row.Scan(&id, &v.FirstName, &v.LastName, &v.MiddleInitial, &v.Purpose, &v.PurposeOther,
		&v.Department, &v.DepartmentOther, &v.ContactNumber, &v.Email, &v.Date, &v.Time, &v.CreatedAt); err != nil {
		return nil, err
	}
	v.ID = strconv.FormatInt(id, 10)
	v.CreatedAt = v.CreatedAt.UTC()
	return &v, nil
}

// Create inserts v; created_at comes from the column default.
func (r *VisitorRepository) Create(ctx context.Context, v *domain.Visitor) (*domain.Visitor, error) {
	const q = `
		INSERT INTO visitors (first_name, last_name, middle_initial, purpose, purpose_other,
			department, department_other, contact_number, email, visit_date, visit_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + visitorColumns

	out, err := scanVisitor(r.db.QueryRowContext(ctx, q, v.FirstName, v.LastName, v.MiddleInitial,
		v.Purpose, v.PurposeOther, v.Department, v.DepartmentOther, v.ContactNumber, v.Email, v.Date, v.Time))
	if err != nil {
		return nil, fmt.Errorf("insert visitor: %w", err)
	}
	return out, nil
}

func (r *VisitorRepository) ListNewestFirst(ctx context.Context) ([]*domain.Visitor, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+visitorColumns+` FROM visitors ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list visitors: %w", err)
	}
	defer rows.Close()

	return collectVisitors(rows)
}

func collectVisitors(rows *sql.Rows) ([]*domain.Visitor, error) {
	visitors := make([]*domain.Visitor, 0)
	for rows.Next() {
		v, err := scanVisitor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan visitor: %w", err)
		}
		visitors = append(visitors, v)
	}
	return visitors, rows.Err()
}
