package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/user-plans/internal/models"
)

// GetPlanByName возвращает тарифный план по названию.
func (s *Storage) GetPlanByName(ctx context.Context, name string) (*models.Plan, error) {
	const op = "storage.GetPlanByName"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, description, price, max_requests_per_month
			  FROM plans
			  WHERE name = $1`
	return s.scanPlan(s.DB.QueryRowContext(ctx, query, name), op)
}

// GetPlanByID возвращает тарифный план по идентификатору.
func (s *Storage) GetPlanByID(ctx context.Context, id int) (*models.Plan, error) {
	const op = "storage.GetPlanByID"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, description, price, max_requests_per_month
			  FROM plans
			  WHERE id = $1`
	return s.scanPlan(s.DB.QueryRowContext(ctx, query, id), op)
}

// ListPlans возвращает все тарифные планы в порядке возрастания цены.
func (s *Storage) ListPlans(ctx context.Context) ([]*models.Plan, error) {
	const op = "storage.ListPlans"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, description, price, max_requests_per_month
			  FROM plans
			  ORDER BY price`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Plan
	for rows.Next() {
		var p models.Plan
		var description sql.NullString
		var maxRequests sql.NullInt64
		if err = rows.Scan(&p.ID, &p.Name, &description, &p.Price, &maxRequests); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if description.Valid {
			p.Description = description.String
		}
		if maxRequests.Valid {
			v := int(maxRequests.Int64)
			p.MaxRequestsPerMonth = &v
		}
		result = append(result, &p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

func (s *Storage) scanPlan(row *sql.Row, op string) (*models.Plan, error) {
	p := &models.Plan{}
	var description sql.NullString
	var maxRequests sql.NullInt64

	if err := row.Scan(&p.ID, &p.Name, &description, &p.Price, &maxRequests); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrPlanNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if description.Valid {
		p.Description = description.String
	}
	if maxRequests.Valid {
		v := int(maxRequests.Int64)
		p.MaxRequestsPerMonth = &v
	}
	return p, nil
}
