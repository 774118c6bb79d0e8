package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Fadhail/petshop-api/internal/data/pgxutil"
	"github.com/Fadhail/petshop-api/internal/domain/model"
)

// ServiceRepo provides database operations for care service offerings.
type ServiceRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewServiceRepo creates a new ServiceRepo with real time provider.
func NewServiceRepo(db *sql.DB) *ServiceRepo {
	return &ServiceRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewServiceRepoWithTimeProvider creates a new ServiceRepo with a custom time provider (useful for tests).
func NewServiceRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *ServiceRepo {
	return &ServiceRepo{DB: db, timeProvider: tp}
}

const serviceColumns = `id, name, description, price_cents, duration_minutes, created_at, updated_at`

// Create inserts a new service offering.
func (r *ServiceRepo) Create(ctx context.Context, req *model.CreateServiceRequest) (*model.Service, error) {
	if req == nil {
		return nil, errors.New("create service request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	createdAt := r.timeProvider.Now().UTC()
	var out model.Service
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO services (name, description, price_cents, duration_minutes, created_at)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING `+serviceColumns,
			strings.TrimSpace(req.Name),
			req.Description,
			req.PriceCents,
			req.DurationMinutes,
			createdAt,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Service])
		return err
	}); err != nil {
		return nil, r.mapWriteErr(err)
	}
	return &out, nil
}

// GetByID retrieves a service by ID.
func (r *ServiceRepo) GetByID(ctx context.Context, id string) (*model.Service, error) {
	var out model.Service
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+serviceColumns+` FROM services WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Service])
		return err
	}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return &out, nil
}

// List retrieves services with pagination, alphabetical by name.
func (r *ServiceRepo) List(ctx context.Context, limit, offset int) ([]*model.Service, error) {
	if limit <= 0 {
		limit = 50
	}
	offset = max(offset, 0)

	var rowsOut []model.Service
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+serviceColumns+` FROM services
			ORDER BY name ASC
			LIMIT $1 OFFSET $2`, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Service])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	res := make([]*model.Service, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Update updates fields of a service.
func (r *ServiceRepo) Update(ctx context.Context, id string, req model.UpdateServiceRequest) (*model.Service, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	setParts := make([]string, 0, 5)
	args := make([]any, 0, 6)
	nextIdx := func() int { return len(args) + 1 }

	if req.Name != nil {
		setParts = append(setParts, fmt.Sprintf("name = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Name))
	}
	if req.Description != nil {
		if strings.TrimSpace(*req.Description) == "" {
			setParts = append(setParts, "description = NULL")
		} else {
			setParts = append(setParts, fmt.Sprintf("description = $%d", nextIdx()))
			args = append(args, *req.Description)
		}
	}
	if req.PriceCents != nil {
		setParts = append(setParts, fmt.Sprintf("price_cents = $%d", nextIdx()))
		args = append(args, *req.PriceCents)
	}
	if req.DurationMinutes != nil {
		setParts = append(setParts, fmt.Sprintf("duration_minutes = $%d", nextIdx()))
		args = append(args, *req.DurationMinutes)
	}
	setParts = append(setParts, fmt.Sprintf("updated_at = $%d", nextIdx()))
	args = append(args, r.timeProvider.Now().UTC())

	args = append(args, id)
	query := "UPDATE services SET " + strings.Join(setParts, ", ") +
		" WHERE id = $" + strconv.Itoa(len(args)) + " RETURNING " + serviceColumns

	var out model.Service
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Service])
		return err
	}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrServiceNotFound
		}
		return nil, r.mapWriteErr(err)
	}
	return &out, nil
}

// Delete deletes a service by ID.
func (r *ServiceRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete service: %w", err)
	}
	return rows > 0, nil
}

// Count returns the number of services.
func (r *ServiceRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT count(*) FROM services`).Scan(&n)
	return n, err
}

func (r *ServiceRepo) mapWriteErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return ErrServiceNameExists
	}
	return err
}
