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

// OwnerRepo provides database operations for pet owners.
type OwnerRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewOwnerRepo creates a new OwnerRepo with real time provider.
func NewOwnerRepo(db *sql.DB) *OwnerRepo {
	return &OwnerRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewOwnerRepoWithTimeProvider creates a new OwnerRepo with a custom time provider (useful for tests).
func NewOwnerRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *OwnerRepo {
	return &OwnerRepo{DB: db, timeProvider: tp}
}

const ownerColumns = `id, name, email, phone, address, created_at, updated_at`

// Create inserts a new owner.
func (r *OwnerRepo) Create(ctx context.Context, req *model.CreateOwnerRequest) (*model.Owner, error) {
	if req == nil {
		return nil, errors.New("create owner request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	createdAt := r.timeProvider.Now().UTC()
	var out model.Owner
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO owners (name, email, phone, address, created_at)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING `+ownerColumns,
			req.Name,
			req.Email,
			req.Phone,
			req.Address,
			createdAt,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Owner])
		return err
	}); err != nil {
		return nil, r.mapWriteErr(err)
	}
	return &out, nil
}

// GetByID retrieves an owner by ID.
func (r *OwnerRepo) GetByID(ctx context.Context, id string) (*model.Owner, error) {
	var out model.Owner
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+ownerColumns+` FROM owners WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Owner])
		return err
	}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOwnerNotFound
		}
		return nil, err
	}
	return &out, nil
}

// List retrieves owners with pagination, newest first.
func (r *OwnerRepo) List(ctx context.Context, limit, offset int) ([]*model.Owner, error) {
	if limit <= 0 {
		limit = 50
	}
	offset = max(offset, 0)

	var rowsOut []model.Owner
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+ownerColumns+` FROM owners
			ORDER BY created_at DESC
			LIMIT $1 OFFSET $2`, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Owner])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list owners: %w", err)
	}

	res := make([]*model.Owner, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Update updates fields of an owner.
func (r *OwnerRepo) Update(ctx context.Context, id string, req model.UpdateOwnerRequest) (*model.Owner, error) {
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
	if req.Email != nil {
		setParts = append(setParts, fmt.Sprintf("email = $%d", nextIdx()))
		args = append(args, *req.Email)
	}
	if req.Phone != nil {
		setParts = append(setParts, fmt.Sprintf("phone = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Phone))
	}
	if req.Address != nil {
		if strings.TrimSpace(*req.Address) == "" {
			setParts = append(setParts, "address = NULL")
		} else {
			setParts = append(setParts, fmt.Sprintf("address = $%d", nextIdx()))
			args = append(args, *req.Address)
		}
	}
	setParts = append(setParts, fmt.Sprintf("updated_at = $%d", nextIdx()))
	args = append(args, r.timeProvider.Now().UTC())

	args = append(args, id)
	query := "UPDATE owners SET " + strings.Join(setParts, ", ") +
		" WHERE id = $" + strconv.Itoa(len(args)) + " RETURNING " + ownerColumns

	var out model.Owner
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Owner])
		return err
	}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOwnerNotFound
		}
		return nil, r.mapWriteErr(err)
	}
	return &out, nil
}

// Delete deletes an owner by ID. Pets pointing at the owner fall back to
// adoptable via ON DELETE SET NULL.
func (r *OwnerRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM owners WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete owner: %w", err)
	}
	return rows > 0, nil
}

// Count returns the number of owners.
func (r *OwnerRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT count(*) FROM owners`).Scan(&n)
	return n, err
}

func (r *OwnerRepo) mapWriteErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return ErrOwnerEmailExists
	}
	return err
}
