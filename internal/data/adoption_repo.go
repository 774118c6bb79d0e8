package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Fadhail/petshop-api/internal/core"
	"github.com/Fadhail/petshop-api/internal/data/pgxutil"
	"github.com/Fadhail/petshop-api/internal/domain/model"
)

// AdoptionRepo provides database operations for adoption applications.
type AdoptionRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewAdoptionRepo creates a new AdoptionRepo with real time provider.
func NewAdoptionRepo(db *sql.DB) *AdoptionRepo {
	return &AdoptionRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewAdoptionRepoWithTimeProvider creates a new AdoptionRepo with a custom time provider (useful for tests).
func NewAdoptionRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *AdoptionRepo {
	return &AdoptionRepo{DB: db, timeProvider: tp}
}

const adoptionColumns = `id, pet_id, pet_name, user_id, name, email, phone, address,
	experience, reason, living_space, has_other_pets, other_pets_details,
	status, decided_at, created_at, updated_at`

// Create inserts a new application in pending status.
func (r *AdoptionRepo) Create(ctx context.Context, req *model.CreateAdoptionRequest) (*model.Adoption, error) {
	if req == nil {
		return nil, errors.New("create adoption request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.UserID == "" || req.PetName == "" {
		return nil, errors.New("user id and pet name must be resolved before insert")
	}

	createdAt := r.timeProvider.Now().UTC()
	var out model.Adoption
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO adoptions (
				pet_id, pet_name, user_id, name, email, phone, address,
				experience, reason, living_space, has_other_pets, other_pets_details, created_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
			RETURNING `+adoptionColumns,
			req.PetID,
			req.PetName,
			req.UserID,
			req.Name,
			req.Email,
			req.Phone,
			req.Address,
			req.Experience,
			req.Reason,
			req.LivingSpace,
			req.HasOtherPets,
			req.OtherPetsDetails,
			createdAt,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Adoption])
		return err
	}); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return nil, ErrPetNotFound
		}
		return nil, err
	}
	return &out, nil
}

// GetByID retrieves an application by ID.
func (r *AdoptionRepo) GetByID(ctx context.Context, id string) (*model.Adoption, error) {
	var out model.Adoption
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+adoptionColumns+` FROM adoptions WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Adoption])
		return err
	}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAdoptionNotFound
		}
		return nil, err
	}
	return &out, nil
}

// List retrieves applications matching opts, newest first.
func (r *AdoptionRepo) List(ctx context.Context, opts model.AdoptionListOptions) ([]*model.Adoption, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := max(opts.Offset, 0)

	where := make([]string, 0, 3)
	args := make([]any, 0, 5)
	if opts.Status != nil {
		args = append(args, string(*opts.Status))
		where = append(where, "status = $"+strconv.Itoa(len(args)))
	}
	if opts.PetID != nil {
		args = append(args, *opts.PetID)
		where = append(where, "pet_id = $"+strconv.Itoa(len(args)))
	}
	if opts.UserID != nil {
		args = append(args, *opts.UserID)
		where = append(where, "user_id = $"+strconv.Itoa(len(args)))
	}

	query := `SELECT ` + adoptionColumns + ` FROM adoptions`
	for i, cond := range where {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	args = append(args, limit)
	query += " ORDER BY created_at DESC LIMIT $" + strconv.Itoa(len(args))
	args = append(args, offset)
	query += " OFFSET $" + strconv.Itoa(len(args))

	var rowsOut []model.Adoption
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Adoption])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list adoptions: %w", err)
	}

	res := make([]*model.Adoption, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// UpdateStatus persists a status transition. Legality of the transition is
// the service layer's concern; this only writes the row.
func (r *AdoptionRepo) UpdateStatus(ctx context.Context, params core.UpdateAdoptionStatusParams) (*model.Adoption, error) {
	if !params.Status.Valid() {
		return nil, errors.New("invalid adoption status")
	}

	var out model.Adoption
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			UPDATE adoptions
			SET status = $1, decided_at = $2, updated_at = $3
			WHERE id = $4
			RETURNING `+adoptionColumns,
			string(params.Status),
			// pending carries no decision timestamp
			func() any {
				if params.Status.Terminal() {
					return params.DecidedAt.UTC()
				}
				return nil
			}(),
			r.timeProvider.Now().UTC(),
			params.ID,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Adoption])
		return err
	}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAdoptionNotFound
		}
		return nil, err
	}
	return &out, nil
}

// Delete deletes an application by ID.
func (r *AdoptionRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM adoptions WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete adoption: %w", err)
	}
	return rows > 0, nil
}

// Stats aggregates application counts per status in one scan.
func (r *AdoptionRepo) Stats(ctx context.Context) (*model.AdoptionStats, error) {
	var out model.AdoptionStats
	err := r.DB.QueryRowContext(ctx, `
		SELECT
			count(*) FILTER (WHERE status = 'pending'),
			count(*) FILTER (WHERE status = 'approved'),
			count(*) FILTER (WHERE status = 'rejected'),
			count(*)
		FROM adoptions
	`).Scan(&out.Pending, &out.Approved, &out.Rejected, &out.Total)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate adoption stats: %w", err)
	}
	return &out, nil
}
