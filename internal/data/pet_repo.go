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

// PetRepo provides database operations for pets.
type PetRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewPetRepo creates a new PetRepo with real time provider.
func NewPetRepo(db *sql.DB) *PetRepo {
	return &PetRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewPetRepoWithTimeProvider creates a new PetRepo with a custom time provider (useful for tests).
func NewPetRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *PetRepo {
	return &PetRepo{DB: db, timeProvider: tp}
}

const petColumns = `id, name, species, age, gender, image_url, owner_id, created_at, updated_at`

// Create inserts a new pet.
func (r *PetRepo) Create(ctx context.Context, req *model.CreatePetRequest) (*model.Pet, error) {
	if req == nil {
		return nil, errors.New("create pet request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	createdAt := r.timeProvider.Now().UTC()
	var out model.Pet
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO pets (name, species, age, gender, image_url, owner_id, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING `+petColumns,
			strings.TrimSpace(req.Name),
			strings.TrimSpace(req.Species),
			req.Age,
			string(req.Gender),
			req.ImageURL,
			req.OwnerID,
			createdAt,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Pet])
		return err
	}); err != nil {
		return nil, r.mapWriteErr(err)
	}
	return &out, nil
}

// GetByID retrieves a pet by ID.
func (r *PetRepo) GetByID(ctx context.Context, id string) (*model.Pet, error) {
	var out model.Pet
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+petColumns+` FROM pets WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Pet])
		return err
	}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPetNotFound
		}
		return nil, err
	}
	return &out, nil
}

// List retrieves pets with pagination, newest first.
func (r *PetRepo) List(ctx context.Context, limit, offset int) ([]*model.Pet, error) {
	if limit <= 0 {
		limit = 50
	}
	offset = max(offset, 0)

	var rowsOut []model.Pet
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+petColumns+` FROM pets
			ORDER BY created_at DESC
			LIMIT $1 OFFSET $2`, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Pet])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list pets: %w", err)
	}

	res := make([]*model.Pet, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Update updates fields of a pet.
func (r *PetRepo) Update(ctx context.Context, id string, req model.UpdatePetRequest) (*model.Pet, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	setParts := make([]string, 0, 6)
	args := make([]any, 0, 7)
	nextIdx := func() int { return len(args) + 1 }

	if req.Name != nil {
		setParts = append(setParts, fmt.Sprintf("name = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Name))
	}
	if req.Species != nil {
		setParts = append(setParts, fmt.Sprintf("species = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Species))
	}
	if req.Age != nil {
		setParts = append(setParts, fmt.Sprintf("age = $%d", nextIdx()))
		args = append(args, *req.Age)
	}
	if req.Gender != nil {
		setParts = append(setParts, fmt.Sprintf("gender = $%d", nextIdx()))
		args = append(args, string(*req.Gender))
	}
	if req.ImageURL != nil {
		if strings.TrimSpace(*req.ImageURL) == "" {
			setParts = append(setParts, "image_url = NULL")
		} else {
			setParts = append(setParts, fmt.Sprintf("image_url = $%d", nextIdx()))
			args = append(args, *req.ImageURL)
		}
	}
	if req.OwnerID != nil {
		// Empty string clears the owner, returning the pet to adoptable.
		if strings.TrimSpace(*req.OwnerID) == "" {
			setParts = append(setParts, "owner_id = NULL")
		} else {
			setParts = append(setParts, fmt.Sprintf("owner_id = $%d", nextIdx()))
			args = append(args, *req.OwnerID)
		}
	}
	setParts = append(setParts, fmt.Sprintf("updated_at = $%d", nextIdx()))
	args = append(args, r.timeProvider.Now().UTC())

	args = append(args, id)
	query := "UPDATE pets SET " + strings.Join(setParts, ", ") +
		" WHERE id = $" + strconv.Itoa(len(args)) + " RETURNING " + petColumns

	var out model.Pet
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Pet])
		return err
	}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPetNotFound
		}
		return nil, r.mapWriteErr(err)
	}
	return &out, nil
}

// Delete deletes a pet by ID.
func (r *PetRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM pets WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete pet: %w", err)
	}
	return rows > 0, nil
}

// Count returns the number of pets.
func (r *PetRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT count(*) FROM pets`).Scan(&n)
	return n, err
}

func (r *PetRepo) mapWriteErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
		return ErrOwnerNotFound
	}
	return err
}
