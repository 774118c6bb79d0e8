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

// AppointmentRepo provides database operations for appointments.
type AppointmentRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewAppointmentRepo creates a new AppointmentRepo with real time provider.
func NewAppointmentRepo(db *sql.DB) *AppointmentRepo {
	return &AppointmentRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewAppointmentRepoWithTimeProvider creates a new AppointmentRepo with a custom time provider (useful for tests).
func NewAppointmentRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *AppointmentRepo {
	return &AppointmentRepo{DB: db, timeProvider: tp}
}

// appointmentColumns formats the DATE/TIME columns back into the wire
// strings the model carries.
const appointmentColumns = `id, pet_id, service_id,
	to_char(appointment_date, 'YYYY-MM-DD') AS appointment_date,
	to_char(appointment_time, 'HH24:MI') AS appointment_time,
	notes, status, created_at, updated_at`

// Create inserts a new appointment.
func (r *AppointmentRepo) Create(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	if req == nil {
		return nil, errors.New("create appointment request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	createdAt := r.timeProvider.Now().UTC()
	var out model.Appointment
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO appointments (pet_id, service_id, appointment_date, appointment_time, notes, status, created_at)
			VALUES ($1, $2, $3::date, $4::time, $5, $6, $7)
			RETURNING `+appointmentColumns,
			req.PetID,
			req.ServiceID,
			strings.TrimSpace(req.Date),
			strings.TrimSpace(req.TimeOfDay),
			req.Notes,
			string(req.Status),
			createdAt,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Appointment])
		return err
	}); err != nil {
		return nil, r.mapWriteErr(err)
	}
	return &out, nil
}

// GetByID retrieves an appointment by ID.
func (r *AppointmentRepo) GetByID(ctx context.Context, id string) (*model.Appointment, error) {
	var out model.Appointment
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+appointmentColumns+` FROM appointments WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Appointment])
		return err
	}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	return &out, nil
}

// List retrieves appointments with pagination, soonest first.
func (r *AppointmentRepo) List(ctx context.Context, limit, offset int) ([]*model.Appointment, error) {
	if limit <= 0 {
		limit = 50
	}
	offset = max(offset, 0)

	var rowsOut []model.Appointment
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+appointmentColumns+` FROM appointments
			ORDER BY appointment_date ASC, appointment_time ASC
			LIMIT $1 OFFSET $2`, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Appointment])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	res := make([]*model.Appointment, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Update updates fields of an appointment.
func (r *AppointmentRepo) Update(ctx context.Context, id string, req model.UpdateAppointmentRequest) (*model.Appointment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	setParts := make([]string, 0, 7)
	args := make([]any, 0, 8)
	nextIdx := func() int { return len(args) + 1 }

	if req.PetID != nil {
		setParts = append(setParts, fmt.Sprintf("pet_id = $%d", nextIdx()))
		args = append(args, *req.PetID)
	}
	if req.ServiceID != nil {
		setParts = append(setParts, fmt.Sprintf("service_id = $%d", nextIdx()))
		args = append(args, *req.ServiceID)
	}
	if req.Date != nil {
		setParts = append(setParts, fmt.Sprintf("appointment_date = $%d::date", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Date))
	}
	if req.TimeOfDay != nil {
		setParts = append(setParts, fmt.Sprintf("appointment_time = $%d::time", nextIdx()))
		args = append(args, strings.TrimSpace(*req.TimeOfDay))
	}
	if req.Notes != nil {
		if strings.TrimSpace(*req.Notes) == "" {
			setParts = append(setParts, "notes = NULL")
		} else {
			setParts = append(setParts, fmt.Sprintf("notes = $%d", nextIdx()))
			args = append(args, *req.Notes)
		}
	}
	if req.Status != nil {
		setParts = append(setParts, fmt.Sprintf("status = $%d", nextIdx()))
		args = append(args, string(*req.Status))
	}
	setParts = append(setParts, fmt.Sprintf("updated_at = $%d", nextIdx()))
	args = append(args, r.timeProvider.Now().UTC())

	args = append(args, id)
	query := "UPDATE appointments SET " + strings.Join(setParts, ", ") +
		" WHERE id = $" + strconv.Itoa(len(args)) + " RETURNING " + appointmentColumns

	var out model.Appointment
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Appointment])
		return err
	}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAppointmentNotFound
		}
		return nil, r.mapWriteErr(err)
	}
	return &out, nil
}

// Delete deletes an appointment by ID.
func (r *AppointmentRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete appointment: %w", err)
	}
	return rows > 0, nil
}

// Count returns the number of appointments.
func (r *AppointmentRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT count(*) FROM appointments`).Scan(&n)
	return n, err
}

// mapWriteErr turns broken pet/service references into the shared sentinel.
func (r *AppointmentRepo) mapWriteErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
		return ErrAppointmentRefNotFound
	}
	return err
}
