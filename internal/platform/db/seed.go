package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"rms/internal/auth"
	"rms/internal/platform/config"
)

func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	if cfg.SeedAdminEmail != "" {
		if err := ensureUser(ctx, pool, cfg.SeedAdminEmail, cfg.SeedAdminPassword, "Admin", auth.RoleAdmin); err != nil {
			return err
		}
	}

	if err := ensureLeaveTypes(ctx, pool); err != nil {
		return err
	}
	if err := ensureVehicles(ctx, pool); err != nil {
		return err
	}
	if err := ensureCompanyHolidays(ctx, pool); err != nil {
		return err
	}
	return nil
}

func ensureUser(ctx context.Context, pool *pgxpool.Pool, email, password, name, role string) error {
	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM users WHERE email = $1", email).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, `
    INSERT INTO users (email, password_hash, name, role)
    VALUES ($1,$2,$3,$4)
  `, email, hash, name, role)
	return err
}

func ensureLeaveTypes(ctx context.Context, pool *pgxpool.Pool) error {
	types := []struct {
		name       string
		code       string
		isPaid     bool
		annualDays int
	}{
		{"Annual Leave", "AL", true, 25},
		{"Sick Leave", "SL", true, 10},
		{"Personal Leave", "PL", false, 5},
	}
	for _, t := range types {
		_, err := pool.Exec(ctx, `
      INSERT INTO leave_types (name, code, is_paid, annual_days)
      VALUES ($1,$2,$3,$4)
      ON CONFLICT (code) DO NOTHING
    `, t.name, t.code, t.isPaid, t.annualDays)
		if err != nil {
			return err
		}
	}
	return nil
}

func ensureVehicles(ctx context.Context, pool *pgxpool.Pool) error {
	vehicles := []struct {
		name  string
		plate string
		seats int
	}{
		{"Pool Van", "POOL-01", 7},
		{"Pool Sedan", "POOL-02", 4},
	}
	for _, v := range vehicles {
		_, err := pool.Exec(ctx, `
      INSERT INTO vehicles (name, plate, seats)
      VALUES ($1,$2,$3)
      ON CONFLICT (plate) DO NOTHING
    `, v.name, v.plate, v.seats)
		if err != nil {
			return err
		}
	}
	return nil
}

func ensureCompanyHolidays(ctx context.Context, pool *pgxpool.Pool) error {
	holidays := []struct {
		date time.Time
		name string
	}{
		{time.Date(2024, time.December, 24, 0, 0, 0, 0, time.UTC), "Christmas Eve (company)"},
		{time.Date(2025, time.December, 24, 0, 0, 0, 0, time.UTC), "Christmas Eve (company)"},
	}
	for _, h := range holidays {
		_, err := pool.Exec(ctx, `
      INSERT INTO company_holidays (date, name)
      VALUES ($1,$2)
      ON CONFLICT (date) DO NOTHING
    `, h.date, h.name)
		if err != nil {
			return err
		}
	}
	return nil
}

// HolidayDates loads the company-specific holiday rows merged into the
// calendar snapshot at startup.
func HolidayDates(ctx context.Context, pool *pgxpool.Pool) ([]time.Time, error) {
	rows, err := pool.Query(ctx, "SELECT date FROM company_holidays ORDER BY date")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var date time.Time
		if err := rows.Scan(&date); err != nil {
			return nil, err
		}
		dates = append(dates, date)
	}
	return dates, rows.Err()
}
