package repositories

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	intconfig "freightcalc/internal/config"
	intdb "freightcalc/internal/db"
)

const presetsTable = "presets"

// MySQLKV stores slots in a small key/value table. The table is created on
// first use when missing.
type MySQLKV struct {
	DB *sql.DB

	ensureOnce sync.Once
	ensureErr  error
}

func (s *MySQLKV) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s *MySQLKV) ensureTable(ctx context.Context) error {
	s.ensureOnce.Do(func() {
		db := s.db()
		if db == nil {
			s.ensureErr = errors.New("database not connected")
			return
		}
		if intdb.HasTable(db, presetsTable) {
			return
		}
		_, s.ensureErr = db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS presets (
				slot_key   VARCHAR(191) NOT NULL PRIMARY KEY,
				payload    MEDIUMTEXT   NOT NULL,
				updated_at TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
			) CHARACTER SET utf8mb4`)
	})
	return s.ensureErr
}

func (s *MySQLKV) Get(ctx context.Context, key string) (string, bool, error) {
	if err := s.ensureTable(ctx); err != nil {
		return "", false, err
	}
	var payload string
	err := s.db().QueryRowContext(ctx, `SELECT payload FROM presets WHERE slot_key=?`, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return payload, true, nil
}

func (s *MySQLKV) Set(ctx context.Context, key, value string) error {
	if err := s.ensureTable(ctx); err != nil {
		return err
	}
	_, err := s.db().ExecContext(ctx, `
		INSERT INTO presets (slot_key, payload) VALUES (?, ?)
		ON DUPLICATE KEY UPDATE payload=VALUES(payload)`, key, value)
	return err
}
