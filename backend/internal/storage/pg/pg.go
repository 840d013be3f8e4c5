package pg

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/itchan-dev/forum/shared/config"
	"github.com/itchan-dev/forum/shared/logger"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// IdGenerator returns the unique part of a new entity id.
type IdGenerator func() string

// Clock supplies created_at values. Timestamps are stored as UTC wall
// time, whatever the session time zone.
type Clock func() time.Time

type Storage struct {
	db    *sqlx.DB
	newId IdGenerator
	now   Clock
}

func New(cfg *config.Config) (*Storage, error) {
	logger.Log.Info("connecting to db", "host", cfg.Private.Pg.Host, "dbname", cfg.Private.Pg.Dbname)
	db, err := Connect(cfg)
	if err != nil {
		return nil, err
	}
	logger.Log.Info("successfully connected to db")
	return &Storage{db: db, newId: uuid.NewString, now: time.Now}, nil
}

func Connect(cfg *config.Config) (*sqlx.DB, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Private.Pg.Host, cfg.Private.Pg.Port, cfg.Private.Pg.User, cfg.Private.Pg.Password, cfg.Private.Pg.Dbname)

	db, err := sqlx.Connect("postgres", connStr)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}

// WithIdGenerator replaces the uuid generator. Used by tests that need
// predictable ids.
func (s *Storage) WithIdGenerator(gen IdGenerator) *Storage {
	s.newId = gen
	return s
}

func (s *Storage) WithClock(now Clock) *Storage {
	s.now = now
	return s
}

func (s *Storage) timestamp() time.Time {
	return s.now().UTC()
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}

const foreignKeyViolation = "23503"

func isForeignKeyViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == foreignKeyViolation && pqErr.Constraint == constraint
}
