package repository

import (
	"context"
	"database/sql"
	"sync"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// Connector owns the process-wide MySQL connection pool. The pool is dialed
// lazily on first Get; concurrent first calls serialize on the mutex so only
// one dial happens. A failed dial is not cached, so the next Get retries.
type Connector struct {
	dsn string

	mu sync.Mutex
	db *sql.DB
}

// NewConnector creates a Connector for the given DSN without dialing.
func NewConnector(dsn string) *Connector {
	return &Connector{dsn: dsn}
}

// Get returns the cached connection pool, dialing it on first use.
func (c *Connector) Get(ctx context.Context) (*sql.DB, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db != nil {
		return c.db, nil
	}

	db, err := sql.Open("mysql", c.dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	c.db = db
	return c.db, nil
}

// Close tears down the cached pool. Safe to call when Get never succeeded.
func (c *Connector) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	return err
}
