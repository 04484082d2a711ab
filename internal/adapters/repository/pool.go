package repository

import "database/sql"

type PoolOptions struct {
	MaxOpenConns int
	MaxIdleConns int
}

func (o PoolOptions) Apply(db *sql.DB) {
	if o.MaxOpenConns > 0 {
		db.SetMaxOpenConns(o.MaxOpenConns)
	}
	if o.MaxIdleConns > 0 {
		db.SetMaxIdleConns(o.MaxIdleConns)
	}
}
