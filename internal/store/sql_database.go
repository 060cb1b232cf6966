package store

import (
	"github.com/MKhiriev/go-influo/migrations"
)

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
