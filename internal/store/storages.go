// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store contains the PostgreSQL data-access layer: one repository
// per aggregate (users, password-reset tickets, posts, follow graph), each
// behind an interface so the service layer can be tested against mocks.
package store

import "github.com/MKhiriev/go-influo/internal/logger"

// Storages bundles every repository behind its interface. The service layer
// receives this struct and never touches *sql.DB directly.
type Storages struct {
	Users   UserRepository
	Resets  ResetRepository
	Posts   PostRepository
	Follows FollowRepository
}

// NewStorages wires all repositories to the shared database connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	logger.Debug().Msg("creating storages")
	return &Storages{
		Users:   NewUserRepository(db, logger),
		Resets:  NewResetRepository(db, logger),
		Posts:   NewPostRepository(db, logger),
		Follows: NewFollowRepository(db, logger),
	}
}
