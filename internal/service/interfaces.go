// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of go-user-gateway: the
// pass-through gateway to the upstream microservice and the user registry.
package service

import (
	"context"

	"github.com/MKhiriev/go-user-gateway/internal/adapter"
	"github.com/MKhiriev/go-user-gateway/models"
)

// GatewayService calls the configured upstream microservice.
type GatewayService interface {
	// Fetch issues GET <baseURL>/<endpoint>?<query> and decodes the JSON
	// answer. Every failure is an [*adapter.CallError].
	Fetch(ctx context.Context, endpoint string, query adapter.Query) (models.UpstreamResponse, error)
}

// UserService manages user accounts.
type UserService interface {
	// Create validates req, hashes the password and stores the user.
	Create(ctx context.Context, req models.UserRequest) (models.User, error)

	// List returns every user ordered by ID.
	List(ctx context.Context) ([]models.User, error)

	// Get returns the user with the given ID.
	Get(ctx context.Context, id int64) (models.User, error)

	// Update changes only the fields present in req.
	Update(ctx context.Context, id int64, req models.UserRequest) (models.User, error)
}

type AppInfoService interface {
	GetAppBuildInfo(ctx context.Context) models.AppBuildInfo
}
