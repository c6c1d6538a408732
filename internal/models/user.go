// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

package models

import "time"

// UserType records how an account authenticates.
type UserType int

// User types.
const (
	UserTypePlex  UserType = 1
	UserTypeLocal UserType = 2
)

// Roles used by the authorization layer.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is a dashboard account. PlexToken is write-only: it is stored but
// never serialized.
type User struct {
	ID           int64     `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PlexUsername *string   `json:"plexUsername,omitempty" db:"plex_username"`
	PlexID       *int64    `json:"plexId,omitempty" db:"plex_id"`
	PlexToken    *string   `json:"-" db:"plex_token"`
	Avatar       *string   `json:"avatar,omitempty" db:"avatar"`
	UserType     UserType  `json:"userType" db:"user_type"`
	IsActive     bool      `json:"isActive" db:"is_active"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// PublicUser is the representation returned by the auth endpoints.
type PublicUser struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PlexUsername *string   `json:"plexUsername,omitempty"`
	PlexID       *int64    `json:"plexId,omitempty"`
	Avatar       *string   `json:"avatar,omitempty"`
	UserType     UserType  `json:"userType"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Role returns the authorization role of u. The first account created on an
// instance owns it.
func (u *User) Role() string {
	if u.ID == 1 {
		return RoleAdmin
	}
	return RoleUser
}

// Public strips credentials from u.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:           u.ID,
		Email:        u.Email,
		PlexUsername: u.PlexUsername,
		PlexID:       u.PlexID,
		Avatar:       u.Avatar,
		UserType:     u.UserType,
		Role:         u.Role(),
		IsActive:     u.IsActive,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
