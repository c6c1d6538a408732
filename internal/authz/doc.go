// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

// Package authz enforces role permissions with an embedded Casbin RBAC
// model. The admin role inherits user and may also write providers.
package authz
