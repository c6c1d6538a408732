// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

/*
Package auth implements cookie sessions and Plex sign-in.

Sessions live in a Store keyed by sid. SQLStore persists them in the
sessions table: Get treats rows with expiredAt <= now as missing, and every
Set removes a bounded batch of other expired rows. Concurrent purges may
overlap; a purge lost to a race is repeated by the next write.

The cookie (connect.sid by default) carries the sid inside an HS256 JWT
signed with SESSION_SECRET:

	signer, _ := auth.NewCookieSigner(cfg.Session.Secret)
	mgr := auth.NewManager(auth.NewSQLStore(db, cfg.Session.TTL, cfg.Session.PurgeBatch), signer,
		auth.ManagerConfig{TTL: cfg.Session.TTL})
	r.Use(mgr.Load)

PlexAuthenticator resolves a Plex token through plex.tv/users/account.
*/
package auth
