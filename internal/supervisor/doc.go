// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

/*
Package supervisor runs Maintainarr's long-lived services under a suture v4
tree.

	RootSupervisor ("maintainarr")
	├── MaintenanceSupervisor ("maintenance-layer")
	│   └── SessionSweeper
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A crashing sweeper is restarted without touching the HTTP listener. Supervisor
events are written through sutureslog into the zerolog stream.
*/
package supervisor
