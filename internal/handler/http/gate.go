// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "strings"

// Decision is the outcome of classifying a request by path and session.
type Decision int

const (
	// Allow lets the request through.
	Allow Decision = iota
	// RedirectToLogin rejects a request for a protected path without a
	// valid session.
	RedirectToLogin
	// RedirectToHome sends an authenticated user away from a public-only
	// page to the landing page.
	RedirectToHome
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectToLogin:
		return "redirect_to_login"
	case RedirectToHome:
		return "redirect_to_home"
	}
	return "unknown"
}

// Paths the gate redirects to.
const (
	LoginPath = "/login"
	HomePath  = "/dashboard"
)

// protectedPrefixes need a valid session. A prefix matches itself and
// everything below it, so "/dashboard" covers "/dashboard/stats" but not
// "/dashboards".
var protectedPrefixes = []string{
	"/dashboard",
	"/data-entry",
	"/settings",
	"/api/transactions",
	"/api/dashboard",
	"/api/user",
}

// publicOnlyPaths make no sense with a session.
var publicOnlyPaths = []string{
	LoginPath,
	"/register",
}

// Classify decides what happens to a request for path given whether it
// carries a valid session. It has no side effects.
func Classify(path string, authenticated bool) Decision {
	path = cleanPath(path)

	for _, prefix := range protectedPrefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			if authenticated {
				return Allow
			}
			return RedirectToLogin
		}
	}

	for _, p := range publicOnlyPaths {
		if path == p && authenticated {
			return RedirectToHome
		}
	}

	return Allow
}

// isAPIPath reports whether path belongs to the JSON API, which is answered
// with status codes instead of redirects.
func isAPIPath(path string) bool {
	path = cleanPath(path)
	return path == "/api" || strings.HasPrefix(path, "/api/")
}

// cleanPath drops trailing slashes so that "/login/" is classified like
// "/login". The root stays "/".
func cleanPath(path string) string {
	trimmed := strings.TrimRight(path, "/")
	if trimmed == "" {
		return "/"
	}
	return trimmed
}
