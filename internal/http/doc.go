// Package http provides HTTP handlers and middleware for the meetline API.
//
// The router exposes the following endpoints:
//   - POST /api/auth/signin: authenticates a user. Body: {"email","password"}.
//     Response: {"user":{"id","email","name","initials"},"sessionToken"} with
//     the token also set as an http-only `session_token` cookie.
//   - POST /api/auth/signout: revokes the session token extracted from the
//     Authorization header or session cookie, clears the cookie, and returns
//     {"success":true}. Revocation is idempotent.
//   - GET /api/auth/me: returns the authenticated user for the presented
//     token, or 401 when no valid session exists.
//   - GET /api/event-types: lists event type templates in insertion order.
//     Public, no session required.
//   - POST /api/event-types: creates a template from the `eventTypeDTO`
//     payload defined in event_type_handler.go. Requires a session; returns
//     201 with the stored record or 400 naming the offending field.
//   - GET /api/meetings: derives and returns the synthetic meeting listing,
//     sorted by date and start time. Requires a session.
//   - GET /metrics: Prometheus scrape endpoint.
//
// Unmatched routes and unsupported methods answer 404 with
// {"error","path","method"}. Request/response DTOs live alongside their
// respective handlers so tests and documentation share the same ground truth.
package http
