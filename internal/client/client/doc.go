// Package client contains the transport side of the GymFeed client.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) for the
//     backend REST API: login and profile, the workout and post feeds,
//     workout details and comments, ranking and device token registration.
//  2. A concrete HTTP implementation (see HTTPClient) that talks JSON to the
//     versioned API prefix and attaches "Authorization: Bearer <token>" to
//     every authenticated call.
//
// # Error Handling
//
// Transport failures wrap ErrUnavailable. Non-2xx responses become *APIError,
// carrying the status and the "message" field of the JSON error body when
// present; 401 and 403 responses also match ErrUnauthorized with errors.Is.
// MessageOf turns any of these into a user-visible string.
//
// The token is an explicit argument: the session store owns it, and callers
// skip the request entirely when it is absent.
package client
