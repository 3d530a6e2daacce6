// Package api contains the HTTP handlers for the service catalog along
// with the error-to-status mapping shared by all of them. Handlers
// orchestrate validation, store access, and response shaping; the guards
// in the middleware subpackage run before any handler is reached.
package api
