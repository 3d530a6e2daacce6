// Package config defines the application's configuration structure and
// loads it from the environment at process start. The JWT signing secret
// lives here and is injected into the auth service, never read from
// globals elsewhere.
package config
