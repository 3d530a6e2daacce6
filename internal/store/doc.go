// Package store defines the persistence interfaces and error taxonomy for
// the service catalog. Implementations live under internal/platform.
package store
