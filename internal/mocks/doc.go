// Package mocks provides hand-written test doubles for the catalog's
// service and store interfaces.
package mocks
