// Package mocks provides function-field test doubles for the service
// interfaces, so handler tests can script service behavior per case.
package mocks
