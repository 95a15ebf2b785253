// Package mocks provides hand-written test doubles for the store
// interfaces and the auth services.
package mocks
