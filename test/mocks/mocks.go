// test/mocks/mocks.go

// Package mocks contains generated mocks for the application's interfaces.
// To regenerate mocks, run `make mocks` from the root directory.
package mocks

//go:generate mockgen -destination=repositories_mock.go -package=mocks github.com/haroldmz/stockdesk/internal/core/ports CustomerRepository,SupplierRepository,UserRepository,AuthRepository
//go:generate mockgen -destination=session_mock.go -package=mocks github.com/haroldmz/stockdesk/internal/core/ports Session
