// test/mocks/mocks.go

// Package mocks contains generated mocks for the application's interfaces.
// To regenerate mocks, run `make mocks` from the root directory.
package mocks

//go:generate mockgen -source=../../internal/core/ports/batch_repository.go -destination=batch_repository_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/scheduler.go -destination=scheduler_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/notifier.go -destination=notifier_mock.go -package=mocks
