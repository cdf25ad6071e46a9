package ports

import "go.trai.ch/reqlock/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load walks up from cwd looking for the config file. It returns the default
	// configuration when none is found.
	Load(cwd string) (*domain.Config, error)
}
