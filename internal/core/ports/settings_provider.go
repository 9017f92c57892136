package ports

import "github.com/AntonioJCosta/myshell/internal/core/domain/settings"

// SettingsProvider loads interpreter settings from a configuration source.
type SettingsProvider interface {
	GetSettings() (settings.Settings, error)
}
