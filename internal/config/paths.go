// ABOUTME: Standard filesystem paths for pi-intent configuration
// ABOUTME: Resolves ~/.pi-intent/ for global and .pi-intent/ for project-local settings

package config

import (
	"os"
	"path/filepath"
)

const (
	globalDirName  = ".pi-intent"
	projectDirName = ".pi-intent"
	settingsName   = "settings.yaml"
)

// GlobalDir returns the user-global config directory (~/.pi-intent/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// ProjectDir returns the project-local config directory.
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, projectDirName)
}

// GlobalConfigFile returns the path to the global settings file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), settingsName)
}

// ProjectConfigFile returns the path to the project-local settings file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), settingsName)
}
