package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	appName      = "komikat"
	defaultLabel = "Default"
)

var ErrNoConfig = errors.New("no config selected")

// ConfigRoot is <user config dir>/komikat. XDG_CONFIG_HOME and APPDATA are
// honoured through os.UserConfigDir.
func ConfigRoot() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}

	return filepath.Join(dir, appName)
}

func ConfigsDir() string {
	return filepath.Join(ConfigRoot(), "configs")
}

func CurrentLabelFile() string {
	return filepath.Join(ConfigRoot(), "current_config")
}

func ProfilePath(label string) string {
	return filepath.Join(ConfigsDir(), label+".yaml")
}

func ensureDirs() error {
	return os.MkdirAll(ConfigsDir(), 0755)
}

func CurrentLabel() (string, error) {
	if err := ensureDirs(); err != nil {
		return "", err
	}

	b, err := os.ReadFile(CurrentLabelFile())
	if errors.Is(err, os.ErrNotExist) {
		return "", ErrNoConfig
	}
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(b)), nil
}

// ActiveConfigPath returns the YAML file of the selected profile or
// ErrNoConfig.
func ActiveConfigPath() (string, error) {
	label, err := CurrentLabel()
	if err != nil && !errors.Is(err, ErrNoConfig) {
		return "", err
	}
	if label == "" {
		return "", ErrNoConfig
	}

	return ProfilePath(label), nil
}

type ConfigInfo struct {
	Label  string
	Path   string
	Active bool
}

func ListConfigs() ([]ConfigInfo, error) {
	if err := ensureDirs(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(ConfigsDir())
	if err != nil {
		return nil, err
	}

	active, _ := CurrentLabel()
	var out []ConfigInfo

	for _, e := range entries {
		label, ok := strings.CutSuffix(e.Name(), ".yaml")
		if e.IsDir() || !ok {
			continue
		}

		out = append(out, ConfigInfo{
			Label:  label,
			Path:   ProfilePath(label),
			Active: label == active,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out, nil
}

func SwitchConfig(label string) error {
	if strings.TrimSpace(label) == "" {
		return errors.New("label cannot be empty")
	}
	if err := ensureDirs(); err != nil {
		return err
	}

	if _, err := os.Stat(ProfilePath(label)); err != nil {
		return fmt.Errorf("config %q does not exist", label)
	}

	return os.WriteFile(CurrentLabelFile(), []byte(label), 0644)
}

// RemoveConfig deletes a profile. Removing the active profile switches
// back to Default.
func RemoveConfig(label string) error {
	switch strings.TrimSpace(label) {
	case "":
		return errors.New("label cannot be empty")
	case defaultLabel:
		return errors.New("cannot remove the Default config")
	}

	path := ProfilePath(label)
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("config %q does not exist", label)
	}

	if active, _ := CurrentLabel(); active == label {
		if err := SwitchConfig(defaultLabel); err != nil {
			return fmt.Errorf("failed switching to Default: %w", err)
		}
	}

	return os.Remove(path)
}

// InitDefaultConfig writes Default.yaml when missing and activates it.
// os.ErrExist is returned alongside the path when it already existed.
func InitDefaultConfig() (string, error) {
	if err := ensureDirs(); err != nil {
		return "", err
	}

	path := ProfilePath(defaultLabel)
	_, statErr := os.Stat(path)

	if statErr != nil {
		if err := SaveYAML(DefaultConfig(), path); err != nil {
			return "", err
		}
	}

	if err := os.WriteFile(CurrentLabelFile(), []byte(defaultLabel), 0644); err != nil {
		return "", err
	}

	if statErr == nil {
		return path, os.ErrExist
	}

	return path, nil
}
