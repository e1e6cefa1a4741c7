package services

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"myblog/pkg/models"
)

// Profile re-reads profile.json and resolves the avatar into a URL.
func (s *BlogStore) Profile() (models.Profile, error) {
	cfg, err := s.readProfileConfig()
	if err != nil {
		return models.Profile{}, err
	}
	return models.Profile{
		ID:        cfg.ID,
		Username:  cfg.Username,
		AvatarURL: BuildAvatarURL(cfg.Avatar, s.baseURL),
		Bio:       cfg.Bio,
		Email:     cfg.Email,
	}, nil
}

func (s *BlogStore) readProfileConfig() (models.ProfileConfig, error) {
	path := filepath.Join(s.dataRoot, profileFileName)
	content, err := os.ReadFile(path)
	if err != nil {
		s.logger.Error("profile config unreadable", "path", path, "error", err)
		return models.ProfileConfig{}, profileLoadError(path, err)
	}

	var cfg models.ProfileConfig
	if err := json.Unmarshal(content, &cfg); err != nil {
		s.logger.Error("profile config malformed", "path", path, "error", err)
		return models.ProfileConfig{}, profileLoadError(path, err)
	}
	return cfg, nil
}

// BuildAvatarURL maps an avatar path relative to the assets directory onto
// the public asset prefix, absolute when baseURL is set.
func BuildAvatarURL(avatar, baseURL string) string {
	if isBlank(avatar) {
		return ""
	}
	relative := AssetURLPrefix + normalizeRelativePath(avatar)

	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return relative
	}
	return strings.TrimSuffix(baseURL, "/") + relative
}

func normalizeRelativePath(path string) string {
	return strings.TrimLeft(strings.ReplaceAll(path, "\\", "/"), "/")
}
