package repository

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"strings"

	"company-ai/internal/models"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
)

// ProfileRepository reads the company profile and custom Q&A pairs from a
// TOML file.
type ProfileRepository struct {
	path   string
	logger *zap.Logger
}

func NewProfileRepository(path string, logger *zap.Logger) *ProfileRepository {
	return &ProfileRepository{
		path:   path,
		logger: logger,
	}
}

// LoadProfile reports found=false when the file is absent, unreadable,
// malformed or has no company name. The caller picks the defaults.
func (r *ProfileRepository) LoadProfile(ctx context.Context) (models.CompanyConfig, bool) {
	if r.path == "" {
		return models.CompanyConfig{}, false
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.logger.Info("Company profile not found, using defaults", zap.String("path", r.path))
		} else {
			r.logger.Warn("Failed to read company profile", zap.String("path", r.path), zap.Error(err))
		}
		return models.CompanyConfig{}, false
	}

	cfg, err := ParseProfile(data)
	if err != nil {
		r.logger.Warn("Invalid company profile, using defaults", zap.String("path", r.path), zap.Error(err))
		return models.CompanyConfig{}, false
	}

	r.logger.Info("Company profile loaded",
		zap.String("path", r.path),
		zap.String("company", cfg.Company.Name),
		zap.Int("custom_qa", len(cfg.CustomQA)),
	)
	return cfg, true
}

// ParseProfile decodes a TOML company profile. Unknown keys are rejected so
// typos surface instead of silently falling back to empty fields.
func ParseProfile(data []byte) (models.CompanyConfig, error) {
	var cfg models.CompanyConfig
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return models.CompanyConfig{}, err
	}
	if strings.TrimSpace(cfg.Company.Name) == "" {
		return models.CompanyConfig{}, errEmptyCompanyName
	}
	return cfg, nil
}

var errEmptyCompanyName = errors.New("company name is required")
