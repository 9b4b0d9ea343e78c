package service

import (
	"context"
	"errors"
	"strings"

	recipeserrors "misteri/internal/recipes/errors"
	"misteri/internal/recipes/repository"
	"misteri/internal/recipes/validator"
	"misteri/pkg/config"
	apperrors "misteri/pkg/errors"
	"misteri/pkg/model"
	"misteri/pkg/normalizer"
)

type ProfileService interface {
	GetByLogin(ctx context.Context, login string) (*model.Profile, error)
}

type profileService struct {
	repo      repository.ProfileRepository
	validator *validator.ViewValidator
	cfg       *config.Config
}

func NewProfileService(
	repo repository.ProfileRepository,
	validator *validator.ViewValidator,
	cfg *config.Config,
) ProfileService {
	return &profileService{
		repo:      repo,
		validator: validator,
		cfg:       cfg,
	}
}

func (s *profileService) GetByLogin(ctx context.Context, login string) (*model.Profile, error) {
	login = strings.TrimSpace(login)
	if login == "" {
		return nil, apperrors.InvalidInput("login is required")
	}

	raw, err := s.repo.FindByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, recipeserrors.ErrProfileNotFound) {
			return nil, apperrors.NotFoundWithID("Profile", login)
		}
		s.cfg.Log.Error("Failed to fetch profile", "login", login, "error", err)
		return nil, err
	}

	profile, err := normalizer.NormalizeProfile(raw)
	if err != nil {
		if apperrors.IsInvalidInput(err) {
			return nil, apperrors.Upstream(repository.ProfileAPI, err)
		}
		return nil, err
	}

	if err := s.validator.ValidateProfile(&profile); err != nil {
		s.cfg.Log.Error("Normalized profile failed validation", "login", login, "error", err)
		return nil, apperrors.Internal("Normalized profile failed validation", err)
	}

	return &profile, nil
}
