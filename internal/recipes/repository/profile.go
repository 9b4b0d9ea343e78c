package repository

import (
	"context"
	"net/url"

	recipeserrors "misteri/internal/recipes/errors"
	"misteri/pkg/model"
	"misteri/pkg/payload"
)

type ProfileRepository interface {
	FindByLogin(ctx context.Context, login string) (*model.RawProfile, error)
}

type httpProfileRepository struct {
	api Getter
}

func NewHttpProfileRepository(api Getter) ProfileRepository {
	return &httpProfileRepository{api: api}
}

func (r *httpProfileRepository) FindByLogin(ctx context.Context, login string) (*model.RawProfile, error) {
	body, err := fetch(ctx, r.api, ProfileAPI, "/users/"+url.PathEscape(login), nil, recipeserrors.ErrProfileNotFound)
	if err != nil {
		return nil, err
	}
	profile, err := payload.DecodeProfile(body)
	if err != nil {
		return nil, badPayload(ProfileAPI, err)
	}
	return profile, nil
}
