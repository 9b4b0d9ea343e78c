package normalizer

import (
	apperrors "misteri/pkg/errors"
	"misteri/pkg/model"
)

// NormalizeProfile builds the profile card view model. Login is passed
// through untouched; every other absent field takes its zero value so the
// caller never branches on null.
func NormalizeProfile(raw *model.RawProfile) (model.Profile, error) {
	if raw == nil {
		return model.Profile{}, apperrors.InvalidInput("profile payload is null")
	}

	return model.Profile{
		Login:           raw.Login,
		Name:            raw.Name,
		Bio:             raw.Bio,
		AvatarURL:       raw.AvatarURL,
		Followers:       NormalizeCount(raw.Followers),
		Following:       NormalizeCount(raw.Following),
		PublicRepoCount: NormalizeCount(raw.PublicRepoCount),
	}, nil
}

// NormalizeCount maps a missing count to 0 and clamps negatives to 0.
func NormalizeCount(count *int64) int64 {
	if count == nil || *count < 0 {
		return 0
	}
	return *count
}
