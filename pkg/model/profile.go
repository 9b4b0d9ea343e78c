package model

// RawProfile is a developer-profile API user record. A nil count means the
// field was null, missing or not a number.
type RawProfile struct {
	Login           string
	Name            string
	Bio             string
	AvatarURL       string
	Followers       *int64
	Following       *int64
	PublicRepoCount *int64
}

type Profile struct {
	Login           string `json:"login"`
	Name            string `json:"name"`
	Bio             string `json:"bio"`
	AvatarURL       string `json:"avatar_url"`
	Followers       int64  `json:"followers" validate:"min=0"`
	Following       int64  `json:"following" validate:"min=0"`
	PublicRepoCount int64  `json:"public_repos" validate:"min=0"`
}
