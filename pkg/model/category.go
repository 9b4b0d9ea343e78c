package model

type RawCategory struct {
	ID           string
	Name         string
	ThumbnailURL string
	Description  string
}

type Category struct {
	ID           string `json:"id"`
	Name         string `json:"name" validate:"clean_text"`
	ThumbnailURL string `json:"thumbnail_url"`
	Description  string `json:"description"`
}
