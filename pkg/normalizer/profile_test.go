package normalizer

import (
	"errors"
	"reflect"
	"testing"

	apperrors "misteri/pkg/errors"
	"misteri/pkg/model"
)

func count(n int64) *int64 {
	return &n
}

func TestNormalizeProfile(t *testing.T) {
	tests := []struct {
		name  string
		input *model.RawProfile
		want  model.Profile
	}{
		{
			name:  "null counts and strings coerced",
			input: &model.RawProfile{Login: "abc", Following: count(7)},
			want:  model.Profile{Login: "abc", Followers: 0, Following: 7},
		},
		{
			name: "all fields present",
			input: &model.RawProfile{
				Login:           "anotherimm",
				Name:            "Imam",
				Bio:             "Mobile dev",
				AvatarURL:       "https://avatars.githubusercontent.com/u/1",
				Followers:       count(12),
				Following:       count(3),
				PublicRepoCount: count(40),
			},
			want: model.Profile{
				Login:           "anotherimm",
				Name:            "Imam",
				Bio:             "Mobile dev",
				AvatarURL:       "https://avatars.githubusercontent.com/u/1",
				Followers:       12,
				Following:       3,
				PublicRepoCount: 40,
			},
		},
		{
			name:  "missing login stays empty",
			input: &model.RawProfile{},
			want:  model.Profile{},
		},
		{
			name:  "login passed through as-is",
			input: &model.RawProfile{Login: " Mixed-Case "},
			want:  model.Profile{Login: " Mixed-Case "},
		},
		{
			name:  "negative counts clamped",
			input: &model.RawProfile{Login: "x", Followers: count(-5)},
			want:  model.Profile{Login: "x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeProfile(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeProfile() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNormalizeProfile_NilIsInvalidInput(t *testing.T) {
	_, err := NormalizeProfile(nil)
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
}

func TestNormalizeCount(t *testing.T) {
	if got := NormalizeCount(nil); got != 0 {
		t.Errorf("NormalizeCount(nil) = %d, want 0", got)
	}
	if got := NormalizeCount(count(9)); got != 9 {
		t.Errorf("NormalizeCount(9) = %d, want 9", got)
	}
}
