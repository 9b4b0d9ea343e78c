package repository

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"misteri/pkg/client"
	apperrors "misteri/pkg/errors"
)

const (
	RecipeAPI  = "recipe-api"
	ProfileAPI = "profile-api"
)

// Getter is the HTTP GET capability upstream repositories read through.
// *client.HttpClient satisfies it.
type Getter interface {
	GET(ctx context.Context, path string, query url.Values) (*client.Response, error)
}

// fetch returns the body of a 2xx answer. A 404 returns notFound when it is
// non-nil; every other failure is an upstream or timeout AppError.
func fetch(ctx context.Context, g Getter, api, path string, query url.Values, notFound error) ([]byte, error) {
	resp, err := g.GET(ctx, path, query)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, apperrors.Timeout(fmt.Sprintf("%s did not answer in time", api))
		}
		return nil, apperrors.Upstream(api, err)
	}

	if resp.StatusCode == http.StatusNotFound && notFound != nil {
		return nil, notFound
	}
	if !resp.OK() {
		return nil, apperrors.Upstream(api, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, path))
	}
	return resp.Body, nil
}

// badPayload reports an upstream body that could not be read as the
// expected shape. The INVALID_INPUT cause stays reachable through errors.Is.
func badPayload(api string, err error) error {
	if apperrors.IsInvalidInput(err) {
		return apperrors.Upstream(api, err)
	}
	return err
}
