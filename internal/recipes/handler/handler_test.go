package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"

	apperrors "misteri/pkg/errors"
	"misteri/pkg/logger"
	"misteri/pkg/model"
)

// Mock services for testing
type mockRecipeService struct {
	categoriesFunc func(ctx context.Context) ([]model.Category, error)
	byCategoryFunc func(ctx context.Context, category string) ([]model.RecipeSummary, error)
	searchFunc     func(ctx context.Context, query string) ([]model.Recipe, error)
	getByIDFunc    func(ctx context.Context, id string) (*model.Recipe, error)
	gachaFunc      func(ctx context.Context, count int) ([]model.Recipe, error)
}

func (m *mockRecipeService) Categories(ctx context.Context) ([]model.Category, error) {
	if m.categoriesFunc != nil {
		return m.categoriesFunc(ctx)
	}
	return []model.Category{}, nil
}

func (m *mockRecipeService) RecipesByCategory(ctx context.Context, category string) ([]model.RecipeSummary, error) {
	if m.byCategoryFunc != nil {
		return m.byCategoryFunc(ctx, category)
	}
	return []model.RecipeSummary{}, nil
}

func (m *mockRecipeService) Search(ctx context.Context, query string) ([]model.Recipe, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, query)
	}
	return []model.Recipe{}, nil
}

func (m *mockRecipeService) GetByID(ctx context.Context, id string) (*model.Recipe, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, apperrors.NotFoundWithID("Recipe", id)
}

func (m *mockRecipeService) Gacha(ctx context.Context, count int) ([]model.Recipe, error) {
	if m.gachaFunc != nil {
		return m.gachaFunc(ctx, count)
	}
	return []model.Recipe{}, nil
}

type mockProfileService struct {
	getByLoginFunc func(ctx context.Context, login string) (*model.Profile, error)
}

func (m *mockProfileService) GetByLogin(ctx context.Context, login string) (*model.Profile, error) {
	if m.getByLoginFunc != nil {
		return m.getByLoginFunc(ctx, login)
	}
	return nil, apperrors.NotFoundWithID("Profile", login)
}

func newRouter(recipes *mockRecipeService, profiles *mockProfileService) *httprouter.Router {
	log := logger.Discard()
	router := httprouter.New()
	NewRecipeHandler(recipes, log).RegisterRoutes(router)
	NewProfileHandler(profiles, log).RegisterRoutes(router)
	return router
}

func serve(router http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestGetByID(t *testing.T) {
	var gotID string
	router := newRouter(&mockRecipeService{
		getByIDFunc: func(ctx context.Context, id string) (*model.Recipe, error) {
			gotID = id
			return &model.Recipe{ID: id, Name: "Corba", Ingredients: []model.Ingredient{}, InstructionSteps: []string{}, Tags: []string{}}, nil
		},
	}, &mockProfileService{})

	rec := serve(router, "/api/v1/recipes/id/52977")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if gotID != "52977" {
		t.Errorf("id = %q", gotID)
	}

	var body struct {
		Data model.Recipe `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body.Data.Name != "Corba" {
		t.Errorf("name = %q", body.Data.Name)
	}
}

func TestErrorStatuses(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		err        error
		wantStatus int
	}{
		{"not found", "/api/v1/recipes/id/0", apperrors.NotFoundWithID("Recipe", "0"), http.StatusNotFound},
		{"upstream", "/api/v1/recipes/id/1", apperrors.Upstream("recipe-api", errors.New("bad")), http.StatusBadGateway},
		{"timeout", "/api/v1/recipes/id/2", apperrors.Timeout("slow"), http.StatusGatewayTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(&mockRecipeService{
				getByIDFunc: func(ctx context.Context, id string) (*model.Recipe, error) {
					return nil, tt.err
				},
			}, &mockProfileService{})

			rec := serve(router, tt.target)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestSearch_EmptyListEncoding(t *testing.T) {
	var gotQuery string
	router := newRouter(&mockRecipeService{
		searchFunc: func(ctx context.Context, query string) ([]model.Recipe, error) {
			gotQuery = query
			return []model.Recipe{}, nil
		},
	}, &mockProfileService{})

	rec := serve(router, "/api/v1/recipes/search?s=chicken+soup")

	if gotQuery != "chicken soup" {
		t.Errorf("query = %q", gotQuery)
	}
	if want := `{"data":[],"count":0}` + "\n"; rec.Body.String() != want {
		t.Errorf("body = %q, want %q", rec.Body.String(), want)
	}
}

func TestRandom_Count(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantCount  int
		wantStatus int
	}{
		{"default", "/api/v1/recipes/random", 0, http.StatusOK},
		{"explicit", "/api/v1/recipes/random?count=3", 3, http.StatusOK},
		{"not a number", "/api/v1/recipes/random?count=many", -1, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotCount := -1
			router := newRouter(&mockRecipeService{
				gachaFunc: func(ctx context.Context, count int) ([]model.Recipe, error) {
					gotCount = count
					return []model.Recipe{}, nil
				},
			}, &mockProfileService{})

			rec := serve(router, tt.target)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if gotCount != tt.wantCount {
				t.Errorf("count = %d, want %d", gotCount, tt.wantCount)
			}
		})
	}
}

func TestByCategory(t *testing.T) {
	var gotCategory string
	router := newRouter(&mockRecipeService{
		byCategoryFunc: func(ctx context.Context, category string) ([]model.RecipeSummary, error) {
			gotCategory = category
			return []model.RecipeSummary{{ID: "1", Name: "Beef Stew"}}, nil
		},
	}, &mockProfileService{})

	rec := serve(router, "/api/v1/categories/Beef/recipes")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if gotCategory != "Beef" {
		t.Errorf("category = %q", gotCategory)
	}

	var body struct {
		Data  []model.RecipeSummary `json:"data"`
		Count int                   `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body.Count != 1 || body.Data[0].Name != "Beef Stew" {
		t.Errorf("unexpected body: %+v", body)
	}
}

func TestCategories(t *testing.T) {
	router := newRouter(&mockRecipeService{
		categoriesFunc: func(ctx context.Context) ([]model.Category, error) {
			return []model.Category{{ID: "1", Name: "Beef"}}, nil
		},
	}, &mockProfileService{})

	rec := serve(router, "/api/v1/categories")
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestProfile(t *testing.T) {
	router := newRouter(&mockRecipeService{}, &mockProfileService{
		getByLoginFunc: func(ctx context.Context, login string) (*model.Profile, error) {
			return &model.Profile{Login: login, Followers: 3}, nil
		},
	})

	rec := serve(router, "/api/v1/profiles/octocat")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var body struct {
		Data map[string]any `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body.Data["login"] != "octocat" || body.Data["followers"] != float64(3) {
		t.Errorf("unexpected profile body: %v", body.Data)
	}
}

func TestProfile_NotFound(t *testing.T) {
	router := newRouter(&mockRecipeService{}, &mockProfileService{})

	if rec := serve(router, "/api/v1/profiles/ghost"); rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

type mockPinger struct {
	err error
}

func (m mockPinger) Ping(context.Context) error { return m.err }

func TestHealth(t *testing.T) {
	router := httprouter.New()
	NewHealthHandler(nil, logger.Discard()).RegisterRoutes(router)

	if rec := serve(router, "/health"); rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestReady(t *testing.T) {
	tests := []struct {
		name       string
		upstreams  map[string]Pinger
		wantStatus int
	}{
		{"all up", map[string]Pinger{"recipe-api": mockPinger{}}, http.StatusOK},
		{"one down", map[string]Pinger{"recipe-api": mockPinger{}, "profile-api": mockPinger{err: errors.New("down")}}, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := httprouter.New()
			NewHealthHandler(tt.upstreams, logger.Discard()).RegisterRoutes(router)

			rec := serve(router, "/ready")
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}
