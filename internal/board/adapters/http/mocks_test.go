package http_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	boardhttp "adboard/internal/board/adapters/http"
	"adboard/internal/board/config"
	"adboard/internal/board/domain/entities"
	"adboard/internal/board/domain/schema"
	"adboard/internal/board/ports/api"
)

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) CreateUser(ctx context.Context, payload schema.Payload) (int64, error) {
	args := m.Called(ctx, payload)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserService) GetUser(ctx context.Context, id int64) (*entities.UserSummary, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.UserSummary), args.Error(1)
}

func (m *mockUserService) DeleteUser(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockAdvertisementService struct {
	mock.Mock
}

func (m *mockAdvertisementService) CreateAdvertisement(ctx context.Context, ownerID int64, payload schema.Payload) (int64, error) {
	args := m.Called(ctx, ownerID, payload)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAdvertisementService) GetAdvertisement(ctx context.Context, id int64) (*entities.Advertisement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Advertisement), args.Error(1)
}

func (m *mockAdvertisementService) DeleteAdvertisement(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func newTestApp(users api.UserService, ads api.AdvertisementService) *fiber.App {
	app := boardhttp.NewApp(&config.HTTPConfig{})
	boardhttp.SetupRouter(app, users, ads)
	return app
}

type testResponse struct {
	status int
	header func(string) string
	body   string
}

func doRequest(t *testing.T, app *fiber.App, method, target, body string) testResponse {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return testResponse{status: resp.StatusCode, header: resp.Header.Get, body: string(raw)}
}

func newRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}
