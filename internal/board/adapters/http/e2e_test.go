package http_test

import (
	"context"
	"net/http"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"adboard/internal/board/adapters/cache"
	"adboard/internal/board/adapters/services"
	"adboard/internal/board/app"
	"adboard/internal/board/domain/entities"
	"adboard/internal/board/ports/repositories"
)

// memoryStore - хранилище в памяти с семантикой единицы работы:
// изменения видны другим запросам только после успешного fn.
type memoryStore struct {
	mu      sync.Mutex
	users   map[int64]entities.User
	ads     map[int64]entities.Advertisement
	nextUID int64
	nextAID int64
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users: make(map[int64]entities.User),
		ads:   make(map[int64]entities.Advertisement),
	}
}

func (s *memoryStore) Do(ctx context.Context, fn func(ctx context.Context, repos repositories.Repositories) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memoryTx{users: clone(s.users), ads: clone(s.ads), nextUID: s.nextUID, nextAID: s.nextAID}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	s.users, s.ads, s.nextUID, s.nextAID = tx.users, tx.ads, tx.nextUID, tx.nextAID
	return nil
}

func clone[V any](m map[int64]V) map[int64]V {
	out := make(map[int64]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

type memoryTx struct {
	users   map[int64]entities.User
	ads     map[int64]entities.Advertisement
	nextUID int64
	nextAID int64
}

func (tx *memoryTx) Users() repositories.UserRepository { return memoryUsers{tx} }

func (tx *memoryTx) Advertisements() repositories.AdvertisementRepository { return memoryAds{tx} }

type memoryUsers struct{ tx *memoryTx }

func (r memoryUsers) Create(_ context.Context, user *entities.User) (int64, error) {
	for _, existing := range r.tx.users {
		if existing.Username == user.Username {
			return 0, entities.ErrUsernameTaken
		}
	}
	r.tx.nextUID++
	stored := *user
	stored.ID = r.tx.nextUID
	r.tx.users[stored.ID] = stored
	return stored.ID, nil
}

func (r memoryUsers) FindByID(_ context.Context, id int64) (*entities.User, error) {
	user, ok := r.tx.users[id]
	if !ok {
		return nil, entities.ErrUserNotFound
	}
	return &user, nil
}

func (r memoryUsers) Delete(_ context.Context, id int64) error {
	if _, ok := r.tx.users[id]; !ok {
		return entities.ErrUserNotFound
	}
	delete(r.tx.users, id)
	return nil
}

type memoryAds struct{ tx *memoryTx }

func (r memoryAds) Create(_ context.Context, adv *entities.Advertisement) (int64, error) {
	if _, ok := r.tx.users[adv.OwnerID]; !ok {
		return 0, entities.ErrAdvertisementRejected
	}
	r.tx.nextAID++
	stored := *adv
	stored.ID = r.tx.nextAID
	stored.CreatedAt = time.Now().UTC()
	r.tx.ads[stored.ID] = stored
	return stored.ID, nil
}

func (r memoryAds) FindByID(_ context.Context, id int64) (*entities.Advertisement, error) {
	adv, ok := r.tx.ads[id]
	if !ok {
		return nil, entities.ErrAdvertisementNotFound
	}
	return &adv, nil
}

func (r memoryAds) Delete(_ context.Context, id int64) error {
	if _, ok := r.tx.ads[id]; !ok {
		return entities.ErrAdvertisementNotFound
	}
	delete(r.tx.ads, id)
	return nil
}

func (r memoryAds) CountByOwner(_ context.Context, ownerID int64) (int, error) {
	count := 0
	for _, adv := range r.tx.ads {
		if adv.OwnerID == ownerID {
			count++
		}
	}
	return count, nil
}

func (r memoryAds) DeleteByOwner(_ context.Context, ownerID int64) ([]int64, error) {
	var ids []int64
	for id, adv := range r.tx.ads {
		if adv.OwnerID == ownerID {
			ids = append(ids, id)
			delete(r.tx.ads, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func TestBoardFlow(t *testing.T) {
	store := newMemoryStore()
	factory := services.NewServiceFactory(bcrypt.MinCost)
	noop := cache.NewNoop()
	board := newTestApp(
		app.NewUserUseCase(store, factory.Validator(), noop),
		app.NewAdvertisementUseCase(store, factory.Validator(), noop),
	)

	resp := doRequest(t, board, http.MethodPost, "/user/", `{"username":"bob","password":"longenough1"}`)
	require.Equal(t, http.StatusCreated, resp.status)
	assert.JSONEq(t, `{"status":"created","id":1}`, resp.body)
	assert.NotEqual(t, "longenough1", store.users[1].PasswordHash)

	resp = doRequest(t, board, http.MethodGet, "/user/1", "")
	require.Equal(t, http.StatusOK, resp.status)
	assert.JSONEq(t, `{"username":"bob","advertisements":0}`, resp.body)

	resp = doRequest(t, board, http.MethodPost, "/user/1/adv/", `{"headline":"selling my old car","description":"still works"}`)
	require.Equal(t, http.StatusCreated, resp.status)
	assert.JSONEq(t, `{"status":"created","id":1}`, resp.body)

	resp = doRequest(t, board, http.MethodGet, "/user/1", "")
	assert.JSONEq(t, `{"username":"bob","advertisements":1}`, resp.body)

	resp = doRequest(t, board, http.MethodDelete, "/adv/1", "")
	require.Equal(t, http.StatusOK, resp.status)
	assert.JSONEq(t, `{"adv_id":1,"status":"deleted"}`, resp.body)

	resp = doRequest(t, board, http.MethodGet, "/adv/1", "")
	assert.Equal(t, http.StatusNotFound, resp.status)
	assert.JSONEq(t, `{"status":"error","message":"Advertisement not found"}`, resp.body)
}

func TestBoardRules(t *testing.T) {
	store := newMemoryStore()
	factory := services.NewServiceFactory(bcrypt.MinCost)
	noop := cache.NewNoop()
	board := newTestApp(
		app.NewUserUseCase(store, factory.Validator(), noop),
		app.NewAdvertisementUseCase(store, factory.Validator(), noop),
	)

	t.Run("short password", func(t *testing.T) {
		resp := doRequest(t, board, http.MethodPost, "/user/", `{"username":"amy","password":"12345678"}`)

		assert.Equal(t, http.StatusBadRequest, resp.status)
		assert.JSONEq(t, `{"status":"error","message":[{"loc":["password"],"msg":"password too short","type":"value_error"}]}`, resp.body)
	})

	t.Run("duplicate username", func(t *testing.T) {
		first := doRequest(t, board, http.MethodPost, "/user/", `{"username":"amy","password":"123456789"}`)
		second := doRequest(t, board, http.MethodPost, "/user/", `{"username":"amy","password":"123456789"}`)

		assert.Equal(t, http.StatusCreated, first.status)
		assert.Equal(t, http.StatusBadRequest, second.status)
		assert.JSONEq(t, `{"status":"error","message":"User already exists"}`, second.body)
	})

	t.Run("advertisement for unknown user", func(t *testing.T) {
		resp := doRequest(t, board, http.MethodPost, "/user/99/adv/", `{"headline":"x"}`)

		assert.Equal(t, http.StatusNotFound, resp.status)
		assert.JSONEq(t, `{"status":"error","message":"User not found"}`, resp.body)
	})

	t.Run("headline boundary", func(t *testing.T) {
		short := doRequest(t, board, http.MethodPost, "/user/1/adv/", `{"headline":"0123456789"}`)
		long := doRequest(t, board, http.MethodPost, "/user/1/adv/", `{"headline":"0123456789a"}`)

		assert.Equal(t, http.StatusBadRequest, short.status)
		assert.Equal(t, http.StatusCreated, long.status)
	})

	t.Run("deleting user removes advertisements", func(t *testing.T) {
		resp := doRequest(t, board, http.MethodDelete, "/user/1", "")
		require.Equal(t, http.StatusOK, resp.status)
		assert.JSONEq(t, `{"user_id":1,"status":"deleted"}`, resp.body)

		assert.Equal(t, http.StatusNotFound, doRequest(t, board, http.MethodGet, "/user/1", "").status)
		assert.Equal(t, http.StatusNotFound, doRequest(t, board, http.MethodGet, "/adv/1", "").status)
	})
}
