package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"contractor_pro/internal/domain/entities"
	mock_interfaces "contractor_pro/internal/usecase/interfaces/mocks"
	"contractor_pro/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// stubKV is an in-memory IKeyValueStore whose reads and writes can be made
// to fail.
type stubKV struct {
	mu       sync.Mutex
	values   map[string]string
	getErr   error
	setErr   error
	setCalls int
}

func newStubKV() *stubKV {
	return &stubKV{values: map[string]string{}}
}

func (s *stubKV) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return "", false, s.getErr
	}
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *stubKV) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setCalls++
	if s.setErr != nil {
		return s.setErr
	}
	s.values[key] = value
	return nil
}

func (s *stubKV) raw(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[key]
}

func (s *stubKV) put(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

func (s *stubKV) failWrites(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setErr = err
}

func TestStorage_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewStorage(newStubKV(), logger.Discard())

	clients := []entities.Client{{ID: "c1", Name: "Ann", Email: "ann@example.com"}}
	require.NoError(t, SaveItem(ctx, s, entities.StorageKeyClients, clients))

	got := LoadItem(ctx, s, entities.StorageKeyClients, []entities.Client{})
	assert.Equal(t, clients, got)
}

func TestStorage_EmptySliceRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := newStubKV()
	s := NewStorage(kv, logger.Discard())

	require.NoError(t, SaveItem(ctx, s, entities.StorageKeyPhotos, []entities.Photo{}))
	assert.Equal(t, "[]", kv.raw("photos"))

	got := LoadItem(ctx, s, entities.StorageKeyPhotos, []entities.Photo(nil))
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestStorage_LoadFallbacks(t *testing.T) {
	ctx := context.Background()
	fallback := []entities.Estimate{{ID: "fallback"}}

	cases := []struct {
		name  string
		key   entities.StorageKey
		setup func(kv *stubKV)
	}{
		{name: "absent", key: entities.StorageKeyEstimates, setup: func(*stubKV) {}},
		{name: "empty text", key: entities.StorageKeyEstimates, setup: func(kv *stubKV) { kv.put("estimates", "  ") }},
		{name: "json null", key: entities.StorageKeyEstimates, setup: func(kv *stubKV) { kv.put("estimates", "null") }},
		{name: "corrupt", key: entities.StorageKeyEstimates, setup: func(kv *stubKV) { kv.put("estimates", "{not json") }},
		{name: "wrong shape", key: entities.StorageKeyEstimates, setup: func(kv *stubKV) { kv.put("estimates", `{"id":"x"}`) }},
		{name: "read error", key: entities.StorageKeyEstimates, setup: func(kv *stubKV) { kv.getErr = errors.New("io") }},
		{name: "unknown key", key: entities.StorageKey("invoices"), setup: func(kv *stubKV) { kv.put("invoices", "[]") }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			kv := newStubKV()
			tc.setup(kv)
			s := NewStorage(kv, logger.Discard())

			got := LoadItem(ctx, s, tc.key, fallback)
			assert.Equal(t, fallback, got)
		})
	}
}

func TestStorage_SaveErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown key", func(t *testing.T) {
		kv := newStubKV()
		s := NewStorage(kv, logger.Discard())
		err := SaveItem(ctx, s, entities.StorageKey("invoices"), []int{})
		assert.ErrorIs(t, err, ErrUnknownStorageKey)
		assert.Zero(t, kv.setCalls)
	})

	t.Run("write failure", func(t *testing.T) {
		cause := errors.New("quota exceeded")
		kv := newStubKV()
		kv.failWrites(cause)
		s := NewStorage(kv, logger.Discard())
		err := SaveItem(ctx, s, entities.StorageKeyClients, []entities.Client{})
		assert.ErrorIs(t, err, cause)
	})

	t.Run("unencodable value", func(t *testing.T) {
		s := NewStorage(newStubKV(), logger.Discard())
		err := SaveItem(ctx, s, entities.StorageKeyJobs, map[string]interface{}{"f": func() {}})
		assert.Error(t, err)
	})
}

func TestNewStorage_PanicsWithoutStore(t *testing.T) {
	assert.Panics(t, func() { NewStorage(nil, logger.Discard()) })
}

func TestStorage_WritesJSONUnderKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	kv := mock_interfaces.NewMockIKeyValueStore(ctrl)
	s := NewStorage(kv, logger.Discard())

	kv.EXPECT().Set(gomock.Any(), "estimates", "[]").Return(nil)
	kv.EXPECT().Get(gomock.Any(), "estimates").Return("[]", true, nil)

	require.NoError(t, SaveItem(context.Background(), s, entities.StorageKeyEstimates, []entities.Estimate{}))
	got := LoadItem(context.Background(), s, entities.StorageKeyEstimates, []entities.Estimate(nil))
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
