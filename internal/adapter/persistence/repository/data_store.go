package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"contractor_pro/internal/domain/entities"
	"contractor_pro/internal/infrastructure/metrics"
	"contractor_pro/internal/infrastructure/retry"
	"contractor_pro/internal/usecase/interfaces"
	"contractor_pro/pkg/logger"

	"github.com/google/uuid"
)

// DataStore owns the client, estimate and photo collections.
//
// Every add mutates memory first and then rewrites the whole owning
// collection through Storage. Writes of one collection are serialized and
// always encode the latest snapshot, so the last write wins with every add
// included.
type DataStore struct {
	storage *Storage
	log     logger.Logger
	retry   *retry.Config
	now     func() time.Time
	newID   func() string

	mu        sync.RWMutex
	clients   []entities.Client
	estimates []entities.Estimate
	photos    []entities.Photo
	ready     bool

	persistMu map[entities.StorageKey]*sync.Mutex
}

var _ interfaces.IDataStore = (*DataStore)(nil)

// persistTimeout bounds one collection write, retries included.
const persistTimeout = 30 * time.Second

type Option func(*DataStore)

func WithClock(now func() time.Time) Option {
	return func(s *DataStore) { s.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(s *DataStore) { s.newID = newID }
}

func WithRetry(cfg *retry.Config) Option {
	return func(s *DataStore) { s.retry = cfg }
}

func NewDataStore(kv interfaces.IKeyValueStore, log logger.Logger, opts ...Option) *DataStore {
	s := &DataStore{
		storage:   NewStorage(kv, log),
		log:       log.WithComponent("datastore"),
		retry:     retry.DefaultConfig(),
		now:       time.Now,
		newID:     uuid.NewString,
		clients:   []entities.Client{},
		estimates: []entities.Estimate{},
		photos:    []entities.Photo{},
		persistMu: map[entities.StorageKey]*sync.Mutex{
			entities.StorageKeyClients:   {},
			entities.StorageKeyEstimates: {},
			entities.StorageKeyPhotos:    {},
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize loads the three collections concurrently and replaces the
// in-memory state with what was stored. Missing or corrupt collections load
// as empty.
func (s *DataStore) Initialize(ctx context.Context) error {
	var (
		wg        sync.WaitGroup
		clients   []entities.Client
		estimates []entities.Estimate
		photos    []entities.Photo
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		clients = LoadItem(ctx, s.storage, entities.StorageKeyClients, []entities.Client{})
	}()
	go func() {
		defer wg.Done()
		estimates = LoadItem(ctx, s.storage, entities.StorageKeyEstimates, []entities.Estimate{})
	}()
	go func() {
		defer wg.Done()
		photos = LoadItem(ctx, s.storage, entities.StorageKeyPhotos, []entities.Photo{})
	}()
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	s.clients = nonNil(clients)
	s.estimates = nonNil(estimates)
	s.photos = nonNil(photos)
	s.ready = true
	s.mu.Unlock()

	metrics.CollectionSize.WithLabelValues(entities.StorageKeyClients.String()).Set(float64(len(clients)))
	metrics.CollectionSize.WithLabelValues(entities.StorageKeyEstimates.String()).Set(float64(len(estimates)))
	metrics.CollectionSize.WithLabelValues(entities.StorageKeyPhotos.String()).Set(float64(len(photos)))

	s.log.WithFields(map[string]interface{}{
		"clients":   len(clients),
		"estimates": len(estimates),
		"photos":    len(photos),
	}).Infof("collections loaded")
	return nil
}

// Ready reports whether Initialize has completed.
func (s *DataStore) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

func (s *DataStore) Clients() []entities.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.Client, len(s.clients))
	copy(out, s.clients)
	return out
}

func (s *DataStore) Estimates() []entities.Estimate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.Estimate, len(s.estimates))
	for i, e := range s.estimates {
		e.LineItems = append([]entities.EstimateLineItem{}, e.LineItems...)
		out[i] = e
	}
	return out
}

// Photos returns the photos newest first.
func (s *DataStore) Photos() []entities.Photo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.Photo, len(s.photos))
	copy(out, s.photos)
	return out
}

func (s *DataStore) AddClient(ctx context.Context, c entities.Client) (entities.Client, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return entities.Client{}, entities.ErrInvalidClientName
	}

	now := s.now().UTC()
	c.ID = s.newID()
	c.CreatedAt = now
	c.UpdatedAt = now

	s.mu.Lock()
	s.clients = append(s.clients, c)
	n := len(s.clients)
	s.mu.Unlock()

	s.added("client", entities.StorageKeyClients, n)
	s.log.WithFields(map[string]interface{}{"client_id": c.ID}).Debugf("client added")
	return c, s.persist(ctx, entities.StorageKeyClients)
}

// AddEstimate stores the estimate as given: amounts are not recomputed. A
// blank status becomes draft.
func (s *DataStore) AddEstimate(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	e.Title = strings.TrimSpace(e.Title)
	if e.Title == "" {
		return entities.Estimate{}, entities.ErrInvalidEstimateTitle
	}
	if e.Status == "" {
		e.Status = entities.EstimateStatusDraft
	}
	if !e.Status.IsValid() {
		return entities.Estimate{}, fmt.Errorf("%w: %q", entities.ErrInvalidEstimateStatus, e.Status)
	}

	items := make([]entities.EstimateLineItem, len(e.LineItems))
	for i, li := range e.LineItems {
		if li.ID == "" {
			li.ID = s.newID()
		}
		items[i] = li
	}
	e.LineItems = items

	now := s.now().UTC()
	e.ID = s.newID()
	e.CreatedAt = now
	e.UpdatedAt = now

	s.mu.Lock()
	s.estimates = append(s.estimates, e)
	n := len(s.estimates)
	s.mu.Unlock()

	s.added("estimate", entities.StorageKeyEstimates, n)
	s.log.WithFields(map[string]interface{}{"estimate_id": e.ID, "client_id": e.ClientID}).Debugf("estimate added")
	return e, s.persist(ctx, entities.StorageKeyEstimates)
}

// AddPhoto puts the photo in front of the collection.
func (s *DataStore) AddPhoto(ctx context.Context, p entities.Photo) (entities.Photo, error) {
	p.URI = strings.TrimSpace(p.URI)
	if p.URI == "" {
		return entities.Photo{}, entities.ErrInvalidPhotoURI
	}
	if !p.PhotoType.IsValid() {
		return entities.Photo{}, fmt.Errorf("%w: %q", entities.ErrInvalidPhotoType, p.PhotoType)
	}

	p.ID = s.newID()
	p.CreatedAt = s.now().UTC()

	s.mu.Lock()
	s.photos = append([]entities.Photo{p}, s.photos...)
	n := len(s.photos)
	s.mu.Unlock()

	s.added("photo", entities.StorageKeyPhotos, n)
	s.log.WithFields(map[string]interface{}{"photo_id": p.ID}).Debugf("photo added")
	return p, s.persist(ctx, entities.StorageKeyPhotos)
}

func (s *DataStore) added(entity string, key entities.StorageKey, size int) {
	metrics.EntitiesAddedTotal.WithLabelValues(entity).Inc()
	metrics.CollectionSize.WithLabelValues(key.String()).Set(float64(size))
}

// persist rewrites the collection under key. The write is detached from
// ctx cancellation so an accepted add reaches storage even when the caller
// goes away. A failure is logged and returned wrapped in ErrPersistFailed;
// memory is left as is.
func (s *DataStore) persist(ctx context.Context, key entities.StorageKey) error {
	pm := s.persistMu[key]
	pm.Lock()
	defer pm.Unlock()

	pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
	defer cancel()

	start := time.Now()
	err := retry.Do(pctx, s.retry, s.log, "persist "+key.String(), func(ctx context.Context) error {
		return s.saveSnapshot(ctx, key)
	})
	metrics.PersistWriteDuration.WithLabelValues(key.String()).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.PersistWritesTotal.WithLabelValues(key.String(), "error").Inc()
		s.log.WithFields(map[string]interface{}{"key": key.String()}).WithError(err).
			Errorf("collection write failed; in-memory state is ahead of storage")
		return fmt.Errorf("%w: %w", entities.ErrPersistFailed, err)
	}
	metrics.PersistWritesTotal.WithLabelValues(key.String(), "ok").Inc()
	return nil
}

func (s *DataStore) saveSnapshot(ctx context.Context, key entities.StorageKey) error {
	switch key {
	case entities.StorageKeyClients:
		return SaveItem(ctx, s.storage, key, s.Clients())
	case entities.StorageKeyEstimates:
		return SaveItem(ctx, s.storage, key, s.Estimates())
	case entities.StorageKeyPhotos:
		return SaveItem(ctx, s.storage, key, s.Photos())
	}
	return fmt.Errorf("%w: %q", ErrUnknownStorageKey, key)
}

func nonNil[T any](v []T) []T {
	if v == nil {
		return []T{}
	}
	return v
}
