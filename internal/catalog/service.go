package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/redis/go-redis/v9"
	"github.com/yuin/goldmark"

	"fitswitch/internal/logger"
	"fitswitch/internal/metrics"
)

// Backend is the slice of the FitSwitch API the catalog reads from.
type Backend interface {
	ListGyms(ctx context.Context, token string) ([]Gym, error)
	GetGym(ctx context.Context, token string, gymID int64) (*Gym, error)
	ListPlans(ctx context.Context, token string, gymID int64) ([]Plan, error)
	ListFacilities(ctx context.Context, token string, gymID int64) ([]Facility, error)
}

const (
	gymsCacheKey        = "catalog:gyms"
	plansCacheKeyPrefix = "catalog:gym:plans:"
	facsCacheKeyPrefix  = "catalog:gym:facilities:"

	gymDetailLRUSize = 256
)

// Service serves browse reads through a short-TTL Redis cache, with an
// in-process LRU for gym detail lookups. Cache trouble always degrades to a
// direct backend read, never to an error.
type Service struct {
	backend Backend
	redis   *redis.Client
	ttl     time.Duration
	gyms    *lru.Cache[int64, Gym]
}

func NewService(backend Backend, rdb *redis.Client, ttl time.Duration) *Service {
	cache, _ := lru.New[int64, Gym](gymDetailLRUSize)
	return &Service{
		backend: backend,
		redis:   rdb,
		ttl:     ttl,
		gyms:    cache,
	}
}

func (s *Service) ListGyms(ctx context.Context, token string) ([]Gym, error) {
	var cached []Gym
	if s.readCache(ctx, "gyms", gymsCacheKey, &cached) {
		return cached, nil
	}

	gyms, err := s.backend.ListGyms(ctx, token)
	if err != nil {
		return nil, err
	}

	s.writeCache(ctx, gymsCacheKey, gyms)
	for _, g := range gyms {
		s.gyms.Add(g.ID, g)
	}

	return gyms, nil
}

func (s *Service) GetGym(ctx context.Context, token string, gymID int64) (*Gym, error) {
	if g, ok := s.gyms.Get(gymID); ok {
		metrics.RecordCatalogCache("gym_detail", "hit")
		return &g, nil
	}
	metrics.RecordCatalogCache("gym_detail", "miss")

	g, err := s.backend.GetGym(ctx, token, gymID)
	if err != nil {
		return nil, err
	}

	s.gyms.Add(g.ID, *g)
	return g, nil
}

func (s *Service) ListPlans(ctx context.Context, token string, gymID int64) ([]Plan, error) {
	key := plansCacheKeyPrefix + strconv.FormatInt(gymID, 10)

	var cached []Plan
	if s.readCache(ctx, "plans", key, &cached) {
		return cached, nil
	}

	plans, err := s.backend.ListPlans(ctx, token, gymID)
	if err != nil {
		return nil, err
	}

	for i := range plans {
		plans[i].DescriptionHTML = renderMarkdown(plans[i].Description)
	}

	s.writeCache(ctx, key, plans)
	return plans, nil
}

func (s *Service) ListFacilities(ctx context.Context, token string, gymID int64) ([]Facility, error) {
	key := facsCacheKeyPrefix + strconv.FormatInt(gymID, 10)

	var cached []Facility
	if s.readCache(ctx, "facilities", key, &cached) {
		return cached, nil
	}

	facilities, err := s.backend.ListFacilities(ctx, token, gymID)
	if err != nil {
		return nil, err
	}

	for i := range facilities {
		facilities[i].DescriptionHTML = renderMarkdown(facilities[i].Description)
	}

	s.writeCache(ctx, key, facilities)
	return facilities, nil
}

// FindGymByName is the session resolver's directory lookup. Name matching is
// case-insensitive; the first match wins.
func (s *Service) FindGymByName(ctx context.Context, token, name string) (int64, bool, error) {
	gyms, err := s.ListGyms(ctx, token)
	if err != nil {
		return 0, false, err
	}

	for _, g := range gyms {
		if strings.EqualFold(g.GymName, name) {
			return g.ID, true, nil
		}
	}

	return 0, false, nil
}

func (s *Service) readCache(ctx context.Context, scope, key string, out interface{}) bool {
	if s.redis == nil {
		return false
	}

	data, err := s.redis.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Debug("catalog cache read failed", "key", key, "error", err.Error())
		}
		metrics.RecordCatalogCache(scope, "miss")
		return false
	}

	if err := json.Unmarshal(data, out); err != nil {
		metrics.RecordCatalogCache(scope, "miss")
		return false
	}

	metrics.RecordCatalogCache(scope, "hit")
	return true
}

func (s *Service) writeCache(ctx context.Context, key string, v interface{}) {
	if s.redis == nil {
		return
	}

	data, err := json.Marshal(v)
	if err != nil {
		return
	}

	if err := s.redis.Set(ctx, key, data, s.ttl).Err(); err != nil {
		logger.Debug("catalog cache write failed", "key", key, "error", err.Error())
	}
}

func renderMarkdown(md string) string {
	if md == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return ""
	}
	return buf.String()
}
