package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBackend struct{ mock.Mock }

func (m *MockBackend) ListGyms(ctx context.Context, token string) ([]Gym, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Gym), args.Error(1)
}

func (m *MockBackend) GetGym(ctx context.Context, token string, gymID int64) (*Gym, error) {
	args := m.Called(ctx, token, gymID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Gym), args.Error(1)
}

func (m *MockBackend) ListPlans(ctx context.Context, token string, gymID int64) ([]Plan, error) {
	args := m.Called(ctx, token, gymID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Plan), args.Error(1)
}

func (m *MockBackend) ListFacilities(ctx context.Context, token string, gymID int64) ([]Facility, error) {
	args := m.Called(ctx, token, gymID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Facility), args.Error(1)
}

var testGyms = []Gym{
	{ID: 1, GymName: "Iron Temple", City: "Pune", Active: true},
	{ID: 2, GymName: "FitZone", City: "Mumbai", Active: true},
}

func TestListGyms_CacheMiss_FetchesAndCaches(t *testing.T) {
	backend := new(MockBackend)
	rdb, rmock := redismock.NewClientMock()
	svc := NewService(backend, rdb, time.Minute)

	backend.On("ListGyms", mock.Anything, "tok").Return(testGyms, nil)

	data, err := json.Marshal(testGyms)
	require.NoError(t, err)
	rmock.ExpectGet(gymsCacheKey).RedisNil()
	rmock.ExpectSet(gymsCacheKey, data, time.Minute).SetVal("OK")

	gyms, err := svc.ListGyms(context.Background(), "tok")
	require.NoError(t, err)
	assert.Len(t, gyms, 2)
	require.NoError(t, rmock.ExpectationsWereMet())
}

func TestListGyms_CacheHit_SkipsBackend(t *testing.T) {
	backend := new(MockBackend)
	rdb, rmock := redismock.NewClientMock()
	svc := NewService(backend, rdb, time.Minute)

	data, err := json.Marshal(testGyms)
	require.NoError(t, err)
	rmock.ExpectGet(gymsCacheKey).SetVal(string(data))

	gyms, err := svc.ListGyms(context.Background(), "tok")
	require.NoError(t, err)
	assert.Len(t, gyms, 2)
	backend.AssertNotCalled(t, "ListGyms")
}

func TestListGyms_RedisDown_DegradesToBackend(t *testing.T) {
	backend := new(MockBackend)
	rdb, rmock := redismock.NewClientMock()
	svc := NewService(backend, rdb, time.Minute)

	backend.On("ListGyms", mock.Anything, "tok").Return(testGyms, nil)
	rmock.ExpectGet(gymsCacheKey).SetErr(errors.New("connection refused"))

	data, err := json.Marshal(testGyms)
	require.NoError(t, err)
	rmock.ExpectSet(gymsCacheKey, data, time.Minute).SetErr(errors.New("connection refused"))

	gyms, err := svc.ListGyms(context.Background(), "tok")
	require.NoError(t, err)
	assert.Len(t, gyms, 2)
}

func TestListGyms_NoRedis_StraightThrough(t *testing.T) {
	backend := new(MockBackend)
	svc := NewService(backend, nil, time.Minute)

	backend.On("ListGyms", mock.Anything, "tok").Return(testGyms, nil)

	gyms, err := svc.ListGyms(context.Background(), "tok")
	require.NoError(t, err)
	assert.Len(t, gyms, 2)
}

func TestListGyms_BackendError_Propagates(t *testing.T) {
	backend := new(MockBackend)
	svc := NewService(backend, nil, time.Minute)

	backend.On("ListGyms", mock.Anything, "tok").Return(nil, errors.New("boom"))

	_, err := svc.ListGyms(context.Background(), "tok")
	assert.Error(t, err)
}

func TestGetGym_LRUMemoization(t *testing.T) {
	backend := new(MockBackend)
	svc := NewService(backend, nil, time.Minute)

	gym := &Gym{ID: 1, GymName: "Iron Temple"}
	backend.On("GetGym", mock.Anything, "tok", int64(1)).Return(gym, nil).Once()

	first, err := svc.GetGym(context.Background(), "tok", 1)
	require.NoError(t, err)
	second, err := svc.GetGym(context.Background(), "tok", 1)
	require.NoError(t, err)

	assert.Equal(t, first.GymName, second.GymName)
	backend.AssertNumberOfCalls(t, "GetGym", 1)
}

func TestGetGym_SeededByListGyms(t *testing.T) {
	backend := new(MockBackend)
	svc := NewService(backend, nil, time.Minute)

	backend.On("ListGyms", mock.Anything, "tok").Return(testGyms, nil)

	_, err := svc.ListGyms(context.Background(), "tok")
	require.NoError(t, err)

	g, err := svc.GetGym(context.Background(), "tok", 2)
	require.NoError(t, err)
	assert.Equal(t, "FitZone", g.GymName)
	backend.AssertNotCalled(t, "GetGym")
}

func TestListPlans_RendersMarkdownDescriptions(t *testing.T) {
	backend := new(MockBackend)
	svc := NewService(backend, nil, time.Minute)

	plans := []Plan{{ID: 1, GymID: 1, PlanName: "Monthly", Description: "Access to **all** equipment"}}
	backend.On("ListPlans", mock.Anything, "tok", int64(1)).Return(plans, nil)

	got, err := svc.ListPlans(context.Background(), "tok", 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Contains(t, got[0].DescriptionHTML, "<strong>all</strong>")
}

func TestListFacilities_EmptyDescription_NoHTML(t *testing.T) {
	backend := new(MockBackend)
	svc := NewService(backend, nil, time.Minute)

	facilities := []Facility{{ID: 1, GymID: 1, FacilityName: "Pool"}}
	backend.On("ListFacilities", mock.Anything, "tok", int64(1)).Return(facilities, nil)

	got, err := svc.ListFacilities(context.Background(), "tok", 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Empty(t, got[0].DescriptionHTML)
}

func TestFindGymByName_CaseInsensitive(t *testing.T) {
	backend := new(MockBackend)
	svc := NewService(backend, nil, time.Minute)

	backend.On("ListGyms", mock.Anything, "tok").Return(testGyms, nil)

	id, ok, err := svc.FindGymByName(context.Background(), "tok", "iron temple")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(1), id)

	_, ok, err = svc.FindGymByName(context.Background(), "tok", "nope")
	require.NoError(t, err)
	assert.False(t, ok)
}
