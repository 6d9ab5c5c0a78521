package services

import (
	"context"
	"testing"

	"fitbook/internal/models"
	"fitbook/internal/testutil"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStateService(memStore *testutil.MemStore) StateServiceInterface {
	return NewStateService(memStore, &testutil.MockLogger{})
}

func seedStore(t *testing.T, memStore *testutil.MemStore, state *models.AppState) {
	t.Helper()
	data, err := json.Marshal(state)
	require.NoError(t, err)
	memStore.Data = data
	memStore.Found = true
}

func TestLoadState_SeedsOnFirstRead(t *testing.T) {
	memStore := &testutil.MemStore{}
	service := newStateService(memStore)

	state, err := service.LoadState(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Alex Strong", state.Profile.Name)
	assert.Equal(t, 200, state.Prices.SingleRon)
	assert.Equal(t, 120, state.Prices.CommonRon)
	assert.Equal(t, 1, memStore.PutCalls, "seed must be persisted")
}

func TestLoadState_NormalizesSparseDocument(t *testing.T) {
	memStore := &testutil.MemStore{Data: []byte(`{"profile":{"name":"T"}}`), Found: true}
	service := newStateService(memStore)

	state, err := service.LoadState(context.Background())
	require.NoError(t, err)

	assert.NotNil(t, state.Blocked)
	assert.NotNil(t, state.Pending)
	assert.NotNil(t, state.BookingsConfirmed)
	assert.Equal(t, 0, memStore.PutCalls, "existing document must not be rewritten")
}

func TestLoadState_CorruptDocument(t *testing.T) {
	memStore := &testutil.MemStore{Data: []byte("{not json"), Found: true}
	service := newStateService(memStore)

	_, err := service.LoadState(context.Background())
	assert.Error(t, err)
}

func TestPublicProjection_OmitsContactData(t *testing.T) {
	state := models.SeedState()
	state.Pending["cs_1"] = models.PendingBooking{
		SlotKey: "2025-06-10T09:00", Type: models.BookingSingle,
		FirstName: "Maria", LastName: "Pop", Phone: "0712345678",
	}
	state.BookingsConfirmed = append(state.BookingsConfirmed, models.ConfirmedBooking{
		ID: "b1", SessionID: "cs_2", SlotKey: "2025-06-10T10:00", Type: models.BookingCommon,
		FirstName: "Ion", LastName: "Ionescu", Phone: "0798765432", Message: "knee rehab",
	})

	service := newStateService(&testutil.MemStore{})
	view := service.PublicProjection(state)

	data, err := json.Marshal(view)
	require.NoError(t, err)
	body := string(data)

	assert.NotContains(t, body, "Maria")
	assert.NotContains(t, body, "Ionescu")
	assert.NotContains(t, body, "0712345678")
	assert.NotContains(t, body, "knee rehab")
	assert.NotContains(t, body, "pending")
	assert.NotContains(t, body, "cs_2")

	assert.Equal(t, models.SlotStatus{Kind: models.KindCommon, Count: 1}, view.Calendar["2025-06-10T10:00"])
}

func TestApplyAdminPatch_SparseFields(t *testing.T) {
	memStore := &testutil.MemStore{}
	original := models.SeedState()
	original.BookingsConfirmed = append(original.BookingsConfirmed, models.ConfirmedBooking{ID: "b1"})
	seedStore(t, memStore, original)

	service := newStateService(memStore)
	err := service.ApplyAdminPatch(context.Background(), &AdminPatch{
		Prices: &PricesPatch{SingleRon: 250, CommonRon: 150},
	})
	require.NoError(t, err)

	state, err := service.LoadState(context.Background())
	require.NoError(t, err)

	assert.Equal(t, models.Prices{SingleRon: 250, CommonRon: 150}, state.Prices)
	assert.Equal(t, "Alex Strong", state.Profile.Name, "untouched fields survive")
	assert.Len(t, state.BookingsConfirmed, 1)
	assert.Equal(t, 1, memStore.PutCalls, "one persist per patch")
}

func TestApplyAdminPatch_RoundsFractionalPrices(t *testing.T) {
	memStore := &testutil.MemStore{}
	seedStore(t, memStore, models.SeedState())

	service := newStateService(memStore)
	err := service.ApplyAdminPatch(context.Background(), &AdminPatch{
		Prices: &PricesPatch{SingleRon: 199.6, CommonRon: 120.4},
	})
	require.NoError(t, err)

	state, _ := service.LoadState(context.Background())
	assert.Equal(t, models.Prices{SingleRon: 200, CommonRon: 120}, state.Prices)
}

func TestApplyAdminPatch_InvalidPricesRejectWholeRequest(t *testing.T) {
	memStore := &testutil.MemStore{}
	seedStore(t, memStore, models.SeedState())

	service := newStateService(memStore)
	err := service.ApplyAdminPatch(context.Background(), &AdminPatch{
		Profile: &models.Profile{Name: "New Name"},
		Prices:  &PricesPatch{SingleRon: -5, CommonRon: 100},
	})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "prices.singleRon", vErr.Field)

	state, _ := service.LoadState(context.Background())
	assert.Equal(t, "Alex Strong", state.Profile.Name, "nothing written on rejection")
	assert.Equal(t, 0, memStore.PutCalls)
}

func TestApplyAdminPatch_RejectsPriceRoundingToZero(t *testing.T) {
	memStore := &testutil.MemStore{}
	seedStore(t, memStore, models.SeedState())

	service := newStateService(memStore)
	err := service.ApplyAdminPatch(context.Background(), &AdminPatch{
		Prices: &PricesPatch{SingleRon: 0.4, CommonRon: 100},
	})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, 0, memStore.PutCalls)
}

func TestApplyAdminPatch_ClearBookingsLeavesPending(t *testing.T) {
	memStore := &testutil.MemStore{}
	original := models.SeedState()
	original.BookingsConfirmed = append(original.BookingsConfirmed, models.ConfirmedBooking{ID: "b1"})
	original.Pending["cs_1"] = models.PendingBooking{SlotKey: "2025-06-10T09:00", Type: models.BookingSingle}
	seedStore(t, memStore, original)

	service := newStateService(memStore)
	err := service.ApplyAdminPatch(context.Background(), &AdminPatch{ClearBookings: true})
	require.NoError(t, err)

	state, _ := service.LoadState(context.Background())
	assert.Empty(t, state.BookingsConfirmed)
	assert.Len(t, state.Pending, 1, "in-flight payments must still resolve")
}

func TestApplyAdminPatch_WholesaleReplacesCollections(t *testing.T) {
	memStore := &testutil.MemStore{}
	original := models.SeedState()
	original.Blocked["2025-06-10T09:00"] = models.BlockRecord{CreatedAt: 1}
	original.Blocked["2025-06-10T10:00"] = models.BlockRecord{CreatedAt: 2}
	seedStore(t, memStore, original)

	service := newStateService(memStore)
	blocked := map[string]models.BlockRecord{"2025-06-11T09:00": {CreatedAt: 3}}
	err := service.ApplyAdminPatch(context.Background(), &AdminPatch{Blocked: &blocked})
	require.NoError(t, err)

	state, _ := service.LoadState(context.Background())
	assert.Equal(t, blocked, state.Blocked, "patch replaces, never merges")
}

func TestConfirmedBookings(t *testing.T) {
	memStore := &testutil.MemStore{}
	original := models.SeedState()
	original.BookingsConfirmed = append(original.BookingsConfirmed,
		models.ConfirmedBooking{ID: "b1"}, models.ConfirmedBooking{ID: "b2"})
	seedStore(t, memStore, original)

	service := newStateService(memStore)
	bookings, err := service.ConfirmedBookings(context.Background())
	require.NoError(t, err)
	assert.Len(t, bookings, 2)
}
