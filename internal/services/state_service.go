package services

import (
	"context"
	"fmt"
	"math"

	"fitbook/internal/models"
	"fitbook/internal/providers"
	"fitbook/internal/store"

	json "github.com/goccy/go-json"
)

// PublicView is the PII-free projection served to every visitor. Pending
// bookings and contact fields of confirmed bookings never appear here.
type PublicView struct {
	Profile      models.Profile                `json:"profile"`
	Prices       models.Prices                 `json:"prices"`
	About        []models.ContentBlock         `json:"about"`
	Achievements []models.AchievementPost      `json:"achievements"`
	Blocked      map[string]models.BlockRecord `json:"blocked"`
	Calendar     map[string]models.SlotStatus  `json:"calendar"`
}

// PricesPatch carries raw numbers so that fractional admin input can be
// rounded; both fields must be present and positive or the whole patch
// is rejected.
type PricesPatch struct {
	SingleRon float64 `json:"singleRon"`
	CommonRon float64 `json:"commonRon"`
}

// AdminPatch is a sparse update: every field is optional and applied
// independently, wholesale, with one persist at the end.
type AdminPatch struct {
	Profile       *models.Profile                `json:"profile"`
	Prices        *PricesPatch                   `json:"prices"`
	About         *[]models.ContentBlock         `json:"about"`
	Achievements  *[]models.AchievementPost      `json:"achievements"`
	Blocked       *map[string]models.BlockRecord `json:"blocked"`
	ClearBookings bool                           `json:"clearBookings"`
}

type StateServiceInterface interface {
	LoadState(ctx context.Context) (*models.AppState, error)
	SaveState(ctx context.Context, state *models.AppState) error
	PublicProjection(state *models.AppState) *PublicView
	ApplyAdminPatch(ctx context.Context, patch *AdminPatch) error
	ConfirmedBookings(ctx context.Context) ([]models.ConfirmedBooking, error)
}

type StateService struct {
	store  store.StateStore
	logger providers.Logger
}

func NewStateService(stateStore store.StateStore, logger providers.Logger) StateServiceInterface {
	return &StateService{store: stateStore, logger: logger}
}

// LoadState reads the document, lazily creating it with seed defaults on
// first read.
func (ss *StateService) LoadState(ctx context.Context) (*models.AppState, error) {
	data, found, err := ss.store.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	if !found {
		state := models.SeedState()
		if err := ss.SaveState(ctx, state); err != nil {
			return nil, err
		}
		ss.logger.Infof(providers.TypeApp, "State document seeded")
		return state, nil
	}

	var state models.AppState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("decode state: %w", err)
	}
	state.Normalize()
	return &state, nil
}

func (ss *StateService) SaveState(ctx context.Context, state *models.AppState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := ss.store.Put(ctx, data); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

func (ss *StateService) PublicProjection(state *models.AppState) *PublicView {
	return &PublicView{
		Profile:      state.Profile,
		Prices:       state.Prices,
		About:        state.About,
		Achievements: state.Achievements,
		Blocked:      state.Blocked,
		Calendar:     models.ComputePublicCalendar(state),
	}
}

// ApplyAdminPatch validates the whole patch, applies it to a fresh copy
// of the document and persists exactly once. An invalid prices field
// rejects the entire request with nothing written.
func (ss *StateService) ApplyAdminPatch(ctx context.Context, patch *AdminPatch) error {
	newPrices, err := validatePrices(patch.Prices)
	if err != nil {
		return err
	}

	state, err := ss.LoadState(ctx)
	if err != nil {
		return err
	}

	if patch.Profile != nil {
		state.Profile = *patch.Profile
	}
	if newPrices != nil {
		state.Prices = *newPrices
	}
	if patch.About != nil {
		state.About = *patch.About
	}
	if patch.Achievements != nil {
		state.Achievements = *patch.Achievements
	}
	if patch.Blocked != nil {
		state.Blocked = *patch.Blocked
	}
	if patch.ClearBookings {
		// pending entries are left alone; in-flight payments still resolve
		state.BookingsConfirmed = []models.ConfirmedBooking{}
	}
	state.Normalize()

	if err := ss.SaveState(ctx, state); err != nil {
		return err
	}
	ss.logger.Infof(providers.TypePost, "Admin patch applied (clearBookings=%v)", patch.ClearBookings)
	return nil
}

func validatePrices(patch *PricesPatch) (*models.Prices, error) {
	if patch == nil {
		return nil, nil
	}
	single := math.Round(patch.SingleRon)
	common := math.Round(patch.CommonRon)
	if math.IsNaN(single) || math.IsInf(single, 0) || single <= 0 {
		return nil, &ValidationError{Field: "prices.singleRon", Reason: "must be a positive number"}
	}
	if math.IsNaN(common) || math.IsInf(common, 0) || common <= 0 {
		return nil, &ValidationError{Field: "prices.commonRon", Reason: "must be a positive number"}
	}
	return &models.Prices{
		SingleRon: int(single),
		CommonRon: int(common),
	}, nil
}

func (ss *StateService) ConfirmedBookings(ctx context.Context) ([]models.ConfirmedBooking, error) {
	state, err := ss.LoadState(ctx)
	if err != nil {
		return nil, err
	}
	return state.BookingsConfirmed, nil
}
