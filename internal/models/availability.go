package models

type SlotKind string

const (
	KindFree    SlotKind = "free"
	KindSingle  SlotKind = "single"
	KindCommon  SlotKind = "common"
	KindBlocked SlotKind = "blocked"
)

type SlotStatus struct {
	Kind  SlotKind `json:"kind"`
	Count int      `json:"count"`
}

// ConflictError carries the availability rule that rejected a booking.
// The reason text is surfaced verbatim to the caller.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return e.Reason
}

const (
	ReasonBlocked      = "This slot is blocked."
	ReasonSingleBooked = "This slot is already single-booked."
	ReasonCommonBooked = "Single not available: already common-booked."
)

func confirmedForSlot(state *AppState, slotKey string) (hasSingle bool, commonCount int) {
	for _, b := range state.BookingsConfirmed {
		if b.SlotKey != slotKey {
			continue
		}
		if b.Type == BookingSingle {
			hasSingle = true
		} else if b.Type == BookingCommon {
			commonCount++
		}
	}
	return hasSingle, commonCount
}

// ComputeSlotStatus derives the public status of one slot. Blocked takes
// precedence over any booking history; a single booking takes precedence
// over common ones.
func ComputeSlotStatus(state *AppState, slotKey string) SlotStatus {
	if _, ok := state.Blocked[slotKey]; ok {
		return SlotStatus{Kind: KindBlocked}
	}
	hasSingle, commonCount := confirmedForSlot(state, slotKey)
	if hasSingle {
		return SlotStatus{Kind: KindSingle, Count: 1}
	}
	if commonCount > 0 {
		return SlotStatus{Kind: KindCommon, Count: commonCount}
	}
	return SlotStatus{Kind: KindFree}
}

// CanAccept applies the booking conflict rules, in order: blocked slot,
// existing single booking (rejects any request), existing common booking
// (rejects only a single request). Common requests stack on top of other
// common bookings without a cap.
func CanAccept(state *AppState, slotKey string, bookingType BookingType) *ConflictError {
	if _, ok := state.Blocked[slotKey]; ok {
		return &ConflictError{Reason: ReasonBlocked}
	}
	hasSingle, commonCount := confirmedForSlot(state, slotKey)
	if hasSingle {
		return &ConflictError{Reason: ReasonSingleBooked}
	}
	if bookingType == BookingSingle && commonCount > 0 {
		return &ConflictError{Reason: ReasonCommonBooked}
	}
	return nil
}

// ComputePublicCalendar builds the slotKey -> status map exposed by the
// public projection. Only kind and count leave the server per slot.
func ComputePublicCalendar(state *AppState) map[string]SlotStatus {
	calendar := make(map[string]SlotStatus, len(state.Blocked)+len(state.BookingsConfirmed))
	for slotKey := range state.Blocked {
		calendar[slotKey] = SlotStatus{Kind: KindBlocked}
	}
	for _, b := range state.BookingsConfirmed {
		current, ok := calendar[b.SlotKey]
		if ok && (current.Kind == KindBlocked || current.Kind == KindSingle) {
			continue
		}
		if b.Type == BookingSingle {
			calendar[b.SlotKey] = SlotStatus{Kind: KindSingle, Count: 1}
		} else if b.Type == BookingCommon {
			calendar[b.SlotKey] = SlotStatus{Kind: KindCommon, Count: current.Count + 1}
		}
	}
	return calendar
}
