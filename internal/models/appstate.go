package models

type BookingType string

const (
	BookingSingle BookingType = "single"
	BookingCommon BookingType = "common"
)

type Profile struct {
	Name     string `json:"name"`
	Subtitle string `json:"subtitle"`
	Info     string `json:"info"`
	PhotoURL string `json:"photoUrl"`
}

type Prices struct {
	SingleRon int `json:"singleRon"`
	CommonRon int `json:"commonRon"`
}

// ContentBlock is a variant over text/image/video blocks. Exactly one of
// Text, Src, URL is meaningful depending on Type.
type ContentBlock struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Title string `json:"title"`
	Text  string `json:"text,omitempty"`
	Src   string `json:"src,omitempty"`
	URL   string `json:"url,omitempty"`
}

type AchievementPost struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Note      string `json:"note"`
	Image     string `json:"image"`
	CreatedAt int64  `json:"createdAt"`
}

type BlockRecord struct {
	CreatedAt int64 `json:"createdAt"`
}

// PendingBooking awaits payment confirmation, keyed in AppState.Pending
// by the checkout session id.
type PendingBooking struct {
	SlotKey   string      `json:"slotKey"`
	Type      BookingType `json:"type"`
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	Phone     string      `json:"phone"`
	Message   string      `json:"message"`
	CreatedAt int64       `json:"createdAt"`
}

type ConfirmedBooking struct {
	ID        string      `json:"id"`
	SessionID string      `json:"sessionId"`
	SlotKey   string      `json:"slotKey"`
	Type      BookingType `json:"type"`
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	Phone     string      `json:"phone"`
	Message   string      `json:"message"`
	CreatedAt int64       `json:"createdAt"`
}

// AppState is the whole persisted document. Every mutation computes the
// full next state in memory and performs exactly one store put; there is
// no optimistic concurrency, last writer wins. Version is an extension
// point for a future compare-and-swap and is never checked.
type AppState struct {
	Version           int                       `json:"version,omitempty"`
	Profile           Profile                   `json:"profile"`
	Prices            Prices                    `json:"prices"`
	About             []ContentBlock            `json:"about"`
	Achievements      []AchievementPost         `json:"achievements"`
	Blocked           map[string]BlockRecord    `json:"blocked"`
	BookingsConfirmed []ConfirmedBooking        `json:"bookingsConfirmed"`
	Pending           map[string]PendingBooking `json:"pending"`
}

// SeedState returns the document created lazily on first read.
func SeedState() *AppState {
	return &AppState{
		Profile: Profile{
			Name:     "Alex Strong",
			Subtitle: "Personal Fitness Trainer · Bucharest",
			Info:     "I help people build sustainable strength, lose fat, improve mobility, and feel confident in the gym.",
			PhotoURL: "https://images.unsplash.com/photo-1550345332-09e3ac987658?q=80&w=1200&auto=format&fit=crop",
		},
		Prices: Prices{SingleRon: 200, CommonRon: 120},
		About: []ContentBlock{
			{
				ID:    "ab-1",
				Type:  "text",
				Title: "My approach",
				Text:  "Sustainable strength, movement quality, and habits you can keep.",
			},
		},
		Achievements:      []AchievementPost{},
		Blocked:           map[string]BlockRecord{},
		BookingsConfirmed: []ConfirmedBooking{},
		Pending:           map[string]PendingBooking{},
	}
}

// Normalize fills nil collections after unmarshalling an older or
// hand-edited document so the rest of the code can index them freely.
func (s *AppState) Normalize() {
	if s.About == nil {
		s.About = []ContentBlock{}
	}
	if s.Achievements == nil {
		s.Achievements = []AchievementPost{}
	}
	if s.Blocked == nil {
		s.Blocked = map[string]BlockRecord{}
	}
	if s.BookingsConfirmed == nil {
		s.BookingsConfirmed = []ConfirmedBooking{}
	}
	if s.Pending == nil {
		s.Pending = map[string]PendingBooking{}
	}
}
