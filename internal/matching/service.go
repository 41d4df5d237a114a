package matching

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/partymatcher/party-matchmaker-backend/internal/event"
	"github.com/partymatcher/party-matchmaker-backend/internal/guest"
	"github.com/partymatcher/party-matchmaker-backend/internal/response"
)

var (
	ErrNotEnoughGuests      = errors.New("need at least 2 guests to run matching")
	ErrMatchingNotCompleted = errors.New("run matching first before revealing")
	ErrMatchesNotRevealed   = errors.New("matches have not been revealed yet")
	ErrInvalidGuests        = errors.New("invalid guest IDs")
	ErrMatchNotFound        = errors.New("match not found")
	ErrMatchingInProgress   = errors.New("a matching run is already in progress for this event")
)

// Service is the matching state machine. It gates transitions on event
// ownership and the completion/reveal flags, and drives the scorer,
// filter, ranker and greedy assigner on each run.
type Service struct {
	Events    *event.Service
	Guests    guest.Store
	Responses response.Store
	Matches   Store
	Lock      RunLocker
}

func NewService(events *event.Service, guests guest.Store, responses response.Store, matches Store, lock RunLocker) *Service {
	return &Service{
		Events:    events,
		Guests:    guests,
		Responses: responses,
		Matches:   matches,
		Lock:      lock,
	}
}

// hostGate loads the event and enforces the host check. Events without
// an owner allow any caller.
func (s *Service) hostGate(code, callerID string) (*event.Event, error) {
	e, err := s.Events.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if !e.Host().CanModify(callerID) {
		return nil, event.ErrNotHost
	}
	return e, nil
}

// RunMatching recomputes the event's match set. Host only (anonymous
// events: any caller). Needs at least 2 guests. Permitted in every
// state; a re-run replaces the previous matches wholesale and sets
// matching_completed. It deliberately does NOT reset matches_revealed,
// so a reveal that predates the re-run stays in effect.
// Concurrent runs for the same event are serialized by the run lock;
// the loser fails with ErrMatchingInProgress.
func (s *Service) RunMatching(ctx context.Context, code, callerID string) (int, error) {
	e, err := s.hostGate(code, callerID)
	if err != nil {
		return 0, err
	}

	guests, err := s.Guests.ByEvent(e.ID)
	if err != nil {
		return 0, err
	}
	if len(guests) < 2 {
		return 0, ErrNotEnoughGuests
	}

	acquired, err := s.Lock.Acquire(ctx, e.ID)
	if err != nil {
		return 0, err
	}
	if !acquired {
		return 0, ErrMatchingInProgress
	}
	defer s.Lock.Release(ctx, e.ID)

	guestIDs := make([]uuid.UUID, len(guests))
	for i, g := range guests {
		guestIDs[i] = g.ID
	}
	answers, err := s.Responses.ByGuests(guestIDs)
	if err != nil {
		return 0, err
	}

	responsesByGuest := make(map[uuid.UUID]map[uuid.UUID]string, len(guests))
	for _, g := range guests {
		responsesByGuest[g.ID] = map[uuid.UUID]string{}
	}
	for _, a := range answers {
		if m, ok := responsesByGuest[a.GuestID]; ok {
			m[a.QuestionID] = a.Answer
		}
	}

	ranked := RankPairs(guests, responsesByGuest, e.MatchingMode)
	accepted := Assign(ranked, e.MatchesPerGuest)

	matches := make([]Match, len(accepted))
	for i, p := range accepted {
		matches[i] = Match{
			EventID:  e.ID,
			GuestAID: p.GuestA,
			GuestBID: p.GuestB,
			Score:    p.Score,
		}
	}

	if err := s.Matches.Replace(e.ID, matches); err != nil {
		return 0, err
	}
	return len(matches), nil
}

// Reveal exposes completed matches to guests. Host only; requires a
// completed matching run. Idempotent.
func (s *Service) Reveal(code, callerID string) error {
	e, err := s.hostGate(code, callerID)
	if err != nil {
		return err
	}
	if !e.MatchingCompleted {
		return ErrMatchingNotCompleted
	}
	return s.Matches.SetRevealed(e.ID)
}

// ManualMatch inserts a host-curated match with score 1.0. It bypasses
// the preference filter, similarity scoring and the per-guest cap, and
// leaves the completion and reveal flags alone.
func (s *Service) ManualMatch(code, callerID string, guestAID, guestBID uuid.UUID) (*Match, error) {
	e, err := s.hostGate(code, callerID)
	if err != nil {
		return nil, err
	}

	if guestAID == guestBID {
		return nil, ErrInvalidGuests
	}
	for _, id := range []uuid.UUID{guestAID, guestBID} {
		g, err := s.Guests.ByID(id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidGuests
		}
		if err != nil {
			return nil, err
		}
		if g.EventID != e.ID {
			return nil, ErrInvalidGuests
		}
	}

	m := &Match{
		EventID:  e.ID,
		GuestAID: guestAID,
		GuestBID: guestBID,
		Score:    1.0,
	}
	if err := s.Matches.Insert(m); err != nil {
		return nil, err
	}
	return m, nil
}

// DeleteMatch removes one match. Host only; the match must belong to
// this event.
func (s *Service) DeleteMatch(code, callerID string, matchID uuid.UUID) error {
	e, err := s.hostGate(code, callerID)
	if err != nil {
		return err
	}

	rows, err := s.Matches.Delete(e.ID, matchID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrMatchNotFound
	}
	return nil
}

// MyMatch returns the match for one guest, visible only after the
// reveal. No host check: any guest id may query. Returns nil when the
// guest has no match or the counterpart record is gone.
func (s *Service) MyMatch(code string, guestID uuid.UUID) (*MyMatch, error) {
	e, err := s.Events.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if !e.MatchesRevealed {
		return nil, ErrMatchesNotRevealed
	}

	m, err := s.Matches.ForGuest(e.ID, guestID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}

	counterpartID := m.GuestAID
	if m.GuestAID == guestID {
		counterpartID = m.GuestBID
	}

	counterpart, err := s.Guests.ByID(counterpartID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Counterpart was deleted after the run.
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &MyMatch{
		ID:       counterpart.ID,
		Nickname: counterpart.Nickname,
		Score:    m.Score,
	}, nil
}

// AllMatches returns the event's full match list with nicknames for the
// host overview.
func (s *Service) AllMatches(code, callerID string) ([]EnrichedMatch, error) {
	e, err := s.hostGate(code, callerID)
	if err != nil {
		return nil, err
	}

	matches, err := s.Matches.ByEvent(e.ID)
	if err != nil {
		return nil, err
	}

	guests, err := s.Guests.ByEvent(e.ID)
	if err != nil {
		return nil, err
	}
	nicknames := make(map[uuid.UUID]string, len(guests))
	for _, g := range guests {
		nicknames[g.ID] = g.Nickname
	}

	enriched := make([]EnrichedMatch, len(matches))
	for i, m := range matches {
		enriched[i] = EnrichedMatch{
			Match:          m,
			GuestANickname: nicknameOr(nicknames, m.GuestAID),
			GuestBNickname: nicknameOr(nicknames, m.GuestBID),
		}
	}
	return enriched, nil
}

func nicknameOr(nicknames map[uuid.UUID]string, id uuid.UUID) string {
	if n, ok := nicknames[id]; ok {
		return n
	}
	return "Unknown"
}
