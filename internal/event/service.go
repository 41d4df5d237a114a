package event

import (
	"errors"
	"math/rand"

	"gorm.io/gorm"
)

var (
	ErrNotFound               = errors.New("event not found")
	ErrNotHost                = errors.New("only the host can perform this action")
	ErrNoFieldsToUpdate       = errors.New("no fields to update")
	ErrImmutableAfterMatching = errors.New("cannot change matching settings after matching is completed")
	ErrCodeGeneration         = errors.New("failed to generate unique event code")
)

const codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Service wraps business logic for events.
type Service struct {
	Repo        Store
	CodeLength  int
	CodeRetries int
}

func NewService(r Store, codeLength, codeRetries int) *Service {
	return &Service{Repo: r, CodeLength: codeLength, CodeRetries: codeRetries}
}

// randomCode generates an alphanumeric join code.
func randomCode(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = codeCharset[rand.Intn(len(codeCharset))]
	}
	return string(b)
}

// CreateEvent creates an event with a unique code. hostUserID is empty
// for anonymous hosts.
func (s *Service) CreateEvent(req *CreateEventRequest, hostUserID string) (*Event, error) {
	code := ""
	for i := 0; i < s.CodeRetries; i++ {
		candidate := randomCode(s.CodeLength)
		exists, err := s.Repo.CodeExists(candidate)
		if err != nil {
			return nil, err
		}
		if !exists {
			code = candidate
			break
		}
	}
	if code == "" {
		return nil, ErrCodeGeneration
	}

	e := &Event{
		Code:            code,
		Name:            req.Name,
		HostName:        req.HostName,
		EventType:       req.EventType,
		MatchingMode:    req.MatchingMode,
		MatchesPerGuest: req.MatchesPerGuest,
	}
	if e.EventType == "" {
		e.EventType = "party"
	}
	if e.MatchingMode == "" {
		e.MatchingMode = ModeAny
	}
	if e.MatchesPerGuest == 0 {
		e.MatchesPerGuest = 1
	}
	if hostUserID != "" {
		e.HostUserID = &hostUserID
	}

	if err := s.Repo.Create(e); err != nil {
		return nil, err
	}
	return e, nil
}

// GetByCode returns the full event row for a join code.
func (s *Service) GetByCode(code string) (*Event, error) {
	e, err := s.Repo.ByCode(code)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return e, err
}

// GetPublic returns the event info shown to guests joining by code.
func (s *Service) GetPublic(code string) (*EventPublic, error) {
	e, err := s.GetByCode(code)
	if err != nil {
		return nil, err
	}
	return &EventPublic{
		Code:         e.Code,
		Name:         e.Name,
		HostName:     e.HostName,
		MatchingMode: e.MatchingMode,
	}, nil
}

// MyEvents lists the events owned by an authenticated host, newest first.
func (s *Service) MyEvents(userID string) ([]Event, error) {
	return s.Repo.ByHost(userID)
}

// UpdateEvent applies a partial update. Matching settings become
// immutable once matching has completed.
func (s *Service) UpdateEvent(code, callerID string, req *UpdateEventRequest) (*Event, error) {
	e, err := s.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if !e.Host().IsOwnedBy(callerID) {
		return nil, ErrNotHost
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.HostName != nil {
		fields["host_name"] = *req.HostName
	}
	if req.MatchingMode != nil {
		if e.MatchingCompleted {
			return nil, ErrImmutableAfterMatching
		}
		fields["matching_mode"] = *req.MatchingMode
	}
	if req.MatchesPerGuest != nil {
		if e.MatchingCompleted {
			return nil, ErrImmutableAfterMatching
		}
		fields["matches_per_guest"] = *req.MatchesPerGuest
	}
	if len(fields) == 0 {
		return nil, ErrNoFieldsToUpdate
	}

	return s.Repo.Update(e.ID, fields)
}

// DeleteEvent removes the event and everything under it.
func (s *Service) DeleteEvent(code, callerID string) error {
	e, err := s.GetByCode(code)
	if err != nil {
		return err
	}
	if !e.Host().IsOwnedBy(callerID) {
		return ErrNotHost
	}
	return s.Repo.Delete(e.ID)
}

// Status reports join and answer progress for an event.
func (s *Service) Status(code string) (*EventStatus, error) {
	e, err := s.GetByCode(code)
	if err != nil {
		return nil, err
	}
	guests, err := s.Repo.GuestCount(e.ID)
	if err != nil {
		return nil, err
	}
	responses, err := s.Repo.ResponseCount(e.ID)
	if err != nil {
		return nil, err
	}
	return &EventStatus{
		Code:              e.Code,
		Name:              e.Name,
		HostName:          e.HostName,
		GuestCount:        guests,
		ResponsesCount:    responses,
		MatchingCompleted: e.MatchingCompleted,
	}, nil
}
