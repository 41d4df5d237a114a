package response

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/partymatcher/party-matchmaker-backend/internal/event"
	"github.com/partymatcher/party-matchmaker-backend/internal/guest"
)

var (
	ErrGuestNotFound   = errors.New("guest not found")
	ErrGuestNotInEvent = errors.New("guest does not belong to this event")
)

// Service wraps answer submission and retrieval.
type Service struct {
	Repo   Store
	Guests guest.Store
	Events *event.Service
}

func NewService(r Store, guests guest.Store, events *event.Service) *Service {
	return &Service{Repo: r, Guests: guests, Events: events}
}

// Submit stores a guest's batch of answers, overwriting earlier answers
// to the same questions. Returns the number of answers stored.
func (s *Service) Submit(code string, submission *AnswersSubmit) (int, error) {
	e, err := s.Events.GetByCode(code)
	if err != nil {
		return 0, err
	}

	g, err := s.Guests.ByID(submission.GuestID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrGuestNotFound
	}
	if err != nil {
		return 0, err
	}
	if g.EventID != e.ID {
		return 0, ErrGuestNotInEvent
	}

	responses := make([]Response, 0, len(submission.Answers))
	for _, a := range submission.Answers {
		responses = append(responses, Response{
			GuestID:    submission.GuestID,
			QuestionID: a.QuestionID,
			Answer:     a.Answer,
		})
	}
	if err := s.Repo.Upsert(responses); err != nil {
		return 0, err
	}
	return len(responses), nil
}

// ByGuest returns all answers a guest has submitted.
func (s *Service) ByGuest(code string, guestID uuid.UUID) ([]Response, error) {
	if _, err := s.Events.GetByCode(code); err != nil {
		return nil, err
	}
	return s.Repo.ByGuest(guestID)
}
