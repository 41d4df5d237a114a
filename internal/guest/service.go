package guest

import (
	"errors"

	"github.com/partymatcher/party-matchmaker-backend/internal/event"
)

var ErrNicknameTaken = errors.New("nickname already taken in this event")

// Service wraps the join flow and guest listing.
type Service struct {
	Repo   Store
	Events *event.Service
}

func NewService(r Store, events *event.Service) *Service {
	return &Service{Repo: r, Events: events}
}

// Join adds a guest to the event behind code. Nicknames are unique per
// event.
func (s *Service) Join(code string, req *JoinRequest) (*Guest, error) {
	e, err := s.Events.GetByCode(code)
	if err != nil {
		return nil, err
	}

	taken, err := s.Repo.NicknameExists(e.ID, req.Nickname)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrNicknameTaken
	}

	g := &Guest{
		EventID:    e.ID,
		Nickname:   req.Nickname,
		Gender:     req.Gender,
		LookingFor: req.LookingFor,
	}
	if err := s.Repo.Create(g); err != nil {
		return nil, err
	}
	return g, nil
}

// List returns all guests in the event behind code.
func (s *Service) List(code string) ([]Guest, error) {
	e, err := s.Events.GetByCode(code)
	if err != nil {
		return nil, err
	}
	return s.Repo.ByEvent(e.ID)
}
