package question

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/partymatcher/party-matchmaker-backend/internal/event"
)

var (
	ErrNotFound         = errors.New("question not found")
	ErrNotInEvent       = errors.New("question does not belong to this event")
	ErrNoFieldsToUpdate = errors.New("no fields to update")
)

// Service wraps question authoring for hosts.
type Service struct {
	Repo   Store
	Events *event.Service
}

func NewService(r Store, events *event.Service) *Service {
	return &Service{Repo: r, Events: events}
}

// Create adds a question to the event behind code.
func (s *Service) Create(code string, req *CreateQuestionRequest) (*Question, error) {
	e, err := s.Events.GetByCode(code)
	if err != nil {
		return nil, err
	}

	q := &Question{
		EventID:      e.ID,
		Text:         req.Text,
		QuestionType: req.QuestionType,
		Options:      datatypes.NewJSONSlice(req.Options),
		OrderIndex:   req.OrderIndex,
	}
	if q.QuestionType == "" {
		q.QuestionType = "multiple_choice"
	}
	if err := s.Repo.Create(q); err != nil {
		return nil, err
	}
	return q, nil
}

// List returns the event's questions ordered by order_index.
func (s *Service) List(code string) ([]Question, error) {
	e, err := s.Events.GetByCode(code)
	if err != nil {
		return nil, err
	}
	return s.Repo.ByEvent(e.ID)
}

// Update edits a question. Host only; the question must belong to the
// event named in the URL.
func (s *Service) Update(code, callerID string, questionID uuid.UUID, req *UpdateQuestionRequest) (*Question, error) {
	q, err := s.ownedQuestion(code, callerID, questionID)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Text != nil {
		fields["text"] = *req.Text
	}
	if req.Options != nil {
		fields["options"] = datatypes.NewJSONSlice(*req.Options)
	}
	if req.OrderIndex != nil {
		fields["order_index"] = *req.OrderIndex
	}
	if len(fields) == 0 {
		return nil, ErrNoFieldsToUpdate
	}

	return s.Repo.Update(q.ID, fields)
}

// Delete removes a question. Host only.
func (s *Service) Delete(code, callerID string, questionID uuid.UUID) error {
	q, err := s.ownedQuestion(code, callerID, questionID)
	if err != nil {
		return err
	}
	return s.Repo.Delete(q.ID)
}

func (s *Service) ownedQuestion(code, callerID string, questionID uuid.UUID) (*Question, error) {
	e, err := s.Events.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if !e.Host().IsOwnedBy(callerID) {
		return nil, event.ErrNotHost
	}

	q, err := s.Repo.ByID(questionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if q.EventID != e.ID {
		return nil, ErrNotInEvent
	}
	return q, nil
}
