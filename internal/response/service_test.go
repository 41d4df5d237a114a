package response

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/partymatcher/party-matchmaker-backend/internal/event"
	"github.com/partymatcher/party-matchmaker-backend/internal/guest"
)

type fakeEventStore struct {
	events map[uuid.UUID]*event.Event
}

func (f *fakeEventStore) Create(e *event.Event) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	f.events[e.ID] = e
	return nil
}

func (f *fakeEventStore) ByCode(code string) (*event.Event, error) {
	for _, e := range f.events {
		if e.Code == strings.ToUpper(code) {
			copied := *e
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEventStore) CodeExists(code string) (bool, error) {
	_, err := f.ByCode(code)
	return err == nil, nil
}

func (f *fakeEventStore) ByHost(string) ([]event.Event, error)   { return nil, nil }
func (f *fakeEventStore) Delete(uuid.UUID) error                 { return nil }
func (f *fakeEventStore) GuestCount(uuid.UUID) (int64, error)    { return 0, nil }
func (f *fakeEventStore) ResponseCount(uuid.UUID) (int64, error) { return 0, nil }
func (f *fakeEventStore) Update(id uuid.UUID, _ map[string]interface{}) (*event.Event, error) {
	return nil, gorm.ErrRecordNotFound
}

type fakeGuestStore struct {
	guests []guest.Guest
}

func (f *fakeGuestStore) Create(g *guest.Guest) error {
	g.ID = uuid.New()
	f.guests = append(f.guests, *g)
	return nil
}

func (f *fakeGuestStore) ByID(id uuid.UUID) (*guest.Guest, error) {
	for _, g := range f.guests {
		if g.ID == id {
			copied := g
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeGuestStore) ByEvent(uuid.UUID) ([]guest.Guest, error) { return nil, nil }
func (f *fakeGuestStore) NicknameExists(uuid.UUID, string) (bool, error) {
	return false, nil
}

type fakeResponseStore struct {
	upserted []Response
}

func (f *fakeResponseStore) Upsert(rs []Response) error {
	f.upserted = append(f.upserted, rs...)
	return nil
}

func (f *fakeResponseStore) ByGuest(guestID uuid.UUID) ([]Response, error) {
	var out []Response
	for _, r := range f.upserted {
		if r.GuestID == guestID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeResponseStore) ByGuests(guestIDs []uuid.UUID) ([]Response, error) {
	var out []Response
	for _, id := range guestIDs {
		rs, _ := f.ByGuest(id)
		out = append(out, rs...)
	}
	return out, nil
}

type fixture struct {
	svc    *Service
	events *fakeEventStore
	guests *fakeGuestStore
	store  *fakeResponseStore
}

func newFixture() *fixture {
	events := &fakeEventStore{events: map[uuid.UUID]*event.Event{}}
	guests := &fakeGuestStore{}
	store := &fakeResponseStore{}
	eventSvc := event.NewService(events, 8, 5)
	return &fixture{
		svc:    NewService(store, guests, eventSvc),
		events: events,
		guests: guests,
		store:  store,
	}
}

func TestSubmit(t *testing.T) {
	f := newFixture()
	e := &event.Event{Code: "ABCD1234", Name: "Party"}
	_ = f.events.Create(e)
	g := &guest.Guest{EventID: e.ID, Nickname: "alice"}
	_ = f.guests.Create(g)

	count, err := f.svc.Submit("ABCD1234", &AnswersSubmit{
		GuestID: g.ID,
		Answers: []AnswerSubmit{
			{QuestionID: uuid.New(), Answer: "pizza"},
			{QuestionID: uuid.New(), Answer: "beach"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Len(t, f.store.upserted, 2)
}

func TestSubmitUnknownGuest(t *testing.T) {
	f := newFixture()
	e := &event.Event{Code: "ABCD1234", Name: "Party"}
	_ = f.events.Create(e)

	_, err := f.svc.Submit("ABCD1234", &AnswersSubmit{
		GuestID: uuid.New(),
		Answers: []AnswerSubmit{{QuestionID: uuid.New(), Answer: "pizza"}},
	})
	assert.ErrorIs(t, err, ErrGuestNotFound)
}

func TestSubmitGuestFromOtherEvent(t *testing.T) {
	f := newFixture()
	e := &event.Event{Code: "ABCD1234", Name: "Party"}
	other := &event.Event{Code: "EFGH5678", Name: "Mixer"}
	_ = f.events.Create(e)
	_ = f.events.Create(other)
	g := &guest.Guest{EventID: other.ID, Nickname: "mallory"}
	_ = f.guests.Create(g)

	_, err := f.svc.Submit("ABCD1234", &AnswersSubmit{
		GuestID: g.ID,
		Answers: []AnswerSubmit{{QuestionID: uuid.New(), Answer: "pizza"}},
	})
	assert.ErrorIs(t, err, ErrGuestNotInEvent)
}

func TestByGuestUnknownEvent(t *testing.T) {
	f := newFixture()
	_, err := f.svc.ByGuest("NOPE", uuid.New())
	assert.ErrorIs(t, err, event.ErrNotFound)
}
