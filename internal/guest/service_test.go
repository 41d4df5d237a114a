package guest

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/partymatcher/party-matchmaker-backend/internal/event"
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
	if e, ok := f.events[id]; ok {
		copied := *e
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeGuestStore struct {
	guests []Guest
}

func (f *fakeGuestStore) Create(g *Guest) error {
	g.ID = uuid.New()
	f.guests = append(f.guests, *g)
	return nil
}

func (f *fakeGuestStore) ByID(id uuid.UUID) (*Guest, error) {
	for _, g := range f.guests {
		if g.ID == id {
			copied := g
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeGuestStore) ByEvent(eventID uuid.UUID) ([]Guest, error) {
	var out []Guest
	for _, g := range f.guests {
		if g.EventID == eventID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeGuestStore) NicknameExists(eventID uuid.UUID, nickname string) (bool, error) {
	for _, g := range f.guests {
		if g.EventID == eventID && g.Nickname == nickname {
			return true, nil
		}
	}
	return false, nil
}

func newTestService() (*Service, *fakeEventStore) {
	events := &fakeEventStore{events: map[uuid.UUID]*event.Event{}}
	eventSvc := event.NewService(events, 8, 5)
	return NewService(&fakeGuestStore{}, eventSvc), events
}

func TestJoin(t *testing.T) {
	svc, events := newTestService()
	_ = events.Create(&event.Event{Code: "ABCD1234", Name: "Party"})

	gender := "female"
	g, err := svc.Join("abcd1234", &JoinRequest{Nickname: "alice", Gender: &gender})
	require.NoError(t, err)
	assert.Equal(t, "alice", g.Nickname)
	require.NotNil(t, g.Gender)
	assert.Equal(t, "female", *g.Gender)
	assert.Nil(t, g.LookingFor)
}

func TestJoinUnknownEvent(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.Join("NOPE", &JoinRequest{Nickname: "alice"})
	assert.ErrorIs(t, err, event.ErrNotFound)
}

func TestJoinDuplicateNickname(t *testing.T) {
	svc, events := newTestService()
	_ = events.Create(&event.Event{Code: "ABCD1234", Name: "Party"})

	_, err := svc.Join("ABCD1234", &JoinRequest{Nickname: "alice"})
	require.NoError(t, err)

	_, err = svc.Join("ABCD1234", &JoinRequest{Nickname: "alice"})
	assert.ErrorIs(t, err, ErrNicknameTaken)
}

func TestJoinSameNicknameDifferentEvents(t *testing.T) {
	svc, events := newTestService()
	_ = events.Create(&event.Event{Code: "ABCD1234", Name: "Party"})
	_ = events.Create(&event.Event{Code: "EFGH5678", Name: "Mixer"})

	_, err := svc.Join("ABCD1234", &JoinRequest{Nickname: "alice"})
	require.NoError(t, err)
	_, err = svc.Join("EFGH5678", &JoinRequest{Nickname: "alice"})
	require.NoError(t, err)
}

func TestList(t *testing.T) {
	svc, events := newTestService()
	_ = events.Create(&event.Event{Code: "ABCD1234", Name: "Party"})

	_, err := svc.Join("ABCD1234", &JoinRequest{Nickname: "alice"})
	require.NoError(t, err)
	_, err = svc.Join("ABCD1234", &JoinRequest{Nickname: "bob"})
	require.NoError(t, err)

	guests, err := svc.List("ABCD1234")
	require.NoError(t, err)
	assert.Len(t, guests, 2)
}
