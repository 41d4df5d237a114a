package matching

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partymatcher/party-matchmaker-backend/internal/event"
	"github.com/partymatcher/party-matchmaker-backend/internal/guest"
)

func strptr(s string) *string { return &s }

func newGuest(gender, lookingFor string) guest.Guest {
	g := guest.Guest{ID: uuid.New()}
	if gender != "" {
		g.Gender = strptr(gender)
	}
	if lookingFor != "" {
		g.LookingFor = strptr(lookingFor)
	}
	return g
}

func TestSimilarity(t *testing.T) {
	q1, q2, q3 := uuid.New(), uuid.New(), uuid.New()

	t.Run("identical non-empty maps score 1.0", func(t *testing.T) {
		a := map[uuid.UUID]string{q1: "pizza", q2: "beach"}
		assert.Equal(t, 1.0, Similarity(a, a))
	})

	t.Run("empty map scores 0.0", func(t *testing.T) {
		b := map[uuid.UUID]string{q1: "pizza"}
		assert.Equal(t, 0.0, Similarity(map[uuid.UUID]string{}, b))
		assert.Equal(t, 0.0, Similarity(b, map[uuid.UUID]string{}))
		assert.Equal(t, 0.0, Similarity(nil, b))
	})

	t.Run("no common questions scores 0.0", func(t *testing.T) {
		a := map[uuid.UUID]string{q1: "pizza"}
		b := map[uuid.UUID]string{q2: "beach"}
		assert.Equal(t, 0.0, Similarity(a, b))
	})

	t.Run("fraction of matching common answers", func(t *testing.T) {
		a := map[uuid.UUID]string{q1: "pizza", q2: "beach", q3: "dogs"}
		b := map[uuid.UUID]string{q1: "pizza", q2: "mountains", q3: "dogs"}
		assert.InDelta(t, 2.0/3.0, Similarity(a, b), 1e-9)
	})

	t.Run("only common questions count", func(t *testing.T) {
		a := map[uuid.UUID]string{q1: "pizza", q2: "beach"}
		b := map[uuid.UUID]string{q1: "pizza", q3: "dogs"}
		assert.Equal(t, 1.0, Similarity(a, b))
	})

	t.Run("answer comparison is case-sensitive", func(t *testing.T) {
		a := map[uuid.UUID]string{q1: "Pizza"}
		b := map[uuid.UUID]string{q1: "pizza"}
		assert.Equal(t, 0.0, Similarity(a, b))
	})

	t.Run("symmetric", func(t *testing.T) {
		a := map[uuid.UUID]string{q1: "pizza", q2: "beach"}
		b := map[uuid.UUID]string{q1: "sushi", q2: "beach"}
		assert.Equal(t, Similarity(a, b), Similarity(b, a))
	})
}

func TestCompatible(t *testing.T) {
	t.Run("any mode always compatible", func(t *testing.T) {
		a := newGuest("female", "male")
		b := newGuest("female", "female")
		assert.True(t, Compatible(a, b, event.ModeAny))
	})

	t.Run("mutual preference satisfied", func(t *testing.T) {
		a := newGuest("female", "male")
		b := newGuest("male", "any")
		assert.True(t, Compatible(a, b, event.ModePreferenceBased))
	})

	t.Run("one-sided preference fails", func(t *testing.T) {
		a := newGuest("female", "male")
		b := newGuest("male", "female")
		// b wants female, a is female; a wants male, b is male -> OK
		assert.True(t, Compatible(a, b, event.ModePreferenceBased))

		c := newGuest("male", "female")
		d := newGuest("male", "any")
		// c wants female but d is male
		assert.False(t, Compatible(c, d, event.ModePreferenceBased))
	})

	t.Run("any preference accepts, specific preference rejects", func(t *testing.T) {
		a := newGuest("female", "male")
		bAny := newGuest("male", "any")
		bMutual := newGuest("male", "female")
		bWrongGender := newGuest("female", "female")
		assert.True(t, Compatible(a, bAny, event.ModePreferenceBased))
		// Both sides accept each other's gender.
		assert.True(t, Compatible(a, bMutual, event.ModePreferenceBased))
		// a wants male, b is female.
		assert.False(t, Compatible(a, bWrongGender, event.ModePreferenceBased))
	})

	t.Run("missing looking_for counts as any", func(t *testing.T) {
		a := newGuest("female", "")
		b := newGuest("male", "any")
		assert.True(t, Compatible(a, b, event.ModePreferenceBased))
	})

	t.Run("missing gender only satisfies any", func(t *testing.T) {
		a := newGuest("", "any")
		b := newGuest("female", "male")
		// b wants male, a has no gender
		assert.False(t, Compatible(a, b, event.ModePreferenceBased))

		c := newGuest("", "any")
		d := newGuest("female", "any")
		assert.True(t, Compatible(c, d, event.ModePreferenceBased))
	})

	t.Run("symmetric", func(t *testing.T) {
		a := newGuest("female", "male")
		b := newGuest("male", "female")
		assert.Equal(t,
			Compatible(a, b, event.ModePreferenceBased),
			Compatible(b, a, event.ModePreferenceBased))
	})
}

func TestRankPairs(t *testing.T) {
	t.Run("incompatible pairs are never scored", func(t *testing.T) {
		a := newGuest("male", "female")
		b := newGuest("male", "female")
		c := newGuest("female", "male")
		pairs := RankPairs([]guest.Guest{a, b, c}, nil, event.ModePreferenceBased)

		require.Len(t, pairs, 2)
		for _, p := range pairs {
			assert.NotEqual(t, [2]uuid.UUID{a.ID, b.ID}, [2]uuid.UUID{p.GuestA, p.GuestB})
		}
	})

	t.Run("sorted by score descending", func(t *testing.T) {
		q1, q2 := uuid.New(), uuid.New()
		g1, g2, g3 := newGuest("", ""), newGuest("", ""), newGuest("", "")
		responses := map[uuid.UUID]map[uuid.UUID]string{
			g1.ID: {q1: "a", q2: "x"},
			g2.ID: {q1: "a", q2: "y"},
			g3.ID: {q1: "a", q2: "x"},
		}

		pairs := RankPairs([]guest.Guest{g1, g2, g3}, responses, event.ModeAny)
		require.Len(t, pairs, 3)
		assert.Equal(t, 1.0, pairs[0].Score)
		assert.Equal(t, g1.ID, pairs[0].GuestA)
		assert.Equal(t, g3.ID, pairs[0].GuestB)
		assert.InDelta(t, 0.5, pairs[1].Score, 1e-9)
		assert.InDelta(t, 0.5, pairs[2].Score, 1e-9)
	})

	t.Run("ties keep enumeration order", func(t *testing.T) {
		q1, q2 := uuid.New(), uuid.New()
		g1, g2, g3 := newGuest("", ""), newGuest("", ""), newGuest("", "")
		same := map[uuid.UUID]string{q1: "a", q2: "b"}
		responses := map[uuid.UUID]map[uuid.UUID]string{
			g1.ID: same, g2.ID: same, g3.ID: same,
		}

		for run := 0; run < 5; run++ {
			pairs := RankPairs([]guest.Guest{g1, g2, g3}, responses, event.ModeAny)
			require.Len(t, pairs, 3)
			assert.Equal(t, []ScoredPair{
				{GuestA: g1.ID, GuestB: g2.ID, Score: 1.0},
				{GuestA: g1.ID, GuestB: g3.ID, Score: 1.0},
				{GuestA: g2.ID, GuestB: g3.ID, Score: 1.0},
			}, pairs)
		}
	})
}

func TestAssign(t *testing.T) {
	g1, g2, g3, g4 := uuid.New(), uuid.New(), uuid.New(), uuid.New()

	t.Run("greedy blocks later pairs once capacity is spent", func(t *testing.T) {
		ranked := []ScoredPair{
			{GuestA: g1, GuestB: g2, Score: 0.9},
			{GuestA: g1, GuestB: g3, Score: 0.8},
			{GuestA: g2, GuestB: g4, Score: 0.5},
		}

		accepted := Assign(ranked, 1)
		require.Len(t, accepted, 1)
		assert.Equal(t, g1, accepted[0].GuestA)
		assert.Equal(t, g2, accepted[0].GuestB)
	})

	t.Run("capacity above one admits more pairs", func(t *testing.T) {
		ranked := []ScoredPair{
			{GuestA: g1, GuestB: g2, Score: 0.9},
			{GuestA: g1, GuestB: g3, Score: 0.8},
			{GuestA: g2, GuestB: g4, Score: 0.5},
		}

		accepted := Assign(ranked, 2)
		require.Len(t, accepted, 3)
	})

	t.Run("no guest ever exceeds capacity", func(t *testing.T) {
		guests := make([]uuid.UUID, 8)
		for i := range guests {
			guests[i] = uuid.New()
		}
		var ranked []ScoredPair
		for i := 0; i < len(guests); i++ {
			for j := i + 1; j < len(guests); j++ {
				ranked = append(ranked, ScoredPair{GuestA: guests[i], GuestB: guests[j], Score: 0.5})
			}
		}

		for capacity := 1; capacity <= 5; capacity++ {
			counts := map[uuid.UUID]int{}
			for _, p := range Assign(ranked, capacity) {
				counts[p.GuestA]++
				counts[p.GuestB]++
			}
			for _, n := range counts {
				assert.LessOrEqual(t, n, capacity)
			}
		}
	})

	t.Run("acceptance order follows ranked order", func(t *testing.T) {
		ranked := []ScoredPair{
			{GuestA: g1, GuestB: g2, Score: 0.9},
			{GuestA: g3, GuestB: g4, Score: 0.4},
		}
		accepted := Assign(ranked, 1)
		require.Len(t, accepted, 2)
		assert.Equal(t, 0.9, accepted[0].Score)
		assert.Equal(t, 0.4, accepted[1].Score)
	})
}

// Three guests answering identically: all pairwise scores 1.0, ties
// broken by enumeration order, greedy with capacity 1 keeps only the
// first pair.
func TestRankAndAssignEndToEnd(t *testing.T) {
	q1, q2 := uuid.New(), uuid.New()
	g1, g2, g3 := newGuest("", ""), newGuest("", ""), newGuest("", "")
	same := map[uuid.UUID]string{q1: "pizza", q2: "beach"}
	responses := map[uuid.UUID]map[uuid.UUID]string{
		g1.ID: same, g2.ID: same, g3.ID: same,
	}

	ranked := RankPairs([]guest.Guest{g1, g2, g3}, responses, event.ModeAny)
	accepted := Assign(ranked, 1)

	require.Len(t, accepted, 1)
	assert.Equal(t, g1.ID, accepted[0].GuestA)
	assert.Equal(t, g2.ID, accepted[0].GuestB)
	assert.Equal(t, 1.0, accepted[0].Score)
}
