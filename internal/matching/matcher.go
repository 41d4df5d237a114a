package matching

import (
	"sort"

	"github.com/google/uuid"

	"github.com/partymatcher/party-matchmaker-backend/internal/event"
	"github.com/partymatcher/party-matchmaker-backend/internal/guest"
)

// Similarity scores two guests' answer maps: the fraction of commonly
// answered questions where both gave the exact same answer. Returns 0
// when either map is empty or no question was answered by both.
// Symmetric and deterministic.
func Similarity(a, b map[uuid.UUID]string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	common := 0
	same := 0
	for q, answerA := range a {
		answerB, ok := b[q]
		if !ok {
			continue
		}
		common++
		if answerA == answerB {
			same++
		}
	}

	if common == 0 {
		return 0.0
	}
	return float64(same) / float64(common)
}

// Compatible reports whether two guests may be paired under the event's
// matching mode. Anything goes in "any" mode. In preference_based mode
// each guest's looking_for must accept the other's gender; a missing
// looking_for counts as "any", a missing gender only satisfies an "any"
// preference. Symmetric.
func Compatible(a, b guest.Guest, mode string) bool {
	if mode != event.ModePreferenceBased {
		return true
	}
	return accepts(a.LookingFor, b.Gender) && accepts(b.LookingFor, a.Gender)
}

func accepts(lookingFor, gender *string) bool {
	if lookingFor == nil || *lookingFor == "any" {
		return true
	}
	return gender != nil && *lookingFor == *gender
}

// ScoredPair is an unordered guest pair with its similarity score.
type ScoredPair struct {
	GuestA uuid.UUID
	GuestB uuid.UUID
	Score  float64
}

// RankPairs enumerates every unordered guest pair once, drops pairs the
// preference filter rejects, scores the rest, and orders them by score
// descending. The sort is stable over enumeration order (guests as
// given, inner index after outer), so equal scores rank reproducibly.
func RankPairs(guests []guest.Guest, responses map[uuid.UUID]map[uuid.UUID]string, mode string) []ScoredPair {
	pairs := make([]ScoredPair, 0, len(guests)*(len(guests)-1)/2)
	for i := 0; i < len(guests); i++ {
		for j := i + 1; j < len(guests); j++ {
			if !Compatible(guests[i], guests[j], mode) {
				continue
			}
			pairs = append(pairs, ScoredPair{
				GuestA: guests[i].ID,
				GuestB: guests[j].ID,
				Score:  Similarity(responses[guests[i].ID], responses[guests[j].ID]),
			})
		}
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].Score > pairs[j].Score
	})
	return pairs
}

// Assign walks the ranked pairs in order and accepts a pair when both
// guests are still under capacity. Greedy maximal matching under a
// per-guest cap, NOT an optimal weighted b-matching: an early acceptance
// can block a better global assignment. Output keeps acceptance order.
func Assign(ranked []ScoredPair, capacity int) []ScoredPair {
	counts := make(map[uuid.UUID]int, len(ranked))
	accepted := make([]ScoredPair, 0, len(ranked))

	for _, p := range ranked {
		if counts[p.GuestA] < capacity && counts[p.GuestB] < capacity {
			accepted = append(accepted, p)
			counts[p.GuestA]++
			counts[p.GuestB]++
		}
	}
	return accepted
}
