package lesson

import (
	"math/rand"
	"sync"
	"time"
)

// RejectionReasons is the fixed set of canned moderation messages.
var RejectionReasons = []string{
	"Inappropriate content detected in uploaded files",
	"Content quality does not meet educational standards",
	"Sensitive information found in the material",
}

type (
	// Verdict is the outcome of running a submission through moderation.
	// Reason is empty iff Valid is true.
	Verdict struct {
		Valid  bool
		Reason string
	}

	// Moderator decides whether a submission's files are acceptable.
	// The production implementation is a stand-in for an ML moderation
	// pipeline; tests inject deterministic ones.
	Moderator interface {
		Check(files []File) Verdict
	}

	// ModeratorFunc adapts a function to the Moderator interface.
	ModeratorFunc func(files []File) Verdict

	randomModerator struct {
		passRate float64
		mu       sync.Mutex
		rnd      *rand.Rand
	}
)

func (f ModeratorFunc) Check(files []File) Verdict { return f(files) }

// NewRandomModerator returns a Moderator that passes submissions with the
// given probability and otherwise picks one canned rejection reason uniformly
// at random.
func NewRandomModerator(passRate float64) Moderator {
	return newRandomModerator(passRate, rand.NewSource(time.Now().UnixNano()))
}

// NewSeededModerator is NewRandomModerator with a fixed seed, for tests.
func NewSeededModerator(passRate float64, seed int64) Moderator {
	return newRandomModerator(passRate, rand.NewSource(seed))
}

func newRandomModerator(passRate float64, src rand.Source) Moderator {
	return &randomModerator{
		passRate: passRate,
		rnd:      rand.New(src),
	}
}

func (m *randomModerator) Check(files []File) Verdict {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.rnd.Float64() < m.passRate {
		return Verdict{Valid: true}
	}
	return Verdict{Reason: RejectionReasons[m.rnd.Intn(len(RejectionReasons))]}
}
