package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus          = errors.New("invalid booking status")
	ErrInvalidTransition      = errors.New("invalid booking status transition")
	ErrTransitionNotPermitted = errors.New("booking status transition requires admin")
	ErrConfirmedBookingLocked = errors.New("confirmed booking can only be cancelled by an admin")
	ErrOwnershipViolation     = errors.New("booking belongs to another user")
)

// Effect is the inventory consequence of an accepted transition.
type Effect int

const (
	EffectNone Effect = iota
	EffectReleaseSeat
)

func (e Effect) String() string {
	switch e {
	case EffectReleaseSeat:
		return "release_seat"
	default:
		return "none"
	}
}

// Actor is whoever asks for the transition.
type Actor struct {
	UserID  uuid.UUID
	IsAdmin bool
}

type rule struct {
	adminOnly bool
	effect    Effect
}

// transitions is the closed set of legal moves. cancelled has no outgoing
// edges, which is what makes a double release impossible.
var transitions = map[Status]map[Status]rule{
	StatusPending: {
		StatusConfirmed: {adminOnly: true, effect: EffectNone},
		StatusCancelled: {adminOnly: false, effect: EffectReleaseSeat},
	},
	StatusConfirmed: {
		StatusPending:   {adminOnly: true, effect: EffectNone},
		StatusCancelled: {adminOnly: true, effect: EffectReleaseSeat},
	},
	StatusCancelled: {},
}

// CanTransition reports whether from -> to is in the table, ignoring who asks.
func CanTransition(from, to Status) bool {
	_, ok := transitions[from][to]
	return ok
}

// TransitionTo moves the booking to the target status and returns the seat
// effect the caller must apply in the same transaction. On error the booking
// is unchanged.
func (b *Booking) TransitionTo(to Status, actor Actor, now time.Time) (Effect, error) {
	if !to.IsValid() {
		return EffectNone, ErrInvalidStatus
	}
	if !actor.IsAdmin && !b.IsOwnedBy(actor.UserID) {
		return EffectNone, ErrOwnershipViolation
	}

	r, ok := transitions[b.status][to]
	if !ok {
		return EffectNone, ErrInvalidTransition
	}
	if r.adminOnly && !actor.IsAdmin {
		if b.status == StatusConfirmed && to == StatusCancelled {
			return EffectNone, ErrConfirmedBookingLocked
		}
		return EffectNone, ErrTransitionNotPermitted
	}

	b.status = to
	b.updatedAt = now
	return r.effect, nil
}

// Cancel is TransitionTo(StatusCancelled).
func (b *Booking) Cancel(actor Actor, now time.Time) (Effect, error) {
	return b.TransitionTo(StatusCancelled, actor, now)
}
