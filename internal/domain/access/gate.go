// Package access holds the role permission table consulted by every use
// case before it touches bookings, tours or users.
package access

import (
	"errors"
	"slices"

	"tour-booking/internal/domain/booking"
	"tour-booking/internal/domain/user"

	"github.com/google/uuid"
)

var ErrAuthorizationDenied = errors.New("authorization denied")

type Operation string

const (
	OpCreateBooking       Operation = "booking:create"
	OpListOwnBookings     Operation = "booking:list_own"
	OpCancelBooking       Operation = "booking:cancel"
	OpListAllBookings     Operation = "booking:list_all"
	OpChangeBookingStatus Operation = "booking:change_status"
	OpManageTours         Operation = "tour:manage"
	OpManageUserRoles     Operation = "user:manage_roles"
)

var permissions = map[Operation][]user.Role{
	OpCreateBooking:       {user.RoleUser},
	OpListOwnBookings:     {user.RoleUser},
	OpCancelBooking:       {user.RoleUser, user.RoleAdmin},
	OpListAllBookings:     {user.RoleAdmin},
	OpChangeBookingStatus: {user.RoleAdmin},
	OpManageTours:         {user.RoleAdmin},
	OpManageUserRoles:     {user.RoleAdmin},
}

// Authorize returns nil when role may perform op. Unknown operations and
// unknown roles are denied.
func Authorize(role user.Role, op Operation) error {
	allowed, ok := permissions[op]
	if !ok || !slices.Contains(allowed, role) {
		return ErrAuthorizationDenied
	}
	return nil
}

// Principal is the authenticated caller as established by the identity layer.
type Principal struct {
	UserID uuid.UUID
	Role   user.Role
}

func (p Principal) Authorize(op Operation) error {
	return Authorize(p.Role, op)
}

func (p Principal) IsAdmin() bool {
	return p.Role == user.RoleAdmin
}

func (p Principal) Actor() booking.Actor {
	return booking.Actor{UserID: p.UserID, IsAdmin: p.IsAdmin()}
}
