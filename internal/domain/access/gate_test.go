//go:build unit

package access_test

import (
	"testing"

	"tour-booking/internal/domain/access"
	"tour-booking/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	cases := []struct {
		op    access.Operation
		user  bool
		admin bool
	}{
		{op: access.OpCreateBooking, user: true, admin: false},
		{op: access.OpListOwnBookings, user: true, admin: false},
		{op: access.OpCancelBooking, user: true, admin: true},
		{op: access.OpListAllBookings, user: false, admin: true},
		{op: access.OpChangeBookingStatus, user: false, admin: true},
		{op: access.OpManageTours, user: false, admin: true},
		{op: access.OpManageUserRoles, user: false, admin: true},
	}

	for _, tc := range cases {
		t.Run(string(tc.op), func(t *testing.T) {
			assertPermit(t, tc.user, access.Authorize(user.RoleUser, tc.op))
			assertPermit(t, tc.admin, access.Authorize(user.RoleAdmin, tc.op))
		})
	}
}

func TestAuthorize_DeniesUnknown(t *testing.T) {
	assert.ErrorIs(t, access.Authorize(user.RoleAdmin, access.Operation("tour:teleport")), access.ErrAuthorizationDenied)
	assert.ErrorIs(t, access.Authorize(user.Role("guest"), access.OpCancelBooking), access.ErrAuthorizationDenied)
	assert.ErrorIs(t, access.Authorize("", access.OpCreateBooking), access.ErrAuthorizationDenied)
}

func TestPrincipal_Actor(t *testing.T) {
	id := uuid.New()

	admin := access.Principal{UserID: id, Role: user.RoleAdmin}.Actor()
	assert.Equal(t, id, admin.UserID)
	assert.True(t, admin.IsAdmin)

	assert.False(t, access.Principal{UserID: id, Role: user.RoleUser}.Actor().IsAdmin)
}

func assertPermit(t *testing.T, want bool, err error) {
	t.Helper()
	if want {
		assert.NoError(t, err)
		return
	}
	assert.ErrorIs(t, err, access.ErrAuthorizationDenied)
}
