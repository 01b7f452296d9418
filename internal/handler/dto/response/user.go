package response

import (
	"time"

	"tour-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromUserView(v *queries.UserView) (*UserResponse, error) {
	return mapInto[UserResponse](v)
}

func FromUserList(views []*queries.UserView) ([]*UserResponse, error) {
	return mapEach[UserResponse](views)
}
