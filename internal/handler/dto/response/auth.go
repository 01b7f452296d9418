package response

import "tour-booking/internal/usecase/queries"

type AuthResponse struct {
	AccessToken  string        `json:"accessToken"`
	RefreshToken string        `json:"refreshToken"`
	ExpiresIn    int64         `json:"expiresIn"`
	User         *UserResponse `json:"user"`
}

func NewAuthResponse(accessToken, refreshToken string, expiresIn int64, u *queries.UserView) (*AuthResponse, error) {
	user, err := FromUserView(u)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    expiresIn,
		User:         user,
	}, nil
}
