package api

import (
	"net/http"

	reqdto "tour-booking/internal/handler/dto/request"
	resdto "tour-booking/internal/handler/dto/response"
	"tour-booking/internal/handler/httperr"
	"tour-booking/internal/handler/middleware"
	"tour-booking/internal/pkg/config"
	"tour-booking/internal/pkg/cookie"
	"tour-booking/internal/pkg/errs"
	"tour-booking/internal/usecase/commands"
	"tour-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds      commands.AuthCommands
	users     queries.UserQueries
	jwtCfg    config.JWTConfig
	cookieCfg config.CookieConfig
}

func NewAuthHandler(cmds commands.AuthCommands, users queries.UserQueries, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		cmds:      cmds,
		users:     users,
		jwtCfg:    cfg.JWT,
		cookieCfg: cfg.Cookie,
	}
}

// @Summary Register
// @Description Create an account with role user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} resdto.AuthResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}

	result, err := h.cmds.Register(c.Request.Context(), req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondWithTokens(c, http.StatusCreated, result)
}

// @Summary User login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.AuthResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondWithTokens(c, http.StatusOK, result)
}

// @Summary Refresh tokens
// @Description Issue a new token pair from a refresh token (body or cookie)
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RefreshRequest false "Refresh request"
// @Success 200 {object} resdto.AuthResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req reqdto.RefreshRequest
	_ = c.ShouldBindJSON(&req)

	token := req.RefreshToken
	if token == "" {
		token = cookie.GetRefreshToken(c)
	}
	if token == "" {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("refresh token missing"), "Refresh token required", nil)
		return
	}

	result, err := h.cmds.RefreshToken(c.Request.Context(), token)
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondWithTokens(c, http.StatusOK, result)
}

// @Summary User logout
// @Description Clear the token cookies. Tokens are stateless and expire on their own.
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearTokenCookies(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Get current authenticated user information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	p, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	u, err := h.users.GetCurrentUser(c.Request.Context(), p.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	res, err := resdto.FromUserView(u)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *AuthHandler) respondWithTokens(c *gin.Context, status int, result *commands.LoginResult) {
	u, err := h.users.GetCurrentUser(c.Request.Context(), result.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	res, err := resdto.NewAuthResponse(
		result.AccessToken,
		result.RefreshToken,
		int64(h.jwtCfg.AccessTokenDuration.Seconds()),
		u,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	cookie.SetTokenCookies(c, h.cookieCfg, result.AccessToken, result.RefreshToken,
		h.jwtCfg.AccessTokenDuration, h.jwtCfg.RefreshTokenDuration)
	c.JSON(status, res)
}
