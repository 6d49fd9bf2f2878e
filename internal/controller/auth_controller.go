package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/datlq-dev/quizhub/config"
	"github.com/datlq-dev/quizhub/internal/dto"
	"github.com/datlq-dev/quizhub/internal/middleware"
	"github.com/datlq-dev/quizhub/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	authService  service.AuthService
	oauthService service.GoogleOAuthService
	tokenService service.TokenService
	frontendURL  string
}

func NewAuthController(
	authService service.AuthService,
	oauthService service.GoogleOAuthService,
	tokenService service.TokenService,
	cfg *config.Config,
) *AuthController {
	return &AuthController{
		authService:  authService,
		oauthService: oauthService,
		tokenService: tokenService,
		frontendURL:  cfg.FrontendURL,
	}
}

// Register godoc
// @Summary Register with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body dto.RegisterRequestDTO true "Registration data"
// @Success 201 {object} dto.AuthResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := c.authService.Register(req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "User already exists"})
			return
		}
		log.Error().Err(err).Msg("Register: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Server error"})
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// Login godoc
// @Summary Login with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequestDTO true "Credentials"
// @Success 200 {object} dto.AuthResponseDTO
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := c.authService.Login(req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid credentials"})
			return
		}
		log.Error().Err(err).Msg("Login: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Server error"})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GoogleLogin godoc
// @Summary Start the Google OAuth handshake
// @Tags Auth
// @Success 307
// @Router /api/auth/google [get]
func (c *AuthController) GoogleLogin(ctx *gin.Context) {
	state := uuid.NewString()
	ctx.Redirect(http.StatusTemporaryRedirect, c.oauthService.AuthURL(state))
}

// GoogleCallback godoc
// @Summary Google OAuth callback; redirects to the frontend with a token
// @Tags Auth
// @Success 302
// @Router /api/auth/google/callback [get]
func (c *AuthController) GoogleCallback(ctx *gin.Context) {
	code := ctx.Query("code")
	if code == "" {
		c.redirectWithError(ctx)
		return
	}

	user, err := c.oauthService.HandleCallback(ctx.Request.Context(), code)
	if err != nil {
		log.Error().Err(err).Msg("GoogleCallback: OAuth flow failed")
		c.redirectWithError(ctx)
		return
	}

	token, err := c.tokenService.Generate(user.ID, user.Email)
	if err != nil {
		log.Error().Err(err).Uint("userID", user.ID).Msg("GoogleCallback: failed to issue token")
		c.redirectWithError(ctx)
		return
	}
	ctx.Redirect(http.StatusFound, fmt.Sprintf("%s/auth/google?token=%s", c.frontendURL, token))
}

// GoogleFailure redirects OAuth failures back to the frontend.
func (c *AuthController) GoogleFailure(ctx *gin.Context) {
	c.redirectWithError(ctx)
}

func (c *AuthController) redirectWithError(ctx *gin.Context) {
	ctx.Redirect(http.StatusFound, fmt.Sprintf("%s/auth/google?error=auth_failed", c.frontendURL))
}

// GetMe godoc
// @Summary Return the caller's profile
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.MeResponseDTO
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/auth/me [get]
func (c *AuthController) GetMe(ctx *gin.Context) {
	resp, err := c.authService.GetMe(middleware.UserID(ctx))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "User not found"})
			return
		}
		log.Error().Err(err).Msg("GetMe: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Server error"})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
