package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/berkcan/schedbuilder/internal/app/models/dto"
	"github.com/berkcan/schedbuilder/internal/pkg/auth"
)

// AuthController issues admin tokens for the protected endpoints
type AuthController struct {
	jwtService   *auth.JWTService
	adminKeyHash string
	logger       zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(jwtService *auth.JWTService, adminKeyHash string, logger zerolog.Logger) *AuthController {
	return &AuthController{
		jwtService:   jwtService,
		adminKeyHash: adminKeyHash,
		logger:       logger,
	}
}

// Token exchanges the admin key for a bearer token
// @Summary Issue an admin token
// @Description Verifies the admin key against the configured hash and returns a short-lived bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.TokenRequest true "Admin key"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse} "Token issued"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid admin key"
// @Router /auth/token [post]
func (c *AuthController) Token(ctx *gin.Context) {
	var req dto.TokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid token request")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if c.adminKeyHash == "" || !auth.CheckAdminKey(req.AdminKey, c.adminKeyHash) {
		c.logger.Warn().Str("clientIP", ctx.ClientIP()).Msg("Rejected admin token request")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid admin key"),
		))
		return
	}

	token, expiresIn, err := c.jwtService.GenerateAdminToken()
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to generate admin token")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Failed to generate token"),
		))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	}, ""))
}
