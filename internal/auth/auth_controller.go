package auth

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yanardrognuh/athlete-monitor/config"
	"github.com/yanardrognuh/athlete-monitor/internal/middleware"
	"github.com/yanardrognuh/athlete-monitor/internal/team"
	"github.com/yanardrognuh/athlete-monitor/internal/user"
	"github.com/yanardrognuh/athlete-monitor/pkg/responses"
	"github.com/yanardrognuh/athlete-monitor/pkg/token"
	"github.com/yanardrognuh/athlete-monitor/pkg/validator"
	"github.com/yanardrognuh/athlete-monitor/utils"
	"gorm.io/gorm"
)

type AuthController struct {
	repo     AuthRepository
	teamRepo team.TeamRepository
	config   *config.Config
}

func NewAuthController(repo AuthRepository, teamRepo team.TeamRepository, cfg *config.Config) *AuthController {
	return &AuthController{
		repo:     repo,
		teamRepo: teamRepo,
		config:   cfg,
	}
}

func (ac *AuthController) generateAndSaveTokens(u *user.User) (string, string, error) {
	accessToken, err := token.GenerateJWT(u.ID, u.Role, u.TeamID, ac.config.JWT.AccessTokenSecret, ac.config.JWT.AccessTokenExpiryMinutes)
	if err != nil {
		return "", "", fmt.Errorf("access token generation failed: %w", err)
	}

	refreshTokenString, err := token.GenerateRefreshToken(u.ID, ac.config.JWT.RefreshTokenSecret, ac.config.JWT.RefreshTokenExpiryDays)
	if err != nil {
		return "", "", fmt.Errorf("refresh token generation failed: %w", err)
	}

	refreshToken := &user.RefreshToken{
		UserID:    u.ID,
		Token:     refreshTokenString,
		ExpiresAt: time.Now().AddDate(0, 0, ac.config.JWT.RefreshTokenExpiryDays),
	}

	if err := ac.repo.SaveRefreshToken(refreshToken); err != nil {
		return "", "", fmt.Errorf("failed to save refresh token: %w", err)
	}
	return accessToken, refreshTokenString, nil
}

// @Summary      Register a new staff account
// @Description  Create a medis or pelatih account attached to an existing team.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        user  body  RegisterRequest  true  "Registration details"
// @Success      201   {object} responses.SuccessResponse "Account created, returns tokens and user info"
// @Failure      400   {object} responses.ErrorResponse "Validation error or unknown team"
// @Failure      409   {object} responses.ErrorResponse "Email already registered"
// @Failure      500   {object} responses.ErrorResponse "Internal server error"
// @Router       /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid input", validator.ParseError(err))
		return
	}

	if _, err := ac.repo.GetUserByEmail(strings.ToLower(req.Email)); !errors.Is(err, gorm.ErrRecordNotFound) {
		responses.Conflict(c, "User with this email already exists")
		return
	}

	t, err := ac.teamRepo.GetTeamByID(req.TeamID)
	if err != nil {
		responses.InternalServerError(c, "Team lookup failed")
		return
	}
	if t == nil {
		responses.BadRequest(c, "Team does not exist")
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		responses.InternalServerError(c, "Error hashing password")
		return
	}

	newUser := &user.User{
		Name:     req.Name,
		Email:    strings.ToLower(req.Email),
		Password: hashedPassword,
		Role:     req.Role,
		TeamID:   req.TeamID,
	}

	if err := ac.repo.CreateUser(newUser); err != nil {
		log.Printf("CreateUser failed: %v", err)
		responses.InternalServerError(c, "User creation failed")
		return
	}

	accessToken, refreshToken, err := ac.generateAndSaveTokens(newUser)
	if err != nil {
		responses.InternalServerError(c, err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Account registered successfully", AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         FilterUserRecord(newUser),
	})
}

// @Summary      Login
// @Description  Authenticate a staff account with email and password.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        credentials  body  LoginRequest  true  "Login credentials"
// @Success      200   {object} responses.SuccessResponse "Login successful, returns tokens and user info"
// @Failure      400   {object} responses.ErrorResponse "Invalid input"
// @Failure      401   {object} responses.ErrorResponse "Invalid credentials"
// @Failure      500   {object} responses.ErrorResponse "Internal server error"
// @Router       /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid input", validator.ParseError(err))
		return
	}

	foundUser, err := ac.repo.GetUserByEmail(strings.ToLower(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.Unauthorized(c, "Invalid credentials")
			return
		}
		responses.InternalServerError(c, "Database error")
		return
	}

	if !utils.CheckPassword(foundUser.Password, req.Password) {
		responses.Unauthorized(c, "Invalid credentials")
		return
	}

	accessToken, refreshToken, err := ac.generateAndSaveTokens(foundUser)
	if err != nil {
		responses.InternalServerError(c, err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Login successful", AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         FilterUserRecord(foundUser),
	})
}

// @Summary      Refresh Access Token
// @Description  Refreshes the access token using a valid refresh token.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body RefreshTokenRequest true "Refresh Token Request"
// @Success      200 {object} responses.SuccessResponse "Returns a new access token"
// @Failure      400 {object} responses.ErrorResponse "Invalid input"
// @Failure      401 {object} responses.ErrorResponse "Invalid or expired refresh token"
// @Failure      500 {object} responses.ErrorResponse "Token generation failed"
// @Router       /auth/refresh-token [post]
func (ac *AuthController) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid input", validator.ParseError(err))
		return
	}

	rt, err := ac.repo.GetRefreshToken(req.RefreshToken)
	if err != nil {
		responses.Unauthorized(c, "Invalid or expired refresh token")
		return
	}

	u, err := ac.repo.GetUserByID(rt.UserID)
	if err != nil {
		responses.Unauthorized(c, "User no longer exists")
		return
	}

	newAccessToken, err := token.GenerateJWT(u.ID, u.Role, u.TeamID, ac.config.JWT.AccessTokenSecret, ac.config.JWT.AccessTokenExpiryMinutes)
	if err != nil {
		responses.InternalServerError(c, "New access token generation failed")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Token refreshed", gin.H{"access_token": newAccessToken})
}

// @Summary      Get Profile
// @Description  Retrieves the profile of the currently authenticated user.
// @Tags         Auth
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} responses.SuccessResponse "User profile data"
// @Failure      401 {object} responses.ErrorResponse "Unauthorized"
// @Failure      404 {object} responses.ErrorResponse "User not found"
// @Router       /auth/me [get]
func (ac *AuthController) GetProfile(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	currentUser, err := ac.repo.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFound(c, "User")
			return
		}
		responses.InternalServerError(c, "Failed to retrieve profile")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Profile retrieved successfully", FilterUserRecord(currentUser))
}

// @Summary      Change Password
// @Description  Changes the authenticated user's password and revokes all refresh tokens.
// @Tags         Auth
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body ChangePasswordRequest true "Password change request"
// @Success      200 {object} responses.SuccessResponse "Password changed"
// @Failure      400 {object} responses.ErrorResponse "Invalid input"
// @Failure      401 {object} responses.ErrorResponse "Wrong old password"
// @Failure      500 {object} responses.ErrorResponse "Internal server error"
// @Router       /auth/change-password [post]
func (ac *AuthController) ChangePassword(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid input", validator.ParseError(err))
		return
	}

	u, err := ac.repo.GetUserByID(userID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve user")
		return
	}

	if !utils.CheckPassword(u.Password, req.OldPassword) {
		responses.Unauthorized(c, "Old password is incorrect")
		return
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		responses.InternalServerError(c, "Error hashing password")
		return
	}

	u.Password = hashedPassword
	if err := ac.repo.UpdateUser(u); err != nil {
		responses.InternalServerError(c, "Could not update password")
		return
	}

	// Force every session to re-authenticate with the new password.
	if err := ac.repo.InvalidateAllRefreshTokensForUser(u.ID); err != nil {
		log.Printf("failed to revoke refresh tokens for user %d: %v", u.ID, err)
	}

	responses.SendSuccess(c, http.StatusOK, "Password changed successfully", nil)
}

// @Summary      Logout
// @Description  Revokes the given refresh token, or all of the user's sessions.
// @Tags         Auth
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body LogoutRequest true "Logout request"
// @Success      200 {object} responses.SuccessResponse "Logged out"
// @Failure      401 {object} responses.ErrorResponse "Unauthorized"
// @Failure      500 {object} responses.ErrorResponse "Internal server error"
// @Router       /auth/logout [post]
func (ac *AuthController) Logout(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	var req LogoutRequest
	_ = c.ShouldBindJSON(&req)

	if req.InvalidateAllSessions {
		if err := ac.repo.InvalidateAllRefreshTokensForUser(userID); err != nil {
			responses.InternalServerError(c, "Failed to revoke sessions")
			return
		}
	} else if req.RefreshToken != "" {
		if err := ac.repo.InvalidateRefreshToken(req.RefreshToken); err != nil {
			responses.InternalServerError(c, "Failed to revoke refresh token")
			return
		}
	}

	responses.SendSuccess(c, http.StatusOK, "Logged out successfully", nil)
}
