package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/neujobscan/backend/auth"
	"github.com/neujobscan/backend/models"
	"github.com/neujobscan/backend/storage"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	users      storage.UserStore
	jwtService *auth.JWTService
	sessions   auth.SessionStore
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(users storage.UserStore, jwtService *auth.JWTService, sessions auth.SessionStore) *AuthHandler {
	return &AuthHandler{
		users:      users,
		jwtService: jwtService,
		sessions:   sessions,
	}
}

// Register handles user registration with email/password
// @Summary Register a new user
// @Description Register a new user with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration request"
// @Success 201 {object} models.AuthResponse "Registration successful"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 409 {object} models.ErrorResponse "User already exists"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewErrorResponse(
			http.StatusBadRequest, "Invalid request body", err.Error()))
		return
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Printf("[AuthHandler] Failed to hash password: %v", err)
		c.JSON(http.StatusInternalServerError, models.NewErrorResponse(
			http.StatusInternalServerError, "Failed to process registration", ""))
		return
	}

	user := &models.User{
		Email:    req.Email,
		Name:     req.Name,
		Password: hashedPassword,
		Plan:     "free",
	}

	if err := h.users.CreateUser(c.Request.Context(), user); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			c.JSON(http.StatusConflict, models.NewErrorResponse(
				http.StatusConflict, "An account with this email already exists", ""))
			return
		}
		log.Printf("[AuthHandler] Failed to create user: %v", err)
		c.JSON(http.StatusInternalServerError, models.NewErrorResponse(
			http.StatusInternalServerError, "Registration failed", ""))
		return
	}

	token, err := h.issueToken(user)
	if err != nil {
		log.Printf("[AuthHandler] Failed to generate token: %v", err)
		c.JSON(http.StatusInternalServerError, models.NewErrorResponse(
			http.StatusInternalServerError, "Failed to generate token", ""))
		return
	}

	log.Printf("[AuthHandler] User registered: %s", user.Email)
	c.JSON(http.StatusCreated, models.AuthResponse{
		Token:   token,
		User:    user,
		Message: "Registration successful",
	})
}

// Login handles user login with email/password
// @Summary Login user
// @Description Login with email and password to get JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login request"
// @Success 200 {object} models.AuthResponse "Login successful"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Invalid credentials"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewErrorResponse(
			http.StatusBadRequest, "Invalid request body", err.Error()))
		return
	}

	user, err := h.users.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.NewErrorResponse(
			http.StatusUnauthorized, "Invalid email or password", ""))
		return
	}

	if !auth.CheckPassword(req.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, models.NewErrorResponse(
			http.StatusUnauthorized, "Invalid email or password", ""))
		return
	}

	token, err := h.issueToken(user)
	if err != nil {
		log.Printf("[AuthHandler] Failed to generate token: %v", err)
		c.JSON(http.StatusInternalServerError, models.NewErrorResponse(
			http.StatusInternalServerError, "Failed to generate token", ""))
		return
	}

	log.Printf("[AuthHandler] User logged in: %s", user.Email)
	c.JSON(http.StatusOK, models.AuthResponse{
		Token:   token,
		User:    user,
		Message: "Login successful",
	})
}

// Logout ends the current session, invalidating its token immediately
// @Summary Logout user
// @Description End the current session; the token stops working immediately
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.APIResponse "Logout successful"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := auth.GetAuthClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, models.NewErrorResponse(
			http.StatusUnauthorized, "Unauthorized", ""))
		return
	}

	h.sessions.Destroy(claims.SessionID)

	log.Printf("[AuthHandler] User logged out: %s", claims.Email)
	c.JSON(http.StatusOK, models.NewAPIResponse(http.StatusOK, nil, "Logout successful"))
}

// GetProfile retrieves the current user's profile
// @Summary Get user profile
// @Description Get the authenticated user's profile information
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ProfileResponse "User profile"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Router /auth/profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	claims := auth.GetAuthClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, models.NewErrorResponse(
			http.StatusUnauthorized, "Unauthorized", ""))
		return
	}

	user, err := h.users.GetUserByEmail(c.Request.Context(), claims.Email)
	if err != nil {
		c.JSON(http.StatusNotFound, models.NewErrorResponse(
			http.StatusNotFound, "User not found", ""))
		return
	}

	c.JSON(http.StatusOK, models.ProfileResponse{
		User: user,
	})
}

// issueToken opens a session and signs a token bound to it
func (h *AuthHandler) issueToken(user *models.User) (string, error) {
	session, err := h.sessions.Create(user.Email, h.jwtService.TokenTTL())
	if err != nil {
		return "", err
	}
	return h.jwtService.GenerateToken(user, session.ID)
}
