package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopmesh/auth-service/internal/db"
)

// Request/Response structures

type RegisterRequest struct {
	Email    string `json:"email" example:"ana@example.com"`
	Password string `json:"password" example:"secret1"`
	db.Profile
}

type LoginRequest struct {
	Email    string `json:"email" example:"ana@example.com"`
	Password string `json:"password" example:"secret1"`
}

type RegisterResponse struct {
	UserID string `json:"userId" example:"550e8400-e29b-41d4-a716-446655440000"`
}

type LoginResponse struct {
	Token string        `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	User  db.PublicUser `json:"user"`
}

type ErrorResponse struct {
	Message string `json:"message" example:"InvalidCredentials"`
}

type AuthHandler struct {
	service *AuthService
}

func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register godoc
// @Summary		Register a new user
// @Description	Create a new account with email, password and profile fields
// @Tags			auth
// @Accept			json
// @Produce		json
// @Param			user	body		RegisterRequest		true	"Registration data"
// @Success		201		{object}	RegisterResponse	"Account created"
// @Failure		400		{object}	ErrorResponse		"Invalid input or duplicate email"
// @Failure		500		{object}	ErrorResponse		"Internal server error"
// @Router			/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		sendMessage(w, http.StatusBadRequest, "email and password are required")
		return
	}

	id, err := h.service.Register(req.Email, req.Password, req.Profile)
	if err != nil {
		if errors.Is(err, ErrDuplicateIdentity) {
			sendError(w, http.StatusBadRequest, ErrDuplicateIdentity)
			return
		}
		sendMessage(w, http.StatusInternalServerError, "could not create user")
		return
	}

	sendJSON(w, http.StatusCreated, RegisterResponse{UserID: id.String()})
}

// Login godoc
// @Summary		Log in
// @Description	Verify credentials and return a signed bearer token plus the public user view
// @Tags			auth
// @Accept			json
// @Produce		json
// @Param			credentials	body		LoginRequest	true	"Login credentials"
// @Success		200			{object}	LoginResponse	"Login successful"
// @Failure		400			{object}	ErrorResponse	"Invalid input"
// @Failure		401			{object}	ErrorResponse	"Invalid credentials"
// @Failure		500			{object}	ErrorResponse	"Internal server error"
// @Router			/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		sendMessage(w, http.StatusBadRequest, "email and password are required")
		return
	}

	token, user, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			sendError(w, http.StatusUnauthorized, ErrInvalidCredentials)
			return
		}
		sendMessage(w, http.StatusInternalServerError, "could not log in")
		return
	}

	sendJSON(w, http.StatusOK, LoginResponse{Token: token, User: *user})
}

// Profile godoc
// @Summary		Get the caller's profile
// @Description	Return the identity snapshot embedded in the presented token
// @Tags			auth
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	db.PublicUser	"Profile from token claims"
// @Failure		401	{object}	ErrorResponse	"Missing, invalid or expired token"
// @Router			/profile [get]
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	// The claims already carry everything the response needs; the
	// store is deliberately not consulted, so the answer reflects
	// issuance-time data.
	claims, err := IdentityFromContext(r)
	if err != nil {
		sendError(w, http.StatusUnauthorized, ErrUnauthorized)
		return
	}

	sendJSON(w, http.StatusOK, claims.Public())
}

// Helpers

func sendJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

func sendError(w http.ResponseWriter, statusCode int, err error) {
	sendJSON(w, statusCode, ErrorResponse{Message: err.Error()})
}

func sendMessage(w http.ResponseWriter, statusCode int, message string) {
	sendJSON(w, statusCode, ErrorResponse{Message: message})
}
