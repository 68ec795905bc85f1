package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pricewatch/pricewatch-server/internal/logger"
	"github.com/pricewatch/pricewatch-server/internal/model"
)

// AuthService defines user registration and login operations.
type AuthService interface {
	Register(ctx context.Context, email, password, phoneNumber string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
}

// Auth handles HTTP endpoints for authentication.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

type registerRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// Register creates a new account and returns a session token.
func (h *Auth) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if req.Email == "" || req.Password == "" || req.PhoneNumber == "" {
		writeMessage(w, http.StatusBadRequest, "Email, password and phone number are required.")
		return
	}

	h.logger.Debug("Auth handler: processing registration request",
		"email", req.Email)

	token, err := h.authService.Register(r.Context(), req.Email, req.Password, req.PhoneNumber)
	if err != nil {
		// a conflict is an ordinary client outcome, already logged by the service
		if !errors.Is(err, model.ErrAlreadyExists) {
			h.logger.Error("Auth handler: registration failed",
				"email", req.Email,
				"error", err.Error())
		}
		handleError(w, err)
		return
	}

	h.logger.Info("Auth handler: registration completed",
		"email", req.Email)

	writeJSON(w, http.StatusOK, tokenResponse{
		Message: "User registered successfully.",
		Token:   token,
	})
}

// Login verifies credentials and returns a session token.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if req.Email == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "Email and password are required.")
		return
	}

	h.logger.Debug("Auth handler: processing login request",
		"email", req.Email)

	token, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "User not found.")
			return
		}
		if !errors.Is(err, model.ErrInvalidCredentials) {
			h.logger.Error("Auth handler: login failed",
				"email", req.Email,
				"error", err.Error())
		}
		handleError(w, err)
		return
	}

	h.logger.Info("Auth handler: login completed",
		"email", req.Email)

	writeJSON(w, http.StatusOK, tokenResponse{
		Message: "Login successful.",
		Token:   token,
	})
}
