package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/osse101/SideQuest_Go/internal/auth"
	"github.com/osse101/SideQuest_Go/internal/domain"
	"github.com/osse101/SideQuest_Go/internal/logger"
)

// SignupRequest is the body of POST /api/auth/signup
type SignupRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Username string `json:"username" validate:"required,min=3,max=20"`
}

// LoginRequest is the body of POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,max=254"`
	Password string `json:"password" validate:"required,max=72"`
}

// AuthResponse is returned by signup and login
type AuthResponse struct {
	User      *domain.User `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
}

// AuthHandler serves the account and session endpoints
type AuthHandler struct {
	service      auth.Service
	secureCookie bool
}

// NewAuthHandler creates the auth handler. secureCookie marks the session
// cookie Secure and should be set in production.
func NewAuthHandler(service auth.Service, secureCookie bool) *AuthHandler {
	return &AuthHandler{service: service, secureCookie: secureCookie}
}

// HandleSignup creates an account and starts a session
// @Summary Sign up
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Account details"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/auth/signup [post]
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Signup"); err != nil {
		return
	}

	res, err := h.service.Signup(r.Context(), auth.SignupInput{
		Email:    req.Email,
		Password: req.Password,
		Username: req.Username,
	})
	if err != nil {
		respondServiceError(w, r, "Signup", err)
		return
	}

	logger.FromContext(r.Context()).Info(LogMsgSignup, "user_id", res.User.ID)
	h.setSessionCookie(w, res.Token, res.ExpiresAt)
	respondJSON(w, http.StatusCreated, AuthResponse(*res))
}

// HandleLogin verifies credentials and starts a session
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Login"); err != nil {
		return
	}

	res, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(w, r, "Login", err)
		return
	}

	logger.FromContext(r.Context()).Info(LogMsgLogin, "user_id", res.User.ID)
	h.setSessionCookie(w, res.Token, res.ExpiresAt)
	respondJSON(w, http.StatusOK, AuthResponse(*res))
}

// HandleLogout ends the caller's session
// @Summary Log out
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SuccessResponse
// @Router /api/auth/logout [post]
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, ErrMsgUnauthorizedError)
		return
	}

	if err := h.service.Logout(r.Context(), principal.SessionID); err != nil {
		respondServiceError(w, r, "Logout", err)
		return
	}

	logger.FromContext(r.Context()).Info(LogMsgLogout)
	h.clearSessionCookie(w)
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgLoggedOut})
}

// HandleMe returns the authenticated user
// @Summary Current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.User
// @Failure 401 {object} ErrorResponse
// @Router /api/auth/user [get]
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := RequireUserID(r, w)
	if !ok {
		return
	}

	user, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, "Get user", err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string, expires time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

// TokenFromRequest extracts a session token from the Authorization header or
// the session cookie, in that order.
func TokenFromRequest(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		if token, ok := strings.CutPrefix(h, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}
	if c, err := r.Cookie(auth.SessionCookieName); err == nil {
		return c.Value
	}
	return ""
}
