package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/vncsmyrnk/cookgen/internal/core/domain"
	"github.com/vncsmyrnk/cookgen/internal/core/ports"
	"github.com/vncsmyrnk/cookgen/internal/logging"
)

type AuthHandler struct {
	authService ports.AuthService
	userService ports.UserService
	logger      logging.Logger
}

func NewAuthHandler(authService ports.AuthService, userService ports.UserService, logger logging.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		userService: userService,
		logger:      logger,
	}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type verifyResponse struct {
	Status string `json:"status"`
	UserID int64  `json:"user_id"`
}

// Register godoc
// @Summary      Registers a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      201
// @Failure      409
// @Failure      422
// @Router       /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(r.Context(), w, h.logger, err)
		return
	}

	user, err := h.userService.Register(r.Context(), ports.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
	})
	if err != nil {
		writeError(r.Context(), w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// Login godoc
// @Summary      Exchanges username and password for a bearer token
// @Description  Accepts form fields `username` and `password`, or the same fields as JSON.
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Success      200
// @Failure      401
// @Router       /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	req, err := parseLogin(r)
	if err != nil {
		writeError(r.Context(), w, h.logger, err)
		return
	}

	token, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			writeDetail(w, http.StatusUnauthorized, "Incorrect username or password")
			return
		}
		writeError(r.Context(), w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, token)
}

func parseLogin(r *http.Request) (loginRequest, error) {
	var req loginRequest
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		if err := decodeJSON(r, &req); err != nil {
			return req, err
		}
	} else {
		if err := r.ParseForm(); err != nil {
			return req, validationError("invalid form body")
		}
		req.Username = r.PostFormValue("username")
		req.Password = r.PostFormValue("password")
	}

	if req.Username == "" || req.Password == "" {
		return req, validationError("username and password are required")
	}
	return req, nil
}

// Verify godoc
// @Summary      Checks that the bearer token is valid
// @Tags         auth
// @Produce      json
// @Success      200
// @Failure      401
// @Failure      403
// @Router       /auth/verify [get]
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeError(r.Context(), w, h.logger, domain.ErrUnauthenticated)
		return
	}

	writeJSON(w, http.StatusOK, verifyResponse{Status: "Token is valid", UserID: user.ID})
}

// Logout godoc
// @Summary      Revokes the bearer token
// @Description  The token stays revoked until it would have expired anyway.
// @Tags         auth
// @Produce      json
// @Success      200
// @Failure      400
// @Failure      401
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.authService.Logout(r.Context(), bearerToken(r)); err != nil {
		writeError(r.Context(), w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, detailResponse{Detail: "Token has been revoked"})
}
