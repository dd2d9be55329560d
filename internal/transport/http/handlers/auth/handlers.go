package authhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"rms/internal/auth"
	"rms/internal/transport/http/api"
	"rms/internal/transport/http/middleware"
)

type Handler struct {
	DB       *pgxpool.Pool
	Secret   string
	TokenTTL time.Duration
}

func NewHandler(db *pgxpool.Pool, secret string, tokenTTL time.Duration) *Handler {
	return &Handler{DB: db, Secret: secret, TokenTTL: tokenTTL}
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload loginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	var id, name, role, passwordHash string
	err := h.DB.QueryRow(r.Context(), `
    SELECT id, name, role, password_hash
    FROM users
    WHERE email = $1
  `, payload.Email).Scan(&id, &name, &role, &passwordHash)
	if errors.Is(err, pgx.ErrNoRows) {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid email or password", reqID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "login_failed", "failed to look up user", reqID)
		return
	}

	if err := auth.CheckPassword(passwordHash, payload.Password); err != nil {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid email or password", reqID)
		return
	}

	token, err := auth.GenerateToken(h.Secret, auth.Claims{UserID: id, Role: role}, h.TokenTTL)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "login_failed", "failed to issue token", reqID)
		return
	}

	api.Success(w, map[string]any{
		"token": token,
		"user":  map[string]string{"id": id, "name": name, "role": role},
	}, reqID)
}
