// internal/controller/auth_controller.go
package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/carpetland/crm-backend/internal/auth"
	appErrors "github.com/carpetland/crm-backend/internal/errors"
	"github.com/carpetland/crm-backend/internal/service"
)

type AuthController struct {
	AuthService *service.AuthService
	Sessions    *auth.Sessions
}

type credentials struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *AuthController) SignUp(w http.ResponseWriter, r *http.Request) {
	var body credentials
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	profile, err := c.AuthService.SignUp(body.Name, body.Email, body.Password)
	if err != nil {
		if appErrors.IsValidation(err) || errors.Is(err, service.ErrEmailTaken) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.WithError(err).Error("sign-up failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	c.Sessions.Create(w, profile.ID)
	writeJSON(w, http.StatusOK, profile)
}

func (c *AuthController) SignIn(w http.ResponseWriter, r *http.Request) {
	var body credentials
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	profile, err := c.AuthService.SignIn(body.Email, body.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, err.Error())
			return
		}
		log.WithError(err).Error("sign-in failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	c.Sessions.Create(w, profile.ID)
	writeJSON(w, http.StatusOK, profile)
}

func (c *AuthController) SignOut(w http.ResponseWriter, r *http.Request) {
	c.Sessions.Clear(w)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Me resolves the current session to its display profile.
func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	uid, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	profile, err := c.AuthService.Identity(uid)
	if err != nil {
		log.WithError(err).Error("failed to load profile")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if profile == nil {
		writeError(w, http.StatusUnauthorized, "account no longer exists")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"email": profile.Email,
		"name":  profile.Name,
	})
}
