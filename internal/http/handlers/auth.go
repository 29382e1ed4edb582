package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BlissMahlathi/heavenly/internal/http/middleware"
	"github.com/BlissMahlathi/heavenly/internal/http/validation"
	"github.com/BlissMahlathi/heavenly/internal/modules/auth"
	"github.com/BlissMahlathi/heavenly/internal/shared/apperr"
)

// AuthHandlers contains handlers for authentication routes.
type AuthHandlers struct {
	sessCfg middleware.SessionCfg
	repo    *auth.Repo
}

func NewAuthHandlers(db *gorm.DB, sessCfg middleware.SessionCfg) *AuthHandlers {
	return &AuthHandlers{sessCfg: sessCfg, repo: auth.NewRepo(db)}
}

type loginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandlers) Login(c *gin.Context) {
	var in loginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid request data.", validation.FromBindError(err, &in)))
		return
	}

	u, err := h.repo.GetByEmail(strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		// same answer for unknown email and wrong password
		middleware.Fail(c, apperr.UnauthorizedErr("Invalid email or password."))
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)) != nil {
		middleware.Fail(c, apperr.UnauthorizedErr("Invalid email or password."))
		return
	}

	sess, err := middleware.CreateSession(h.sessCfg, u.ID)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	maxAge := int(h.sessCfg.TTL.Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.sessCfg.CookieName, sess.ID, maxAge, "/", "", h.sessCfg.Secure, true)

	c.JSON(http.StatusOK, gin.H{"user": gin.H{
		"id":    u.ID,
		"email": u.Email,
		"name":  u.Name,
		"role":  u.Role,
	}})
}

func (h *AuthHandlers) Logout(c *gin.Context) {
	if v, ok := c.Get("session"); ok {
		if sess, ok := v.(*middleware.Session); ok {
			_ = middleware.DeleteSession(h.sessCfg, sess.ID)
		}
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.sessCfg.CookieName, "", -1, "/", "", h.sessCfg.Secure, true)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *AuthHandlers) Me(c *gin.Context) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		middleware.Fail(c, apperr.UnauthorizedErr("Authentication required."))
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": gin.H{
		"id":    u.ID,
		"email": u.Email,
		"name":  u.Name,
		"role":  u.Role,
	}})
}
