package handlers

import (
	"net/http"

	"github.com/pros100kyiv/HUBbase-sub001/services/auth"
	"github.com/pros100kyiv/HUBbase-sub001/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves staff sign-in and sign-out.
type AuthHandler struct {
	AuthSvc auth.AuthService
}

// SignInHandler handles POST /api/auth/login.
func (h *AuthHandler) SignInHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid sign-in request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	staff, token, err := h.AuthSvc.SignIn(req.Email, req.Password)
	if err != nil {
		logger.Warn("Sign-in failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sign-in failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"staff": staff,
	})
}

// SignOutHandler handles POST /api/auth/logout. The caller's session token
// is revoked; the JWT itself stops being accepted immediately.
func (h *AuthHandler) SignOutHandler(c *gin.Context) {
	logger := utils.GetLogger()

	staffID := c.GetString("staffID")
	if staffID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not signed in"})
		return
	}
	if err := h.AuthSvc.SignOut(staffID); err != nil {
		logger.Error("Sign-out failed", zap.String("staffID", staffID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}
