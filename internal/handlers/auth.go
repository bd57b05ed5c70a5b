// internal/handlers/auth.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/comicden/comics-backend/internal/services"
	"github.com/comicden/comics-backend/internal/utils"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationFailedResponse(c, "Invalid input", err.Error())
		return
	}

	client, err := h.authService.Register(&req)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"msg":    "Successfully registered",
		"client": client,
	})
}

// POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationFailedResponse(c, "Invalid input", err.Error())
		return
	}

	authResponse, err := h.authService.Login(&req)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	// Cookie for browser clients; the token is also returned for
	// Authorization-header use.
	c.SetCookie("access_token", authResponse.AccessToken, authResponse.ExpiresIn, "/", "", false, true)

	utils.SuccessResponse(c, gin.H{
		"msg":          "Successfully logged in",
		"access_token": authResponse.AccessToken,
		"token_type":   authResponse.TokenType,
		"expires_in":   authResponse.ExpiresIn,
	})
}

// DELETE /logout
//
// Expires the cookie set at login. Bearer tokens stay valid until their
// TTL runs out; logout only clears the browser session.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie("access_token", "", -1, "/", "", false, true)

	utils.SuccessResponse(c, gin.H{"msg": "Successfully logged out"})
}
