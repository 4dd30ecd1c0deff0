package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/e-campus-bff/config"
	"github.com/vnkhanh/e-campus-bff/middleware"
	"github.com/vnkhanh/e-campus-bff/services"
	"github.com/vnkhanh/e-campus-bff/utils"
)

// cookieMaxAge mirrors the upstream's token lifetime (7 days).
const cookieMaxAge = 7 * 24 * 60 * 60

// ====== INPUT STRUCTS ======
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
}

// authResponse tolerates both token spellings the upstream has used.
type authResponse struct {
	Token       string          `json:"token"`
	AccessToken string          `json:"accessToken"`
	User        json.RawMessage `json:"user"`
}

func (a authResponse) bearer() string {
	if a.Token != "" {
		return a.Token
	}
	return a.AccessToken
}

// ====== HANDLERS ======

// Login forwards credentials upstream and, on success, serializes the issued
// token into the jwt cookie. The cookie is the only place the session lives.
func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, apiErr := services.Upstream.Forward(c.Request.Context(), http.MethodPost, "/auth/login", "", input)
	if apiErr != nil {
		respondError(c, apiErr)
		return
	}

	var auth authResponse
	if err := json.Unmarshal(res.Body, &auth); err != nil || auth.bearer() == "" {
		respondParseFailure(c, "auth", err)
		return
	}

	setSessionCookie(c, auth.bearer())
	c.JSON(http.StatusOK, gin.H{"user": auth.User})
}

// Register forwards the new account upstream; when the upstream also issues
// a token the session starts immediately.
func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, apiErr := services.Upstream.Forward(c.Request.Context(), http.MethodPost, "/auth/register", "", input)
	if apiErr != nil {
		respondError(c, apiErr)
		return
	}

	var auth authResponse
	if err := json.Unmarshal(res.Body, &auth); err != nil {
		respondParseFailure(c, "auth", err)
		return
	}
	if auth.bearer() != "" {
		setSessionCookie(c, auth.bearer())
	}
	c.JSON(http.StatusCreated, gin.H{"user": auth.User})
}

// Logout clears the cookie. Purely local: the upstream token simply expires.
func Logout(c *gin.Context) {
	c.SetCookie(config.CookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Session returns the display fields decoded from the cookie token, without
// an upstream call. This is the single read path for "who am I" in the UI.
func Session(c *gin.Context) {
	claims, err := utils.DecodeSession(middleware.Token(c))
	if err != nil {
		log.Printf("session decode: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":   claims.UserID,
		"name": claims.Name,
		"role": claims.Role,
	})
}

func setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(config.CookieName, token, cookieMaxAge, "/", "", false, true)
}
