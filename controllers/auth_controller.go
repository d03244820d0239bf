package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	config "github.com/suryaone68/Real-Time-Event-management/config"
	models "github.com/suryaone68/Real-Time-Event-management/models"
	store "github.com/suryaone68/Real-Time-Event-management/store"
	utils "github.com/suryaone68/Real-Time-Event-management/utils"
)

// sendToken issues the session credential: an HttpOnly SameSite=Strict cookie
// plus the token echoed in the body for non-cookie clients.
func sendToken(c *gin.Context, cfg *config.Config, user *models.User) {
	token, err := utils.GenerateToken(cfg.JWTSecret, user.ID.Hex(), user.Username)
	if err != nil {
		log.Error().Err(err).Msg("could not sign token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie("token", token, int(utils.TokenLifetime.Seconds()), "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Authentication successful",
		"token":   token,
		"user":    user.Summary(),
	})
}

// ---------------- REGISTER ----------------
func Register(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Name     string `json:"name"`
			Username string `json:"username"`
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
			return
		}

		// Accept either key; the frontend sends name.
		username := input.Name
		if username == "" {
			username = input.Username
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		users := store.NewUsers(cfg.DB())
		user, err := users.Register(ctx, username, input.Email, input.Password)
		if err != nil {
			if errors.Is(err, store.ErrConflict) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Username or email already in use"})
				return
			}
			if store.IsValidation(err) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			log.Error().Err(err).Msg("register failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		sendToken(c, cfg, user)
	}
}

// ---------------- LOGIN ----------------
func Login(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&input); err != nil || input.Email == "" || input.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		users := store.NewUsers(cfg.DB())
		user, err := users.Authenticate(ctx, input.Email, input.Password)
		if err != nil {
			if errors.Is(err, store.ErrInvalidCredentials) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email or password"})
				return
			}
			log.Error().Err(err).Msg("login failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		sendToken(c, cfg, user)
	}
}

// ---------------- LOGOUT ----------------
func Logout(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetSameSite(http.SameSiteStrictMode)
		c.SetCookie("token", "", -1, "/", "", false, true)

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Logged out successfully",
		})
	}
}

// ---------------- ME ----------------
func Me(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetString("user_id")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		users := store.NewUsers(cfg.DB())
		user, err := users.FindByID(ctx, uid)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
				return
			}
			log.Error().Err(err).Msg("could not load current user")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"user":    user.Summary(),
		})
	}
}
