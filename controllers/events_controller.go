package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	config "github.com/suryaone68/Real-Time-Event-management/config"
	store "github.com/suryaone68/Real-Time-Event-management/store"
	utils "github.com/suryaone68/Real-Time-Event-management/utils"
)

// ownerID recovers the authenticated owner set by the auth middleware.
func ownerID(c *gin.Context) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid user id"})
		return primitive.NilObjectID, false
	}
	return oid, true
}

// respondStoreError maps store failures onto the HTTP error taxonomy. A
// wrong owner surfaces exactly like a missing id.
func respondStoreError(c *gin.Context, err error) {
	switch {
	case store.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found or not authorized"})
	default:
		log.Error().Err(err).Msg("event store error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// ---------------- CREATE ----------------
func CreateEvent(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := ownerID(c)
		if !ok {
			return
		}

		var input store.CreateEventInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title, event type, and date are required"})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		events := store.NewEvents(cfg.DB())
		event, err := events.Create(ctx, owner, input)
		if err != nil {
			respondStoreError(c, err)
			return
		}

		c.JSON(http.StatusCreated, event)
	}
}

// ---------------- LIST ----------------
func ListEvents(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := ownerID(c)
		if !ok {
			return
		}

		params := store.ListParamsFromQuery(
			c.Query("search"),
			c.Query("sortBy"),
			c.Query("sortOrder"),
			c.Query("page"),
			c.Query("limit"),
		)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		events := store.NewEvents(cfg.DB())
		result, err := events.List(ctx, owner, params)
		if err != nil {
			respondStoreError(c, err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// ---------------- GET ----------------
func GetEvent(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := ownerID(c)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		events := store.NewEvents(cfg.DB())
		event, err := events.GetByID(ctx, owner, c.Param("id"))
		if err != nil {
			respondStoreError(c, err)
			return
		}

		etag := utils.GenerateETag(event.ID, event.UpdatedAt)
		if match := c.GetHeader("If-None-Match"); match != "" && match == etag {
			c.Status(http.StatusNotModified)
			return
		}
		c.Header("ETag", etag)
		c.Header("Last-Modified", event.UpdatedAt.UTC().Format(http.TimeFormat))

		c.JSON(http.StatusOK, event)
	}
}

// ---------------- UPDATE ----------------
func UpdateEvent(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := ownerID(c)
		if !ok {
			return
		}

		// Binding into the allow-list struct strips unknown fields before
		// anything reaches the store.
		var update store.EventUpdate
		if err := c.ShouldBindJSON(&update); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		events := store.NewEvents(cfg.DB())
		event, err := events.Update(ctx, owner, c.Param("id"), update)
		if err != nil {
			respondStoreError(c, err)
			return
		}

		c.JSON(http.StatusOK, event)
	}
}

// ---------------- DELETE ----------------
func DeleteEvent(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := ownerID(c)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		events := store.NewEvents(cfg.DB())
		deleted, err := events.Delete(ctx, owner, c.Param("id"))
		if err != nil {
			respondStoreError(c, err)
			return
		}

		if deleted.ImageURL != "" {
			if err := utils.DeleteFromCloudinary(deleted.ImageURL); err != nil {
				log.Warn().Err(err).Str("event", deleted.ID.Hex()).Msg("poster cleanup failed")
			}
		}

		c.JSON(http.StatusOK, gin.H{"message": "Event removed"})
	}
}

// ---------------- UPLOAD POSTER ----------------
func UploadEventImage(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := ownerID(c)
		if !ok {
			return
		}

		fileHeader, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open file"})
			return
		}
		defer file.Close()

		url, err := utils.UploadToCloudinary(file)
		if err != nil {
			log.Error().Err(err).Msg("poster upload failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "image upload failed"})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		events := store.NewEvents(cfg.DB())
		event, err := events.SetImageURL(ctx, owner, c.Param("id"), url)
		if err != nil {
			respondStoreError(c, err)
			return
		}

		c.JSON(http.StatusOK, event)
	}
}
