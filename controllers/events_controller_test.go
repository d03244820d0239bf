package controllers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	config "github.com/suryaone68/Real-Time-Event-management/config"
	store "github.com/suryaone68/Real-Time-Event-management/store"
)

func TestRespondStoreError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"validation", &store.ValidationError{Message: "Confirmed count cannot exceed capacity"}, http.StatusBadRequest, "Confirmed count cannot exceed capacity"},
		{"not found", store.ErrNotFound, http.StatusNotFound, "Event not found or not authorized"},
		{"internal", errors.New("connection reset"), http.StatusInternalServerError, "Internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			respondStoreError(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.body)
			// internal detail must not leak
			assert.NotContains(t, w.Body.String(), "connection reset")
		})
	}
}

func TestCreateEventRejectsBadIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{JWTSecret: "s3cret"}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(`{}`))
	c.Set("user_id", "not-a-hex-id")

	CreateEvent(cfg)(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateEventRejectsMalformedJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{JWTSecret: "s3cret"}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/events", strings.NewReader("not-json"))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("user_id", "652f8a000000000000000000")

	CreateEvent(cfg)(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Title, event type, and date are required")
}

func TestUploadEventImageRequiresFile(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{JWTSecret: "s3cret"}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/events/652f8a000000000000000000/image", nil)
	c.Set("user_id", "652f8a000000000000000000")

	UploadEventImage(cfg)(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "image file is required")
}
