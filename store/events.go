package store

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/suryaone68/Real-Time-Event-management/models"
)

// Events is the owner-scoped event record store.
type Events struct {
	col *mongo.Collection
}

func NewEvents(database *mongo.Database) *Events {
	return &Events{col: database.Collection("events")}
}

// CreateEventInput holds the fields a caller may set at creation time.
type CreateEventInput struct {
	Title          string    `json:"title"`
	Type           string    `json:"type"`
	IsOnline       bool      `json:"isOnline"`
	Capacity       int64     `json:"capacity"`
	ConfirmedCount int64     `json:"confirmedCount"`
	Date           time.Time `json:"date"`
	Location       string    `json:"location"`
	Description    string    `json:"description"`
}

// EventUpdate is the explicit allow-list for updates. Binding request JSON
// into this struct drops every unknown field before it can reach the store;
// pointer fields distinguish "absent" from a zero value. Owner and imageUrl
// are deliberately not here.
type EventUpdate struct {
	Title          *string    `json:"title"`
	Type           *string    `json:"type"`
	IsOnline       *bool      `json:"isOnline"`
	Capacity       *int64     `json:"capacity"`
	Date           *time.Time `json:"date"`
	Location       *string    `json:"location"`
	Description    *string    `json:"description"`
	ConfirmedCount *int64     `json:"confirmedCount"`
}

func validateCreate(in CreateEventInput) error {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Type) == "" || in.Date.IsZero() {
		return validationErr("Title, event type, and date are required")
	}
	if in.Capacity < 0 {
		return validationErr("Capacity cannot be negative")
	}
	if in.ConfirmedCount < 0 {
		return validationErr("Confirmed count cannot be negative")
	}
	if in.ConfirmedCount > in.Capacity {
		return validationErr("Confirmed count cannot exceed capacity")
	}
	return nil
}

// validateUpdate checks the capacity invariant against the effective pair:
// the submitted value where present, the stored value otherwise. A capacity
// decrease below the stored confirmed count fails the same way an increased
// confirmed count does.
func validateUpdate(existing *models.Event, u EventUpdate) error {
	if u.Title != nil && strings.TrimSpace(*u.Title) == "" {
		return validationErr("Title cannot be empty")
	}
	if u.Type != nil && strings.TrimSpace(*u.Type) == "" {
		return validationErr("Event type cannot be empty")
	}
	if u.Date != nil && u.Date.IsZero() {
		return validationErr("Date cannot be empty")
	}

	capacity := existing.Capacity
	if u.Capacity != nil {
		if *u.Capacity < 0 {
			return validationErr("Capacity cannot be negative")
		}
		capacity = *u.Capacity
	}

	confirmed := existing.ConfirmedCount
	if u.ConfirmedCount != nil {
		if *u.ConfirmedCount < 0 {
			return validationErr("Confirmed count cannot be negative")
		}
		confirmed = *u.ConfirmedCount
	}

	if confirmed > capacity {
		return validationErr("Confirmed count cannot exceed capacity")
	}
	return nil
}

// setDocument projects the provided fields into a $set document.
func (u EventUpdate) setDocument(now time.Time) bson.M {
	set := bson.M{"updated_at": now}
	if u.Title != nil {
		set["title"] = strings.TrimSpace(*u.Title)
	}
	if u.Type != nil {
		set["type"] = strings.TrimSpace(*u.Type)
	}
	if u.IsOnline != nil {
		set["is_online"] = *u.IsOnline
	}
	if u.Capacity != nil {
		set["capacity"] = *u.Capacity
	}
	if u.Date != nil {
		set["date"] = *u.Date
	}
	if u.Location != nil {
		set["location"] = strings.TrimSpace(*u.Location)
	}
	if u.Description != nil {
		set["description"] = strings.TrimSpace(*u.Description)
	}
	if u.ConfirmedCount != nil {
		set["confirmed_count"] = *u.ConfirmedCount
	}
	return set
}

// Create validates and persists a new event bound to owner.
func (s *Events) Create(ctx context.Context, owner primitive.ObjectID, in CreateEventInput) (*models.Event, error) {
	if err := validateCreate(in); err != nil {
		return nil, err
	}

	now := time.Now()
	event := &models.Event{
		ID:             primitive.NewObjectID(),
		Owner:          owner,
		Title:          strings.TrimSpace(in.Title),
		Type:           strings.TrimSpace(in.Type),
		IsOnline:       in.IsOnline,
		Capacity:       in.Capacity,
		ConfirmedCount: in.ConfirmedCount,
		Date:           in.Date,
		Location:       strings.TrimSpace(in.Location),
		Description:    strings.TrimSpace(in.Description),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if _, err := s.col.InsertOne(ctx, event); err != nil {
		return nil, err
	}

	event.FillDerived()
	return event, nil
}

// GetByID returns the event only when id and owner both match. A malformed
// id, a missing id, and a foreign owner all yield ErrNotFound.
func (s *Events) GetByID(ctx context.Context, owner primitive.ObjectID, id string) (*models.Event, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var event models.Event
	err = s.col.FindOne(ctx, bson.M{"_id": oid, "owner": owner}).Decode(&event)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	event.FillDerived()
	return &event, nil
}

// Update loads the event ownership-checked, re-validates the capacity
// invariant, and applies only the provided allow-listed fields.
func (s *Events) Update(ctx context.Context, owner primitive.ObjectID, id string, u EventUpdate) (*models.Event, error) {
	existing, err := s.GetByID(ctx, owner, id)
	if err != nil {
		return nil, err
	}

	if err := validateUpdate(existing, u); err != nil {
		return nil, err
	}

	var updated models.Event
	err = s.col.FindOneAndUpdate(ctx,
		bson.M{"_id": existing.ID, "owner": owner},
		bson.M{"$set": u.setDocument(time.Now())},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	updated.FillDerived()
	return &updated, nil
}

// Delete removes the event after the ownership check and returns the removed
// record so callers can clean up attachments.
func (s *Events) Delete(ctx context.Context, owner primitive.ObjectID, id string) (*models.Event, error) {
	existing, err := s.GetByID(ctx, owner, id)
	if err != nil {
		return nil, err
	}

	res, err := s.col.DeleteOne(ctx, bson.M{"_id": existing.ID, "owner": owner})
	if err != nil {
		return nil, err
	}
	if res.DeletedCount == 0 {
		return nil, ErrNotFound
	}

	return existing, nil
}

// SetImageURL stores the poster URL outside the regular update allow-list.
func (s *Events) SetImageURL(ctx context.Context, owner primitive.ObjectID, id, url string) (*models.Event, error) {
	existing, err := s.GetByID(ctx, owner, id)
	if err != nil {
		return nil, err
	}

	var updated models.Event
	err = s.col.FindOneAndUpdate(ctx,
		bson.M{"_id": existing.ID, "owner": owner},
		bson.M{"$set": bson.M{"image_url": url, "updated_at": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	updated.FillDerived()
	return &updated, nil
}
