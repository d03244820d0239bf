package store

import (
	"context"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/suryaone68/Real-Time-Event-management/models"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// ListParams are the search/sort/page inputs of a listing request.
type ListParams struct {
	Search    string
	SortBy    string
	SortOrder string
	Page      int64
	Limit     int64
}

// ListParamsFromQuery parses raw query-string values, falling back to the
// defaults on anything missing or unparsable.
func ListParamsFromQuery(search, sortBy, sortOrder, page, limit string) ListParams {
	p := ListParams{
		Search:    search,
		SortBy:    sortBy,
		SortOrder: sortOrder,
		Page:      defaultPage,
		Limit:     defaultLimit,
	}
	if n, err := strconv.ParseInt(page, 10, 64); err == nil && n > 0 {
		p.Page = n
	}
	if n, err := strconv.ParseInt(limit, 10, 64); err == nil && n > 0 {
		p.Limit = n
	}
	return p
}

// Filter scopes the query to the owner and adds the text search when a
// search string is present. Title is the text-indexed field.
func (p ListParams) Filter(owner primitive.ObjectID) bson.M {
	filter := bson.M{"owner": owner}
	if p.Search != "" {
		filter["$text"] = bson.M{"$search": p.Search}
	}
	return filter
}

// Sort builds the sort document: the requested field (ascending unless
// sortOrder is "desc"), date ascending when no field is given, and an _id
// tiebreak so equal keys order deterministically.
func (p ListParams) Sort() bson.D {
	order := 1
	if p.SortOrder == "desc" {
		order = -1
	}

	var sort bson.D
	if p.SortBy != "" {
		sort = bson.D{{Key: sortField(p.SortBy), Value: order}}
	} else {
		sort = bson.D{{Key: "date", Value: 1}}
	}
	return append(sort, bson.E{Key: "_id", Value: 1})
}

// Skip is (page-1)*limit.
func (p ListParams) Skip() int64 {
	return (p.Page - 1) * p.Limit
}

// FindOptions assembles sort, skip and limit for the page fetch.
func (p ListParams) FindOptions() *options.FindOptions {
	return options.Find().
		SetSort(p.Sort()).
		SetSkip(p.Skip()).
		SetLimit(p.Limit)
}

// sortField maps the client-facing JSON names onto the stored field names;
// anything else passes through as given.
func sortField(name string) string {
	switch name {
	case "confirmedCount":
		return "confirmed_count"
	case "isOnline":
		return "is_online"
	case "createdAt":
		return "created_at"
	case "updatedAt":
		return "updated_at"
	default:
		return name
	}
}

// TotalPages is ceil(total/limit).
func TotalPages(total, limit int64) int64 {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// ListResult is one page of events plus the pagination totals.
type ListResult struct {
	Page        int64          `json:"page"`
	TotalPages  int64          `json:"totalPages"`
	TotalEvents int64          `json:"totalEvents"`
	Events      []models.Event `json:"events"`
}

// List runs the owner-scoped, searched, sorted, paginated query. Pagination
// is stable only while the underlying data does not change between pages.
func (s *Events) List(ctx context.Context, owner primitive.ObjectID, p ListParams) (*ListResult, error) {
	filter := p.Filter(owner)

	total, err := s.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	cursor, err := s.col.Find(ctx, filter, p.FindOptions())
	if err != nil {
		return nil, err
	}

	events := []models.Event{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	for i := range events {
		events[i].FillDerived()
	}

	return &ListResult{
		Page:        p.Page,
		TotalPages:  TotalPages(total, p.Limit),
		TotalEvents: total,
		Events:      events,
	}, nil
}
