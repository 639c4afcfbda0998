package model

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// ErrInvalidQuery is returned when a listing query carries an unknown value
var ErrInvalidQuery = errors.New("invalid query")

// Feature is a canonical amenity filter name
type Feature string

const (
	FeatureParking            Feature = "parking"
	FeatureElevator           Feature = "elevator"
	FeatureMamad              Feature = "mamad"
	FeatureSukka              Feature = "sukka"
	FeatureStorage            Feature = "storage"
	FeatureAirConditioning    Feature = "airConditioning"
	FeatureGarden             Feature = "garden"
	FeatureShabbatElevator    Feature = "shabbatElevator"
	FeatureRooftop            Feature = "rooftop"
	FeatureKosherKitchen      Feature = "kosherKitchen"
	FeatureSeparateSink       Feature = "separateSink"
	FeatureAccessibleBuilding Feature = "accessibleBuilding"
	FeatureRenovated          Feature = "renovated"
	FeatureBalcony            Feature = "balcony"
)

// sortColumns whitelists sortable fields and their columns
var sortColumns = map[string]string{
	"createdAt": "created_at",
	"price":     "price",
	"rooms":     "rooms",
	"sizeSqm":   "size_sqm",
}

// PropertyQuery is the typed listing search built from query parameters
type PropertyQuery struct {
	ListingType  ListingType  `form:"listingType"`
	PropertyType PropertyType `form:"propertyType"`
	Neighborhood string       `form:"neighborhood"`
	MinPrice     *float64     `form:"minPrice"`
	MaxPrice     *float64     `form:"maxPrice"`
	MinRooms     *float64     `form:"minRooms"`
	MaxRooms     *float64     `form:"maxRooms"`
	MinSize      *float64     `form:"minSize"`
	MaxSize      *float64     `form:"maxSize"`

	Parking         bool `form:"parking"`
	Elevator        bool `form:"elevator"`
	Mamad           bool `form:"mamad"`
	Sukka           bool `form:"sukka"`
	Storage         bool `form:"storage"`
	AirConditioning bool `form:"airConditioning"`
	Garden          bool `form:"garden"`
	ShabbatElevator bool `form:"shabbatElevator"`

	// Features holds canonical feature names after normalization
	Features []string `form:"features"`

	Page      int    `form:"page"`
	Limit     int    `form:"limit"`
	SortBy    string `form:"sortBy"`
	SortOrder string `form:"sortOrder"`
}

// Normalize applies defaults, caps the page size and validates enum values.
// Boolean feature flags are folded into Features.
func (q *PropertyQuery) Normalize(defaultLimit, maxLimit int) error {
	if q.ListingType != "" && !q.ListingType.Valid() {
		return fmt.Errorf("%w: unknown listingType %q", ErrInvalidQuery, q.ListingType)
	}
	if q.PropertyType != "" && !q.PropertyType.Valid() {
		return fmt.Errorf("%w: unknown propertyType %q", ErrInvalidQuery, q.PropertyType)
	}
	if q.Neighborhood != "" && !ValidNeighborhood(q.Neighborhood) {
		return fmt.Errorf("%w: unknown neighborhood %q", ErrInvalidQuery, q.Neighborhood)
	}

	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit <= 0 {
		q.Limit = defaultLimit
	}
	if maxLimit > 0 && q.Limit > maxLimit {
		q.Limit = maxLimit
	}
	if _, ok := sortColumns[q.SortBy]; !ok {
		q.SortBy = "createdAt"
	}
	if strings.ToLower(q.SortOrder) == "asc" {
		q.SortOrder = "asc"
	} else {
		q.SortOrder = "desc"
	}

	flags := []struct {
		on      bool
		feature Feature
	}{
		{q.Parking, FeatureParking},
		{q.Elevator, FeatureElevator},
		{q.Mamad, FeatureMamad},
		{q.Sukka, FeatureSukka},
		{q.Storage, FeatureStorage},
		{q.AirConditioning, FeatureAirConditioning},
		{q.Garden, FeatureGarden},
		{q.ShabbatElevator, FeatureShabbatElevator},
	}
	seen := make(map[string]bool, len(q.Features))
	features := make([]string, 0, len(q.Features))
	add := func(f string) {
		if f != "" && !seen[f] {
			seen[f] = true
			features = append(features, f)
		}
	}
	for _, f := range q.Features {
		add(f)
	}
	for _, fl := range flags {
		if fl.on {
			add(string(fl.feature))
		}
	}
	sort.Strings(features)
	q.Features = features

	return nil
}

// SortColumn returns the database column for SortBy
func (q *PropertyQuery) SortColumn() string {
	if col, ok := sortColumns[q.SortBy]; ok {
		return col
	}
	return "created_at"
}

// Offset returns the row offset for the requested page
func (q *PropertyQuery) Offset() int {
	if q.Page < 1 {
		return 0
	}
	return (q.Page - 1) * q.Limit
}

// CacheKey returns a canonical encoding of the query.
// Two queries with the same filters produce the same key.
func (q *PropertyQuery) CacheKey() string {
	v := url.Values{}
	setString := func(k, s string) {
		if s != "" {
			v.Set(k, s)
		}
	}
	setFloat := func(k string, f *float64) {
		if f != nil {
			v.Set(k, strconv.FormatFloat(*f, 'f', -1, 64))
		}
	}

	setString("listingType", string(q.ListingType))
	setString("propertyType", string(q.PropertyType))
	setString("neighborhood", q.Neighborhood)
	setFloat("minPrice", q.MinPrice)
	setFloat("maxPrice", q.MaxPrice)
	setFloat("minRooms", q.MinRooms)
	setFloat("maxRooms", q.MaxRooms)
	setFloat("minSize", q.MinSize)
	setFloat("maxSize", q.MaxSize)
	setString("features", strings.Join(q.Features, ","))
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("limit", strconv.Itoa(q.Limit))
	v.Set("sortBy", q.SortBy)
	v.Set("sortOrder", q.SortOrder)

	return v.Encode()
}

// Pagination describes one page of results
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewPagination computes the page count for total rows
func NewPagination(page, limit, total int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// PropertyListResponse is the response of GET /api/v1/properties
type PropertyListResponse struct {
	Properties []Property `json:"properties"`
	Pagination Pagination `json:"pagination"`
}

// SimilarResponse is the response of GET /api/v1/properties/:slug/similar
type SimilarResponse struct {
	Results []SimilarProperty `json:"results"`
	Took    int64             `json:"took_ms"`
}

// NeighborhoodInfo is one entry of GET /api/v1/neighborhoods
type NeighborhoodInfo struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	NameHe string `json:"name_he"`
	SdeDov bool   `json:"sde_dov"`
}
