package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"estate/internal/model"
	"estate/internal/repository"
	"estate/internal/utils"

	"github.com/google/uuid"
)

// ErrPropertyNotFound is returned when a property slug or id does not exist
var ErrPropertyNotFound = errors.New("property not found")

const (
	searchCachePrefix = "properties:"
	generationKey     = "properties:gen"
)

// ListingOptions tunes paging, caching and similar-listing limits
type ListingOptions struct {
	DefaultLimit    int
	MaxLimit        int
	SimilarLimit    int
	MaxImagesInList int
	CacheTTL        time.Duration
}

// ListingService handles listing search, detail and creation
type ListingService struct {
	repo   repository.PropertyRepository
	cache  repository.CacheRepository
	ranker *Ranker
	opts   ListingOptions
	logger *slog.Logger
	now    func() time.Time
}

// NewListingService creates a new listing service
func NewListingService(
	repo repository.PropertyRepository,
	cache repository.CacheRepository,
	ranker *Ranker,
	opts ListingOptions,
	logger *slog.Logger,
) *ListingService {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.DefaultLimit <= 0 {
		opts.DefaultLimit = 12
	}
	if opts.SimilarLimit <= 0 {
		opts.SimilarLimit = 4
	}
	return &ListingService{
		repo:   repo,
		cache:  cache,
		ranker: ranker,
		opts:   opts,
		logger: logger,
		now:    time.Now,
	}
}

// NormalizeQuery applies the service defaults and validates q
func (s *ListingService) NormalizeQuery(q *model.PropertyQuery) error {
	return q.Normalize(s.opts.DefaultLimit, s.opts.MaxLimit)
}

// Search returns one page of active listings, served from cache when possible
func (s *ListingService) Search(ctx context.Context, q *model.PropertyQuery) (*model.PropertyListResponse, error) {
	if err := s.NormalizeQuery(q); err != nil {
		return nil, err
	}

	key := s.searchCacheKey(ctx, q)
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, key); ok {
			var resp model.PropertyListResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				s.logger.Debug("listing search cache hit", "key", key)
				return &resp, nil
			}
			s.logger.Warn("discarding unreadable cache entry", "key", key)
		}
	}

	properties, total, err := s.repo.SearchProperties(ctx, q, s.opts.MaxImagesInList)
	if err != nil {
		return nil, err
	}

	resp := &model.PropertyListResponse{
		Properties: properties,
		Pagination: model.NewPagination(q.Page, q.Limit, total),
	}

	if s.cache != nil {
		if payload, err := json.Marshal(resp); err == nil {
			if err := s.cache.Set(ctx, key, string(payload), s.opts.CacheTTL); err != nil {
				s.logger.Warn("failed to cache listing search", "key", key, "error", err)
			}
		}
	}

	return resp, nil
}

// searchCacheKey scopes the query key by the current listing generation,
// so creating a property makes every earlier search entry unreachable
func (s *ListingService) searchCacheKey(ctx context.Context, q *model.PropertyQuery) string {
	gen := "0"
	if s.cache != nil {
		if g, ok := s.cache.Get(ctx, generationKey); ok {
			gen = g
		}
	}
	return searchCachePrefix + gen + ":" + q.CacheKey()
}

// GetBySlug retrieves a property with all its images
func (s *ListingService) GetBySlug(ctx context.Context, slug string) (*model.Property, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, ErrPropertyNotFound
	}
	property, err := s.repo.GetPropertyBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, ErrPropertyNotFound
	}
	return property, nil
}

// Similar returns ranked listings resembling the property with slug
func (s *ListingService) Similar(ctx context.Context, slug string, limit int) (*model.SimilarResponse, error) {
	startTime := time.Now()

	base, err := s.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = s.opts.SimilarLimit
	}
	if s.opts.MaxLimit > 0 && limit > s.opts.MaxLimit {
		limit = s.opts.MaxLimit
	}

	candidates, err := s.repo.FindSimilar(ctx, base, limit)
	if err != nil {
		return nil, err
	}

	return &model.SimilarResponse{
		Results: s.ranker.RankSimilar(base, candidates),
		Took:    time.Since(startTime).Milliseconds(),
	}, nil
}

// Create stores a new property built from req. The payload is expected to
// have passed ValidatePropertyPayload already.
func (s *ListingService) Create(ctx context.Context, req *model.CreatePropertyRequest) (*model.Property, error) {
	if !model.ValidNeighborhood(req.Neighborhood) {
		return nil, fmt.Errorf("%w: unknown neighborhood %q", ErrInvalidProperty, req.Neighborhood)
	}

	property := newPropertyFromRequest(req, s.now().UTC())

	if err := s.repo.CreateProperty(ctx, property); err != nil {
		return nil, err
	}
	s.bumpGeneration(ctx)

	s.logger.Info("property created",
		"id", property.ID,
		"slug", property.Slug,
		"listing_type", property.ListingType,
		"neighborhood", property.Neighborhood,
	)
	return property, nil
}

// bumpGeneration invalidates cached searches after a write
func (s *ListingService) bumpGeneration(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, generationKey, uuid.NewString(), 0); err != nil {
		s.logger.Warn("failed to invalidate listing cache", "error", err)
	}
}

// newPropertyFromRequest fills generated fields and defaults
func newPropertyFromRequest(req *model.CreatePropertyRequest, now time.Time) *model.Property {
	id := uuid.NewString()

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = utils.PropertyTitle(req.Rooms, req.PropertyType, req.Neighborhood)
	}
	status := req.Status
	if status == "" {
		status = model.StatusActive
	}
	furnished := req.Furnished
	if furnished == "" {
		furnished = model.Unfurnished
	}

	p := &model.Property{
		ID:                 id,
		Slug:               utils.PropertySlug(req.Neighborhood, req.PropertyType, req.Rooms, id),
		Title:              title,
		TitleHe:            req.TitleHe,
		Description:        req.Description,
		DescriptionHe:      req.DescriptionHe,
		ListingType:        req.ListingType,
		PropertyType:       req.PropertyType,
		Status:             status,
		Neighborhood:       req.Neighborhood,
		Address:            req.Address,
		AddressHe:          req.AddressHe,
		Price:              req.Price,
		Rooms:              req.Rooms,
		Bedrooms:           req.Bedrooms,
		Bathrooms:          req.Bathrooms,
		SizeSqm:            req.SizeSqm,
		Floor:              req.Floor,
		TotalFloors:        req.TotalFloors,
		Balconies:          req.Balconies,
		Parking:            req.Parking,
		Storage:            req.Storage,
		Elevator:           req.Elevator,
		AirConditioning:    req.AirConditioning,
		Sukka:              req.Sukka,
		Mamad:              req.Mamad,
		Garden:             req.Garden,
		Rooftop:            req.Rooftop,
		ShabbatElevator:    req.ShabbatElevator,
		KosherKitchen:      req.KosherKitchen,
		SeparateSink:       req.SeparateSink,
		AccessibleBuilding: req.AccessibleBuilding,
		Renovated:          req.Renovated,
		Furnished:          furnished,
		BuildingType:       req.BuildingType,
		YearBuilt:          req.YearBuilt,
		Arnona:             req.Arnona,
		VaadBayit:          req.VaadBayit,
		ContactName:        req.ContactName,
		ContactPhone:       req.ContactPhone,
		ContactEmail:       req.ContactEmail,
		IsOwnerListing:     req.IsOwnerListing,
		AvailableFrom:      req.AvailableFrom,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	p.FeatureVector = FeatureVector(p)

	p.Images = make([]model.PropertyImage, 0, len(req.Images))
	hasPrimary := false
	for i, img := range req.Images {
		order := img.Order
		if order == 0 {
			order = i
		}
		isPrimary := img.IsPrimary && !hasPrimary
		hasPrimary = hasPrimary || isPrimary
		p.Images = append(p.Images, model.PropertyImage{
			ID:         uuid.NewString(),
			PropertyID: id,
			URL:        img.URL,
			Caption:    img.Caption,
			SortOrder:  order,
			IsPrimary:  isPrimary,
		})
	}
	if !hasPrimary && len(p.Images) > 0 {
		p.Images[0].IsPrimary = true
	}

	return p
}
