package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"estate/internal/model"
	"estate/internal/repository"
)

func newTestListingService(repo *mockPropertyRepo, cache repository.CacheRepository) *ListingService {
	return NewListingService(repo, cache, NewRanker(0.6, 0.3, 0.1), ListingOptions{
		DefaultLimit:    12,
		MaxLimit:        60,
		SimilarLimit:    4,
		MaxImagesInList: 5,
		CacheTTL:        time.Minute,
	}, discardLogger())
}

func sampleProperties(n int) []model.Property {
	out := make([]model.Property, n)
	for i := range out {
		out[i] = model.Property{
			ID:           "00000000-0000-0000-0000-00000000000" + string(rune('0'+i)),
			Slug:         "listing-" + string(rune('a'+i)),
			Title:        "Listing",
			ListingType:  model.ListingSale,
			PropertyType: model.PropertyApartment,
			Status:       model.StatusActive,
			Neighborhood: "RBS_ALEPH",
			Price:        2000000 + float64(i)*100000,
			Rooms:        4,
			SizeSqm:      100,
		}
	}
	return out
}

func TestListingService_SearchPaginationAndCache(t *testing.T) {
	repo := &mockPropertyRepo{properties: sampleProperties(5)}
	svc := newTestListingService(repo, repository.NewMemoryCache())
	ctx := context.Background()

	q := &model.PropertyQuery{Limit: 2, Page: 2}
	resp, err := svc.Search(ctx, q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Properties) != 2 {
		t.Errorf("got %d properties, want 2", len(resp.Properties))
	}
	want := model.Pagination{Page: 2, Limit: 2, Total: 5, TotalPages: 3}
	if resp.Pagination != want {
		t.Errorf("pagination = %+v, want %+v", resp.Pagination, want)
	}

	// Same query again is served from cache
	if _, err := svc.Search(ctx, &model.PropertyQuery{Limit: 2, Page: 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.searchCalls != 1 {
		t.Errorf("repository searched %d times, want 1", repo.searchCalls)
	}

	// A different page misses the cache
	if _, err := svc.Search(ctx, &model.PropertyQuery{Limit: 2, Page: 3}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.searchCalls != 2 {
		t.Errorf("repository searched %d times, want 2", repo.searchCalls)
	}
}

func TestListingService_CreateInvalidatesCache(t *testing.T) {
	repo := &mockPropertyRepo{properties: sampleProperties(1)}
	svc := newTestListingService(repo, repository.NewMemoryCache())
	ctx := context.Background()

	if _, err := svc.Search(ctx, &model.PropertyQuery{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := svc.Create(ctx, &model.CreatePropertyRequest{
		ListingType:  model.ListingRent,
		PropertyType: model.PropertyApartment,
		Neighborhood: "RBS_BET",
		Address:      "Nahal Dolev 12",
		Price:        7500,
		Rooms:        4,
		SizeSqm:      110,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	resp, err := svc.Search(ctx, &model.PropertyQuery{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.searchCalls != 2 {
		t.Errorf("search after create should hit the repository, calls = %d", repo.searchCalls)
	}
	if resp.Pagination.Total != 2 {
		t.Errorf("total = %d, want 2", resp.Pagination.Total)
	}
}

func TestListingService_SearchRejectsUnknownEnum(t *testing.T) {
	repo := &mockPropertyRepo{}
	svc := newTestListingService(repo, nil)

	_, err := svc.Search(context.Background(), &model.PropertyQuery{ListingType: "AUCTION"})
	if !errors.Is(err, model.ErrInvalidQuery) {
		t.Fatalf("err = %v, want ErrInvalidQuery", err)
	}
	if repo.searchCalls != 0 {
		t.Error("invalid query must not reach the repository")
	}
}

func TestListingService_SearchError(t *testing.T) {
	repo := &mockPropertyRepo{err: errors.New("connection refused")}
	svc := newTestListingService(repo, repository.NewMemoryCache())

	if _, err := svc.Search(context.Background(), &model.PropertyQuery{}); err == nil {
		t.Fatal("expected repository error")
	}
}

func TestListingService_GetBySlug(t *testing.T) {
	repo := &mockPropertyRepo{properties: sampleProperties(2)}
	svc := newTestListingService(repo, nil)

	tests := []struct {
		name    string
		slug    string
		wantErr error
	}{
		{name: "Existing slug", slug: "listing-b"},
		{name: "Missing slug", slug: "nope", wantErr: ErrPropertyNotFound},
		{name: "Blank slug", slug: "  ", wantErr: ErrPropertyNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := svc.GetBySlug(context.Background(), tt.slug)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.Slug != tt.slug {
				t.Errorf("slug = %q", p.Slug)
			}
		})
	}
}

func TestListingService_Similar(t *testing.T) {
	props := sampleProperties(4)
	near, far := 0.1, 2.0
	props[1].Distance = &far
	props[2].Distance = &near
	repo := &mockPropertyRepo{properties: props[:1], similar: props[1:]}
	svc := newTestListingService(repo, nil)

	resp, err := svc.Similar(context.Background(), "listing-a", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Results) != 2 {
		t.Fatalf("got %d results, want 2", len(resp.Results))
	}
	if resp.Results[0].ID != props[2].ID {
		t.Errorf("closest listing should rank first, got %s", resp.Results[0].ID)
	}

	if _, err := svc.Similar(context.Background(), "missing", 2); !errors.Is(err, ErrPropertyNotFound) {
		t.Errorf("err = %v, want ErrPropertyNotFound", err)
	}
}

func TestListingService_Create(t *testing.T) {
	repo := &mockPropertyRepo{}
	svc := newTestListingService(repo, nil)
	svc.now = func() time.Time { return time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC) }

	caption := "Salon"
	p, err := svc.Create(context.Background(), &model.CreatePropertyRequest{
		ListingType:  model.ListingSale,
		PropertyType: model.PropertyGardenApartment,
		Neighborhood: "RBS_ALEPH",
		Address:      "Nahar HaYarden 5",
		Price:        2800000,
		Rooms:        5,
		SizeSqm:      130,
		Parking:      1,
		Mamad:        true,
		Images: []model.ImageUpload{
			{URL: "https://img/1.jpg", Caption: &caption},
			{URL: "https://img/2.jpg", Order: 5},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.ID == "" || !strings.HasSuffix(p.Slug, p.ID[len(p.ID)-6:]) {
		t.Errorf("id/slug not generated: %q %q", p.ID, p.Slug)
	}
	if !strings.HasPrefix(p.Slug, "rbs-aleph-garden-apartment-5-rooms-") {
		t.Errorf("slug = %q", p.Slug)
	}
	if p.Title != "5-Room Garden Apartment in RBS Aleph" {
		t.Errorf("title = %q", p.Title)
	}
	if p.Status != model.StatusActive || p.Furnished != model.Unfurnished {
		t.Errorf("defaults not applied: status=%s furnished=%s", p.Status, p.Furnished)
	}
	if !p.CreatedAt.Equal(svc.now()) {
		t.Errorf("created_at = %v", p.CreatedAt)
	}
	if got := len(p.FeatureVector.Slice()); got != FeatureVectorDim {
		t.Errorf("feature vector has %d dims, want %d", got, FeatureVectorDim)
	}
	if len(p.Images) != 2 || !p.Images[0].IsPrimary || p.Images[1].IsPrimary {
		t.Errorf("first image should be primary: %+v", p.Images)
	}
	if p.Images[1].SortOrder != 5 || p.Images[0].PropertyID != p.ID {
		t.Errorf("image fields not carried: %+v", p.Images)
	}
	if len(repo.created) != 1 {
		t.Errorf("repository received %d creates", len(repo.created))
	}
}

func TestListingService_CreateUnknownNeighborhood(t *testing.T) {
	svc := newTestListingService(&mockPropertyRepo{}, nil)
	_, err := svc.Create(context.Background(), &model.CreatePropertyRequest{
		ListingType:  model.ListingSale,
		PropertyType: model.PropertyApartment,
		Neighborhood: "ATLANTIS",
	})
	if !errors.Is(err, ErrInvalidProperty) {
		t.Errorf("err = %v, want ErrInvalidProperty", err)
	}
}
