package service

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"estate/internal/model"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockPropertyRepo is an in-memory PropertyRepository
type mockPropertyRepo struct {
	mu          sync.Mutex
	properties  []model.Property
	similar     []model.Property
	searchCalls int
	created     []*model.Property
	err         error
}

func (m *mockPropertyRepo) SearchProperties(_ context.Context, q *model.PropertyQuery, _ int) ([]model.Property, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.searchCalls++
	if m.err != nil {
		return nil, 0, m.err
	}
	start := q.Offset()
	if start > len(m.properties) {
		start = len(m.properties)
	}
	end := start + q.Limit
	if end > len(m.properties) {
		end = len(m.properties)
	}
	return append([]model.Property{}, m.properties[start:end]...), len(m.properties), nil
}

func (m *mockPropertyRepo) GetPropertyBySlug(_ context.Context, slug string) (*model.Property, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.properties {
		if m.properties[i].Slug == slug {
			p := m.properties[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (m *mockPropertyRepo) CreateProperty(_ context.Context, p *model.Property) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.created = append(m.created, p)
	m.properties = append(m.properties, *p)
	return nil
}

func (m *mockPropertyRepo) FindSimilar(_ context.Context, base *model.Property, limit int) ([]model.Property, error) {
	if m.err != nil {
		return nil, m.err
	}
	if limit < len(m.similar) {
		return m.similar[:limit], nil
	}
	return m.similar, nil
}

// mockInquiryRepo is an in-memory InquiryRepository
type mockInquiryRepo struct {
	refs      map[string]*model.PropertyRef
	inquiries []*model.Inquiry
	lastList  model.InquiryFilter
	listCalls int
	createErr error
}

func (m *mockInquiryRepo) GetPropertyRef(_ context.Context, id string) (*model.PropertyRef, error) {
	return m.refs[id], nil
}

func (m *mockInquiryRepo) CreateInquiry(_ context.Context, inq *model.Inquiry) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.inquiries = append(m.inquiries, inq)
	return nil
}

func (m *mockInquiryRepo) ListInquiries(_ context.Context, filter model.InquiryFilter) ([]model.InquiryWithProperty, error) {
	m.listCalls++
	m.lastList = filter
	out := []model.InquiryWithProperty{}
	for i := len(m.inquiries) - 1; i >= 0; i-- {
		inq := m.inquiries[i]
		if filter.PropertyID != "" && inq.PropertyID != filter.PropertyID {
			continue
		}
		if filter.Status != "" && inq.Status != filter.Status {
			continue
		}
		ref := m.refs[inq.PropertyID]
		out = append(out, model.InquiryWithProperty{
			Inquiry:  *inq,
			Property: model.PropertyRef{ID: ref.ID, Title: ref.Title, Slug: ref.Slug},
		})
	}
	return out, nil
}

// mockNotifier records published events
type mockNotifier struct {
	events []model.InquiryEvent
	err    error
}

func (m *mockNotifier) InquiryCreated(_ context.Context, event model.InquiryEvent) error {
	m.events = append(m.events, event)
	return m.err
}
