package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"estate/internal/model"
)

const testPropertyID = "7d0f7c3e-2a1b-4c59-9a55-0d2f4b1e8a10"

func newTestInquiryService() (*InquiryService, *mockInquiryRepo, *mockNotifier) {
	contact := "agent@rakshah.example"
	repo := &mockInquiryRepo{refs: map[string]*model.PropertyRef{
		testPropertyID: {ID: testPropertyID, Title: "4-Room Apartment in RBS Aleph", Slug: "rbs-aleph-apartment-4-rooms-8a10", ContactEmail: &contact},
	}}
	notifier := &mockNotifier{}
	svc := NewInquiryService(repo, notifier, discardLogger())
	svc.now = func() time.Time { return time.Date(2025, 2, 10, 8, 30, 0, 0, time.UTC) }
	return svc, repo, notifier
}

func validInquiry() *model.InquiryRequest {
	return &model.InquiryRequest{
		PropertyID: testPropertyID,
		Name:       "Yossi Cohen",
		Email:      "yossi@example.co.il",
		Phone:      "052-1234567",
		Message:    "When can I see the apartment?",
	}
}

func TestInquiryService_SubmitValidation(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(r *model.InquiryRequest)
		wantErr error
	}{
		{name: "Missing name", modify: func(r *model.InquiryRequest) { r.Name = "" }, wantErr: ErrMissingFields},
		{name: "Whitespace message", modify: func(r *model.InquiryRequest) { r.Message = "   " }, wantErr: ErrMissingFields},
		{name: "Missing property", modify: func(r *model.InquiryRequest) { r.PropertyID = "" }, wantErr: ErrMissingFields},
		{name: "Email without domain dot", modify: func(r *model.InquiryRequest) { r.Email = "yossi@example" }, wantErr: ErrInvalidEmail},
		{name: "Email with space", modify: func(r *model.InquiryRequest) { r.Email = "yo ssi@example.com" }, wantErr: ErrInvalidEmail},
		{name: "Malformed property id", modify: func(r *model.InquiryRequest) { r.PropertyID = "42" }, wantErr: ErrPropertyNotFound},
		{name: "Unknown property", modify: func(r *model.InquiryRequest) { r.PropertyID = "00000000-0000-0000-0000-000000000000" }, wantErr: ErrPropertyNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, notifier := newTestInquiryService()
			req := validInquiry()
			tt.modify(req)

			_, err := svc.Submit(context.Background(), req)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if len(repo.inquiries) != 0 || len(notifier.events) != 0 {
				t.Error("rejected inquiry must not be stored or published")
			}
		})
	}
}

func TestInquiryService_Submit(t *testing.T) {
	svc, repo, notifier := newTestInquiryService()

	resp, err := svc.Submit(context.Background(), validInquiry())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.Success || resp.Inquiry.ID == "" {
		t.Errorf("response = %+v", resp)
	}
	if resp.Inquiry.Message != InquiryConfirmation {
		t.Errorf("message = %q", resp.Inquiry.Message)
	}

	if len(repo.inquiries) != 1 {
		t.Fatalf("stored %d inquiries, want 1", len(repo.inquiries))
	}
	stored := repo.inquiries[0]
	if stored.Status != model.InquiryNew {
		t.Errorf("status = %s, want NEW", stored.Status)
	}
	if stored.ID != resp.Inquiry.ID {
		t.Errorf("stored id %s differs from receipt %s", stored.ID, resp.Inquiry.ID)
	}

	if len(notifier.events) != 1 {
		t.Fatalf("published %d events, want 1", len(notifier.events))
	}
	ev := notifier.events[0]
	if ev.PropertyTitle != "4-Room Apartment in RBS Aleph" || ev.ContactEmail == nil {
		t.Errorf("event missing property data: %+v", ev)
	}
	if !ev.CreatedAt.Equal(stored.CreatedAt) {
		t.Errorf("event time %v differs from stored %v", ev.CreatedAt, stored.CreatedAt)
	}
}

func TestInquiryService_NotifyFailureIsNotFatal(t *testing.T) {
	svc, repo, notifier := newTestInquiryService()
	notifier.err = errors.New("broker down")

	if _, err := svc.Submit(context.Background(), validInquiry()); err != nil {
		t.Fatalf("submit should succeed when publishing fails: %v", err)
	}
	if len(repo.inquiries) != 1 {
		t.Error("inquiry should still be stored")
	}
}

func TestInquiryService_StoreFailure(t *testing.T) {
	svc, repo, notifier := newTestInquiryService()
	repo.createErr = errors.New("disk full")

	if _, err := svc.Submit(context.Background(), validInquiry()); err == nil {
		t.Fatal("expected error")
	}
	if len(notifier.events) != 0 {
		t.Error("no event should be published for a failed insert")
	}
}

func TestInquiryService_List(t *testing.T) {
	svc, repo, _ := newTestInquiryService()
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if _, err := svc.Submit(ctx, validInquiry()); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}

	tests := []struct {
		name      string
		filter    model.InquiryFilter
		wantCount int
		wantErr   error
		wantRepo  bool
	}{
		{name: "All", filter: model.InquiryFilter{}, wantCount: 3, wantRepo: true},
		{name: "By property", filter: model.InquiryFilter{PropertyID: testPropertyID}, wantCount: 3, wantRepo: true},
		{name: "Lowercase status", filter: model.InquiryFilter{Status: "new"}, wantCount: 3, wantRepo: true},
		{name: "Other status", filter: model.InquiryFilter{Status: model.InquiryClosed}, wantCount: 0, wantRepo: true},
		{name: "Unknown status", filter: model.InquiryFilter{Status: "ARCHIVED"}, wantErr: ErrInvalidStatus},
		{name: "Malformed property id", filter: model.InquiryFilter{PropertyID: "abc"}, wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := repo.listCalls
			got, err := svc.List(ctx, tt.filter)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got == nil || len(got) != tt.wantCount {
				t.Errorf("got %d inquiries, want %d", len(got), tt.wantCount)
			}
			if called := repo.listCalls > before; called != tt.wantRepo {
				t.Errorf("repository called = %v, want %v", called, tt.wantRepo)
			}
		})
	}
}
