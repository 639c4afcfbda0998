package service

import (
	"errors"
	"strings"
	"testing"

	"estate/internal/model"
)

func TestDocumentService_Generate(t *testing.T) {
	svc, err := NewDocumentService()
	if err != nil {
		t.Fatalf("failed to load templates: %v", err)
	}

	data := model.DocumentData{
		PartyAName:      "Avraham Levi",
		PartyBName:      "Sarah Katz",
		PartyBEmail:     "sarah@example.com",
		PropertyAddress: "12 Nahal Dolev, Beit Shemesh",
		PropertyDetails: "4 rooms, 2nd floor",
		Price:           6500,
		StartDate:       "2025-03-01",
		EndDate:         "2026-02-28",
	}

	tests := []struct {
		name        string
		docType     model.DocumentType
		data        model.DocumentData
		contains    []string
		notContains []string
	}{
		{
			name:    "Rental agreement",
			docType: model.DocRentalAgreement,
			data:    data,
			contains: []string{
				"RESIDENTIAL RENTAL AGREEMENT",
				"Made and entered into on <strong>1 March 2025</strong>",
				"terminate on <strong>28 February 2026</strong>",
				"₪6,500",
				"totaling <strong>₪13,000</strong>",
				"Name: Avraham Levi",
				"ID Number: _____________",
				"4 rooms, 2nd floor",
				"This document was prepared using Rakshah Real Estate document services.",
			},
			notContains: []string{"SPECIAL TERMS", "Payment Terms:"},
		},
		{
			name:    "Rental agreement with optional sections",
			docType: model.DocRentalAgreement,
			data: func() model.DocumentData {
				d := data
				d.PaymentTerms = "Bank transfer"
				d.SpecialTerms = "Pets allowed"
				return d
			}(),
			contains: []string{"Payment Terms: Bank transfer", "10. SPECIAL TERMS", "Pets allowed"},
		},
		{
			name:     "Purchase offer default schedule",
			docType:  model.DocPurchaseOffer,
			data:     model.DocumentData{Price: 2500000},
			contains: []string{"₪2,500,000", "Upon signing: 10% deposit", "Remaining 50%", "Date: <strong>_____________</strong>"},
			notContains: []string{
				"SPECIAL CONDITIONS",
			},
		},
		{
			name:        "Purchase offer custom terms",
			docType:     model.DocPurchaseOffer,
			data:        model.DocumentData{PaymentTerms: "Full payment at signing"},
			contains:    []string{"Full payment at signing"},
			notContains: []string{"Upon signing: 10% deposit"},
		},
		{
			name:     "Tenant application",
			docType:  model.DocTenantApplication,
			data:     data,
			contains: []string{"TENANT APPLICATION FORM", "Avraham Levi", "<strong>Employer:</strong>"},
		},
		{
			name:     "Inspection checklist",
			docType:  model.DocInspectionChecklist,
			data:     data,
			contains: []string{"PROPERTY INSPECTION CHECKLIST", "Living Room", "Balcony", "A/C unit", "<strong>Tenant:</strong> Sarah Katz"},
		},
		{
			name:     "Disclosure has no template",
			docType:  model.DocPropertyDisclosure,
			data:     data,
			contains: []string{UnsupportedDocumentHTML},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html, err := svc.Generate(tt.docType, tt.data)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(html, want) {
					t.Errorf("output missing %q", want)
				}
			}
			for _, unwanted := range tt.notContains {
				if strings.Contains(html, unwanted) {
					t.Errorf("output should not contain %q", unwanted)
				}
			}
		})
	}
}

func TestDocumentService_InspectionRoomsTimesItems(t *testing.T) {
	svc, err := NewDocumentService()
	if err != nil {
		t.Fatalf("failed to load templates: %v", err)
	}
	html, err := svc.Generate(model.DocInspectionChecklist, model.DocumentData{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.Count(html, "Electrical outlets"); got != len(inspectionRooms) {
		t.Errorf("item rows = %d, want one per room (%d)", got, len(inspectionRooms))
	}
}

func TestDocumentService_EscapesInput(t *testing.T) {
	svc, err := NewDocumentService()
	if err != nil {
		t.Fatalf("failed to load templates: %v", err)
	}
	html, err := svc.Generate(model.DocRentalAgreement, model.DocumentData{
		PartyAName:   `<script>alert(1)</script>`,
		SpecialTerms: `<img src=x onerror=alert(1)>`,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, "<script>") || strings.Contains(html, "<img") {
		t.Fatal("user input rendered as markup")
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Error("expected escaped script tag")
	}
}

func TestDocumentService_UnknownType(t *testing.T) {
	svc, err := NewDocumentService()
	if err != nil {
		t.Fatalf("failed to load templates: %v", err)
	}
	if _, err := svc.Generate("LEASE_RENEWAL", model.DocumentData{}); !errors.Is(err, ErrUnknownDocumentType) {
		t.Errorf("err = %v, want ErrUnknownDocumentType", err)
	}
}

func TestDocumentService_Types(t *testing.T) {
	svc, err := NewDocumentService()
	if err != nil {
		t.Fatalf("failed to load templates: %v", err)
	}
	types := svc.Types()
	if len(types) != len(model.DocumentTypes) {
		t.Fatalf("got %d types", len(types))
	}
	if types[0].Type != model.DocRentalAgreement || types[0].NameHe == "" {
		t.Errorf("first entry = %+v", types[0])
	}
}
