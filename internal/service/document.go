package service

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"

	"estate/internal/model"
	"estate/internal/utils"
)

//go:embed templates/*.html
var templateFS embed.FS

// ErrUnknownDocumentType is returned for document types outside the catalogue
var ErrUnknownDocumentType = errors.New("unknown document type")

// UnsupportedDocumentHTML is rendered for catalogued types without a template
const UnsupportedDocumentHTML = "<p>Document type not supported</p>"

var (
	inspectionRooms = []string{"Living Room", "Kitchen", "Bedroom 1", "Bedroom 2", "Bathroom", "Balcony"}
	inspectionItems = []string{"Walls", "Ceiling", "Floor", "Windows", "Doors", "Light fixtures", "Electrical outlets", "A/C unit"}
)

// documentView is the data passed to every document template
type documentView struct {
	model.DocumentData
	Rooms []string
	Items []string
}

type headingView struct {
	Title   string
	TitleHe string
}

type partyView struct {
	Role      string
	Name      string
	ID        string
	Phone     string
	Email     string
	Address   string
	ShowEmail bool
}

type propertyView struct {
	PropertyAddress string
	PropertyDetails string
	ShowDetails     bool
}

type signatureView struct {
	Label   string
	LabelHe string
}

type rowView struct {
	Label string
	Value string
}

var documentFuncs = template.FuncMap{
	"blank":   utils.OrBlank,
	"shekels": utils.FormatShekels,
	"date":    utils.FormatDocumentDate,
	"double":  func(f float64) float64 { return f * 2 },
	"heading": func(title, titleHe string) headingView {
		return headingView{Title: title, TitleHe: titleHe}
	},
	"partyA": func(v documentView, role string, showEmail bool) partyView {
		return partyView{
			Role: role, Name: v.PartyAName, ID: v.PartyAID, Phone: v.PartyAPhone,
			Email: v.PartyAEmail, Address: v.PartyAAddress, ShowEmail: showEmail,
		}
	},
	"partyB": func(v documentView, role string, showEmail bool) partyView {
		return partyView{
			Role: role, Name: v.PartyBName, ID: v.PartyBID, Phone: v.PartyBPhone,
			Email: v.PartyBEmail, Address: v.PartyBAddress, ShowEmail: showEmail,
		}
	},
	"withDetails": func(v documentView) propertyView {
		return propertyView{PropertyAddress: v.PropertyAddress, PropertyDetails: v.PropertyDetails, ShowDetails: true}
	},
	"addressOnly": func(v documentView) propertyView {
		return propertyView{PropertyAddress: v.PropertyAddress}
	},
	"signature": func(label, labelHe string) signatureView {
		return signatureView{Label: label, LabelHe: labelHe}
	},
	"row": func(label, value string) rowView {
		return rowView{Label: label, Value: value}
	},
}

// DocumentService renders legal document templates
type DocumentService struct {
	templates *template.Template
}

// NewDocumentService parses the embedded document templates
func NewDocumentService() (*DocumentService, error) {
	tmpl, err := template.New("documents").Funcs(documentFuncs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse document templates: %w", err)
	}
	return &DocumentService{templates: tmpl}, nil
}

// Types returns the document catalogue in display order
func (s *DocumentService) Types() []model.DocumentInfo {
	infos := make([]model.DocumentInfo, 0, len(model.DocumentTypes))
	for _, t := range model.DocumentTypes {
		infos = append(infos, model.DocumentCatalogue[t])
	}
	return infos
}

// Generate renders the document of the given type.
// Catalogued types without a template render UnsupportedDocumentHTML.
func (s *DocumentService) Generate(docType model.DocumentType, data model.DocumentData) (string, error) {
	if !docType.Valid() {
		return "", fmt.Errorf("%w: %s", ErrUnknownDocumentType, docType)
	}

	tmpl := s.templates.Lookup(string(docType))
	if tmpl == nil {
		return UnsupportedDocumentHTML, nil
	}

	view := documentView{
		DocumentData: data,
		Rooms:        inspectionRooms,
		Items:        inspectionItems,
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", docType, err)
	}
	return buf.String(), nil
}
