package model

// DocumentType identifies a legal document template
type DocumentType string

const (
	DocRentalAgreement     DocumentType = "RENTAL_AGREEMENT"
	DocPurchaseOffer       DocumentType = "PURCHASE_OFFER"
	DocTenantApplication   DocumentType = "TENANT_APPLICATION"
	DocPropertyDisclosure  DocumentType = "PROPERTY_DISCLOSURE"
	DocInspectionChecklist DocumentType = "INSPECTION_CHECKLIST"
)

// DocumentTypes lists every document type in catalogue order
var DocumentTypes = []DocumentType{
	DocRentalAgreement,
	DocPurchaseOffer,
	DocTenantApplication,
	DocPropertyDisclosure,
	DocInspectionChecklist,
}

// DocumentInfo describes a document type in the catalogue
type DocumentInfo struct {
	Type        DocumentType `json:"type"`
	Name        string       `json:"name"`
	NameHe      string       `json:"name_he"`
	Description string       `json:"description"`
}

// DocumentCatalogue holds the display data of each document type
var DocumentCatalogue = map[DocumentType]DocumentInfo{
	DocRentalAgreement: {
		Type:        DocRentalAgreement,
		Name:        "Rental Agreement",
		NameHe:      "הסכם שכירות",
		Description: "Standard residential rental agreement",
	},
	DocPurchaseOffer: {
		Type:        DocPurchaseOffer,
		Name:        "Purchase Offer",
		NameHe:      "הצעת רכישה",
		Description: "Formal offer to purchase a property",
	},
	DocTenantApplication: {
		Type:        DocTenantApplication,
		Name:        "Tenant Application",
		NameHe:      "טופס בקשת שוכר",
		Description: "Application form for prospective tenants",
	},
	DocPropertyDisclosure: {
		Type:        DocPropertyDisclosure,
		Name:        "Property Disclosure",
		NameHe:      "גילוי נאות על הנכס",
		Description: "Seller disclosure of property condition",
	},
	DocInspectionChecklist: {
		Type:        DocInspectionChecklist,
		Name:        "Inspection Checklist",
		NameHe:      "רשימת בדיקה",
		Description: "Move-in/move-out inspection checklist",
	},
}

// Valid reports whether t is a known document type
func (t DocumentType) Valid() bool {
	_, ok := DocumentCatalogue[t]
	return ok
}

// DocumentData carries the party, property and term fields of a document.
// Party A is the landlord, buyer or applicant depending on the document.
type DocumentData struct {
	PartyAName    string `json:"partyAName"`
	PartyAID      string `json:"partyAId"`
	PartyAPhone   string `json:"partyAPhone"`
	PartyAEmail   string `json:"partyAEmail"`
	PartyAAddress string `json:"partyAAddress"`
	PartyBName    string `json:"partyBName"`
	PartyBID      string `json:"partyBId"`
	PartyBPhone   string `json:"partyBPhone"`
	PartyBEmail   string `json:"partyBEmail"`
	PartyBAddress string `json:"partyBAddress"`

	PropertyAddress string `json:"propertyAddress"`
	PropertyDetails string `json:"propertyDetails"`

	Price        float64 `json:"price"`
	StartDate    string  `json:"startDate"`
	EndDate      string  `json:"endDate"`
	PaymentTerms string  `json:"paymentTerms"`
	SpecialTerms string  `json:"specialTerms"`
}

// DocumentResponse is the response of POST /api/v1/documents/:type
type DocumentResponse struct {
	Type DocumentType `json:"type"`
	HTML string       `json:"html"`
}
