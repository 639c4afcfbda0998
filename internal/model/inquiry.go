package model

import "time"

// Inquiry is a contact request about a property
type Inquiry struct {
	ID         string        `json:"id" db:"id"`
	PropertyID string        `json:"property_id" db:"property_id"`
	Name       string        `json:"name" db:"name"`
	Email      string        `json:"email" db:"email"`
	Phone      string        `json:"phone" db:"phone"`
	Message    string        `json:"message" db:"message"`
	Status     InquiryStatus `json:"status" db:"status"`
	CreatedAt  time.Time     `json:"created_at" db:"created_at"`
}

// InquiryRequest is the body of POST /api/v1/inquiries
type InquiryRequest struct {
	PropertyID string `json:"propertyId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Message    string `json:"message"`
}

// InquiryReceipt is the confirmation returned to the submitter
type InquiryReceipt struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// InquiryResponse is the 201 body of POST /api/v1/inquiries
type InquiryResponse struct {
	Success bool           `json:"success"`
	Inquiry InquiryReceipt `json:"inquiry"`
}

// InquiryWithProperty is an inquiry joined with its property reference
type InquiryWithProperty struct {
	Inquiry
	Property PropertyRef `json:"property"`
}

// InquiryFilter narrows GET /api/v1/inquiries
type InquiryFilter struct {
	PropertyID string        `form:"propertyId"`
	Status     InquiryStatus `form:"status"`
}

// InquiryListResponse is the response of GET /api/v1/inquiries
type InquiryListResponse struct {
	Inquiries []InquiryWithProperty `json:"inquiries"`
}

// InquiryEvent is published after an inquiry is stored
type InquiryEvent struct {
	InquiryID     string    `json:"inquiry_id"`
	PropertyID    string    `json:"property_id"`
	PropertyTitle string    `json:"property_title"`
	ContactEmail  *string   `json:"contact_email,omitempty"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Message       string    `json:"message"`
	CreatedAt     time.Time `json:"created_at"`
}
