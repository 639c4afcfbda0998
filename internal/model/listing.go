package model

import (
	"time"

	"github.com/pgvector/pgvector-go"
)

// Property represents a listed property
type Property struct {
	ID                 string          `json:"id" db:"id"`
	Slug               string          `json:"slug" db:"slug"`
	Title              string          `json:"title" db:"title"`
	TitleHe            *string         `json:"title_he,omitempty" db:"title_he"`
	Description        *string         `json:"description,omitempty" db:"description"`
	DescriptionHe      *string         `json:"description_he,omitempty" db:"description_he"`
	ListingType        ListingType     `json:"listing_type" db:"listing_type"`
	PropertyType       PropertyType    `json:"property_type" db:"property_type"`
	Status             PropertyStatus  `json:"status" db:"status"`
	Neighborhood       string          `json:"neighborhood" db:"neighborhood"`
	Address            string          `json:"address" db:"address"`
	AddressHe          *string         `json:"address_he,omitempty" db:"address_he"`
	Price              float64         `json:"price" db:"price"`
	Rooms              float64         `json:"rooms" db:"rooms"`
	Bedrooms           *int            `json:"bedrooms,omitempty" db:"bedrooms"`
	Bathrooms          *float64        `json:"bathrooms,omitempty" db:"bathrooms"`
	SizeSqm            float64         `json:"size_sqm" db:"size_sqm"`
	Floor              *int            `json:"floor,omitempty" db:"floor"`
	TotalFloors        *int            `json:"total_floors,omitempty" db:"total_floors"`
	Balconies          int             `json:"balconies" db:"balconies"`
	Parking            int             `json:"parking" db:"parking"`
	Storage            bool            `json:"storage" db:"storage"`
	Elevator           bool            `json:"elevator" db:"elevator"`
	AirConditioning    bool            `json:"air_conditioning" db:"air_conditioning"`
	Sukka              bool            `json:"sukka" db:"sukka"`
	Mamad              bool            `json:"mamad" db:"mamad"`
	Garden             bool            `json:"garden" db:"garden"`
	Rooftop            bool            `json:"rooftop" db:"rooftop"`
	ShabbatElevator    bool            `json:"shabbat_elevator" db:"shabbat_elevator"`
	KosherKitchen      bool            `json:"kosher_kitchen" db:"kosher_kitchen"`
	SeparateSink       bool            `json:"separate_sink" db:"separate_sink"`
	AccessibleBuilding bool            `json:"accessible_building" db:"accessible_building"`
	Renovated          bool            `json:"renovated" db:"renovated"`
	Furnished          FurnishedStatus `json:"furnished" db:"furnished"`
	BuildingType       *BuildingType   `json:"building_type,omitempty" db:"building_type"`
	YearBuilt          *int            `json:"year_built,omitempty" db:"year_built"`
	Arnona             *float64        `json:"arnona,omitempty" db:"arnona"`
	VaadBayit          *float64        `json:"vaad_bayit,omitempty" db:"vaad_bayit"`
	ContactName        *string         `json:"contact_name,omitempty" db:"contact_name"`
	ContactPhone       *string         `json:"contact_phone,omitempty" db:"contact_phone"`
	ContactEmail       *string         `json:"contact_email,omitempty" db:"contact_email"`
	IsOwnerListing     bool            `json:"is_owner_listing" db:"is_owner_listing"`
	AvailableFrom      *time.Time      `json:"available_from,omitempty" db:"available_from"`
	FeatureVector      pgvector.Vector `json:"-" db:"feature_vector"`
	Distance           *float64        `json:"-" db:"distance"` // L2 distance in similarity queries
	CreatedAt          time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at" db:"updated_at"`
	Images             []PropertyImage `json:"images" db:"-"`
}

// PropertyImage is one photo of a property
type PropertyImage struct {
	ID         string  `json:"id" db:"id"`
	PropertyID string  `json:"property_id" db:"property_id"`
	URL        string  `json:"url" db:"url"`
	Caption    *string `json:"caption,omitempty" db:"caption"`
	SortOrder  int     `json:"order" db:"sort_order"`
	IsPrimary  bool    `json:"is_primary" db:"is_primary"`
}

// PricePerMeter returns price per square meter, or 0 when size is unknown
func (p *Property) PricePerMeter() float64 {
	if p.SizeSqm <= 0 {
		return 0
	}
	return p.Price / p.SizeSqm
}

// SimilarProperty represents a similar-listing result with ranking metadata
type SimilarProperty struct {
	Property
	Score          float64  `json:"score"`
	MatchedReasons []string `json:"matched_reasons"`
}

// PropertyRef is the short property reference attached to inquiries
type PropertyRef struct {
	ID           string  `json:"id" db:"id"`
	Title        string  `json:"title" db:"title"`
	Slug         string  `json:"slug" db:"slug"`
	ContactEmail *string `json:"-" db:"contact_email"`
}

// CreatePropertyRequest is the body of POST /api/v1/properties
type CreatePropertyRequest struct {
	Title              string           `json:"title"`
	TitleHe            *string          `json:"title_he"`
	Description        *string          `json:"description"`
	DescriptionHe      *string          `json:"description_he"`
	ListingType        ListingType      `json:"listing_type"`
	PropertyType       PropertyType     `json:"property_type"`
	Status             PropertyStatus   `json:"status"`
	Neighborhood       string           `json:"neighborhood"`
	Address            string           `json:"address"`
	AddressHe          *string          `json:"address_he"`
	Price              float64          `json:"price"`
	Rooms              float64          `json:"rooms"`
	Bedrooms           *int             `json:"bedrooms"`
	Bathrooms          *float64         `json:"bathrooms"`
	SizeSqm            float64          `json:"size_sqm"`
	Floor              *int             `json:"floor"`
	TotalFloors        *int             `json:"total_floors"`
	Balconies          int              `json:"balconies"`
	Parking            int              `json:"parking"`
	Storage            bool             `json:"storage"`
	Elevator           bool             `json:"elevator"`
	AirConditioning    bool             `json:"air_conditioning"`
	Sukka              bool             `json:"sukka"`
	Mamad              bool             `json:"mamad"`
	Garden             bool             `json:"garden"`
	Rooftop            bool             `json:"rooftop"`
	ShabbatElevator    bool             `json:"shabbat_elevator"`
	KosherKitchen      bool             `json:"kosher_kitchen"`
	SeparateSink       bool             `json:"separate_sink"`
	AccessibleBuilding bool             `json:"accessible_building"`
	Renovated          bool             `json:"renovated"`
	Furnished          FurnishedStatus  `json:"furnished"`
	BuildingType       *BuildingType    `json:"building_type"`
	YearBuilt          *int             `json:"year_built"`
	Arnona             *float64         `json:"arnona"`
	VaadBayit          *float64         `json:"vaad_bayit"`
	ContactName        *string          `json:"contact_name"`
	ContactPhone       *string          `json:"contact_phone"`
	ContactEmail       *string          `json:"contact_email"`
	IsOwnerListing     bool             `json:"is_owner_listing"`
	AvailableFrom      *time.Time       `json:"available_from"`
	Images             []ImageUpload    `json:"images"`
}

// ImageUpload is an image supplied when creating a property
type ImageUpload struct {
	URL       string  `json:"url"`
	Caption   *string `json:"caption"`
	Order     int     `json:"order"`
	IsPrimary bool    `json:"is_primary"`
}
