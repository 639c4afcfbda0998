package model

// ListingType is how a property is offered
type ListingType string

const (
	ListingSale      ListingType = "SALE"
	ListingRent      ListingType = "RENT"
	ListingShortTerm ListingType = "SHORT_TERM"
)

// PropertyType is the kind of dwelling
type PropertyType string

const (
	PropertyApartment       PropertyType = "APARTMENT"
	PropertyPenthouse       PropertyType = "PENTHOUSE"
	PropertyGardenApartment PropertyType = "GARDEN_APARTMENT"
	PropertyDuplex          PropertyType = "DUPLEX"
	PropertyCottage         PropertyType = "COTTAGE"
	PropertyVilla           PropertyType = "VILLA"
	PropertyTownhouse       PropertyType = "TOWNHOUSE"
	PropertyStudio          PropertyType = "STUDIO"
	PropertyRoom            PropertyType = "ROOM"
	PropertyCommercial      PropertyType = "COMMERCIAL"
	PropertyLand            PropertyType = "LAND"
)

// PropertyStatus is the lifecycle state of a listing
type PropertyStatus string

const (
	StatusActive   PropertyStatus = "ACTIVE"
	StatusPending  PropertyStatus = "PENDING"
	StatusSold     PropertyStatus = "SOLD"
	StatusRented   PropertyStatus = "RENTED"
	StatusInactive PropertyStatus = "INACTIVE"
)

// FurnishedStatus describes what furniture stays with the property
type FurnishedStatus string

const (
	Unfurnished        FurnishedStatus = "UNFURNISHED"
	PartiallyFurnished FurnishedStatus = "PARTIAL"
	FullyFurnished     FurnishedStatus = "FULLY_FURNISHED"
)

// BuildingType is the construction category
type BuildingType string

const (
	BuildingNewConstruction BuildingType = "NEW_CONSTRUCTION"
	BuildingResale          BuildingType = "RESALE"
	BuildingTama38          BuildingType = "TAMA_38"
	BuildingPinuiBinui      BuildingType = "PINUI_BINUI"
)

// InquiryStatus tracks follow-up on an inquiry
type InquiryStatus string

const (
	InquiryNew       InquiryStatus = "NEW"
	InquiryContacted InquiryStatus = "CONTACTED"
	InquiryScheduled InquiryStatus = "SCHEDULED"
	InquiryClosed    InquiryStatus = "CLOSED"
)

// DisplayName is an English/Hebrew label pair
type DisplayName struct {
	En string `json:"en"`
	He string `json:"he"`
}

// NeighborhoodNames maps neighborhood codes to display names
var NeighborhoodNames = map[string]DisplayName{
	"RBS_ALEPH":          {En: "RBS Aleph", He: "רמת בית שמש א'"},
	"RBS_BET":            {En: "RBS Bet", He: "רמת בית שמש ב'"},
	"RBS_GIMMEL_1":       {En: "RBS Gimmel 1", He: "רמת בית שמש ג'1"},
	"RBS_GIMMEL_2":       {En: "RBS Gimmel 2", He: "רמת בית שמש ג'2"},
	"RBS_GIMMEL_3":       {En: "RBS Gimmel 3", He: "רמת בית שמש ג'3"},
	"RBS_DALED":          {En: "RBS Daled", He: "רמת בית שמש ד'"},
	"RBS_HEY":            {En: "RBS Hey", He: "רמת בית שמש ה'"},
	"OLD_BS_CENTER":      {En: "Old Beit Shemesh Center", He: "בית שמש העתיקה - מרכז"},
	"OLD_BS_NORTH":       {En: "Old Beit Shemesh North", He: "בית שמש העתיקה - צפון"},
	"SHEINFELD":          {En: "Sheinfeld", He: "שיינפלד"},
	"NOFEI_HASHEMESH":    {En: "Nofei HaShemesh", He: "נופי השמש"},
	"NEVE_SHAMIR":        {En: "Neve Shamir", He: "נווה שמיר"},
	"GIVAT_SAVION":       {En: "Givat Savion", He: "גבעת סביון"},
	"MEVO_BEITAR":        {En: "Mevo Beitar", He: "מבוא ביתר"},
	"TZAFRIRIM":          {En: "Tzafririm", He: "צפרירים"},
	"NAHAL_SOREK":        {En: "Nahal Sorek", He: "נחל שורק"},
	"SDE_DOV_NORTH":      {En: "Sde Dov North", He: "שדה דב צפון"},
	"SDE_DOV_SOUTH":      {En: "Sde Dov South", He: "שדה דב דרום"},
	"SDE_DOV_BEACHFRONT": {En: "Sde Dov Beachfront", He: "שדה דב חוף הים"},
}

// PropertyTypeNames maps property types to display names
var PropertyTypeNames = map[PropertyType]DisplayName{
	PropertyApartment:       {En: "Apartment", He: "דירה"},
	PropertyPenthouse:       {En: "Penthouse", He: "פנטהאוז"},
	PropertyGardenApartment: {En: "Garden Apartment", He: "דירת גן"},
	PropertyDuplex:          {En: "Duplex", He: "דופלקס"},
	PropertyCottage:         {En: "Cottage", He: "קוטג'"},
	PropertyVilla:           {En: "Villa", He: "וילה"},
	PropertyTownhouse:       {En: "Townhouse", He: "טאון האוס"},
	PropertyStudio:          {En: "Studio", He: "סטודיו"},
	PropertyRoom:            {En: "Room", He: "חדר"},
	PropertyCommercial:      {En: "Commercial", He: "מסחרי"},
	PropertyLand:            {En: "Land", He: "קרקע"},
}

// ListingTypeNames maps listing types to display names
var ListingTypeNames = map[ListingType]DisplayName{
	ListingSale:      {En: "For Sale", He: "למכירה"},
	ListingRent:      {En: "For Rent", He: "להשכרה"},
	ListingShortTerm: {En: "Short Term", He: "טווח קצר"},
}

// FurnishedStatusNames maps furnished states to display names
var FurnishedStatusNames = map[FurnishedStatus]DisplayName{
	Unfurnished:        {En: "Unfurnished", He: "לא מרוהט"},
	PartiallyFurnished: {En: "Partially Furnished", He: "מרוהט חלקית"},
	FullyFurnished:     {En: "Fully Furnished", He: "מרוהט מלא"},
}

// BuildingTypeNames maps building types to display names
var BuildingTypeNames = map[BuildingType]DisplayName{
	BuildingNewConstruction: {En: "New Construction", He: "בנייה חדשה"},
	BuildingResale:          {En: "Resale", He: "יד שנייה"},
	BuildingTama38:          {En: "TAMA 38", He: `תמ"א 38`},
	BuildingPinuiBinui:      {En: "Pinui Binui", He: "פינוי בינוי"},
}

// SdeDovNeighborhoods are the Tel Aviv development areas
var SdeDovNeighborhoods = []string{"SDE_DOV_NORTH", "SDE_DOV_SOUTH", "SDE_DOV_BEACHFRONT"}

// IsSdeDovNeighborhood reports whether code is one of the Sde Dov areas
func IsSdeDovNeighborhood(code string) bool {
	for _, n := range SdeDovNeighborhoods {
		if n == code {
			return true
		}
	}
	return false
}

// Valid reports whether t is a known listing type
func (t ListingType) Valid() bool {
	switch t {
	case ListingSale, ListingRent, ListingShortTerm:
		return true
	}
	return false
}

// Valid reports whether t is a known property type
func (t PropertyType) Valid() bool {
	switch t {
	case PropertyApartment, PropertyPenthouse, PropertyGardenApartment, PropertyDuplex,
		PropertyCottage, PropertyVilla, PropertyTownhouse, PropertyStudio, PropertyRoom,
		PropertyCommercial, PropertyLand:
		return true
	}
	return false
}

// Valid reports whether s is a known property status
func (s PropertyStatus) Valid() bool {
	switch s {
	case StatusActive, StatusPending, StatusSold, StatusRented, StatusInactive:
		return true
	}
	return false
}

// Valid reports whether f is a known furnished status
func (f FurnishedStatus) Valid() bool {
	switch f {
	case Unfurnished, PartiallyFurnished, FullyFurnished:
		return true
	}
	return false
}

// Valid reports whether s is a known inquiry status
func (s InquiryStatus) Valid() bool {
	switch s {
	case InquiryNew, InquiryContacted, InquiryScheduled, InquiryClosed:
		return true
	}
	return false
}

// Valid reports whether b is a known building type
func (b BuildingType) Valid() bool {
	_, ok := BuildingTypeNames[b]
	return ok
}

// ValidNeighborhood reports whether code is a known neighborhood
func ValidNeighborhood(code string) bool {
	_, ok := NeighborhoodNames[code]
	return ok
}
