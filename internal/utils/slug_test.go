package utils

import (
	"testing"

	"estate/internal/model"
)

func TestSlugifyCases(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Hello, World!  Nice_day", want: "hello-world-nice-day"},
		{in: "  --Leading and trailing--  ", want: "leading-and-trailing"},
		{in: "Nahal Maor 4", want: "nahal-maor-4"},
		{in: "", want: ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPropertySlugCases(t *testing.T) {
	tests := []struct {
		name         string
		neighborhood string
		propertyType model.PropertyType
		rooms        float64
		id           string
		want         string
	}{
		{
			name:         "Whole rooms",
			neighborhood: "RBS_ALEPH",
			propertyType: model.PropertyApartment,
			rooms:        4,
			id:           "1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed",
			want:         "rbs-aleph-apartment-4-rooms-bd4bed",
		},
		{
			name:         "Half rooms and multi-word type",
			neighborhood: "SDE_DOV_NORTH",
			propertyType: model.PropertyGardenApartment,
			rooms:        3.5,
			id:           "abc",
			want:         "sde-dov-north-garden-apartment-3.5-rooms-abc",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PropertySlug(tt.neighborhood, tt.propertyType, tt.rooms, tt.id); got != tt.want {
				t.Errorf("PropertySlug = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPropertyTitleCases(t *testing.T) {
	tests := []struct {
		name         string
		rooms        float64
		propertyType model.PropertyType
		neighborhood string
		want         string
	}{
		{name: "Beit Shemesh", rooms: 4, propertyType: model.PropertyApartment, neighborhood: "RBS_ALEPH", want: "4-Room Apartment in RBS Aleph"},
		{name: "Sde Dov gets city", rooms: 4.5, propertyType: model.PropertyGardenApartment, neighborhood: "SDE_DOV_NORTH", want: "4.5-Room Garden Apartment in Sde Dov North, Tel Aviv"},
		{name: "Unknown codes humanized", rooms: 2, propertyType: "LOFT", neighborhood: "NEW_AREA", want: "2-Room Loft in New Area"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PropertyTitle(tt.rooms, tt.propertyType, tt.neighborhood); got != tt.want {
				t.Errorf("PropertyTitle = %q, want %q", got, tt.want)
			}
		})
	}
}
