package utils

import (
	"regexp"
	"strconv"
	"strings"

	"estate/internal/model"
)

var (
	nonWordRe   = regexp.MustCompile(`[^\w\s-]`)
	separatorRe = regexp.MustCompile(`[\s_-]+`)
)

// Slugify lowercases text and joins words with single dashes
func Slugify(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = nonWordRe.ReplaceAllString(s, "")
	s = separatorRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// PropertySlug builds the public slug of a property, e.g.
// rbs-aleph-garden-apartment-4-rooms-a1b2c3
func PropertySlug(neighborhood string, propertyType model.PropertyType, rooms float64, id string) string {
	neighborhoodSlug := strings.ReplaceAll(strings.ToLower(neighborhood), "_", "-")
	typeSlug := strings.ReplaceAll(strings.ToLower(string(propertyType)), "_", "-")
	shortID := id
	if len(shortID) > 6 {
		shortID = shortID[len(shortID)-6:]
	}
	return neighborhoodSlug + "-" + typeSlug + "-" + formatRooms(rooms) + "-rooms-" + shortID
}

// PropertyTitle builds a default English title such as
// "4-Room Garden Apartment in RBS Aleph"
func PropertyTitle(rooms float64, propertyType model.PropertyType, neighborhood string) string {
	typeName := HumanizeEnum(string(propertyType))
	if name, ok := model.PropertyTypeNames[propertyType]; ok {
		typeName = name.En
	}
	area := HumanizeEnum(neighborhood)
	if name, ok := model.NeighborhoodNames[neighborhood]; ok {
		area = name.En
	}

	title := formatRooms(rooms) + "-Room " + typeName + " in " + area
	if model.IsSdeDovNeighborhood(neighborhood) {
		title += ", Tel Aviv"
	}
	return title
}

func formatRooms(rooms float64) string {
	return strconv.FormatFloat(rooms, 'f', -1, 64)
}
