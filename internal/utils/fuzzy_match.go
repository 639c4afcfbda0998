package utils

import (
	"sort"
	"strings"

	"estate/internal/model"
)

// featureAliases maps each canonical feature to the terms users type for it
var featureAliases = map[model.Feature][]string{
	model.FeatureParking:            {"parking", "car park", "covered parking", "parking spot", "chanaya"},
	model.FeatureElevator:           {"elevator", "lift"},
	model.FeatureMamad:              {"mamad", "safe room", "safe-room", "shelter", "mamak"},
	model.FeatureSukka:              {"sukka", "sukkah", "sukka balcony", "sukkah balcony"},
	model.FeatureStorage:            {"storage", "storage room", "machsan", "storeroom"},
	model.FeatureAirConditioning:    {"airconditioning", "air conditioning", "air conditioner", "aircon", "a/c", "ac", "mazgan"},
	model.FeatureGarden:             {"garden", "yard", "private garden", "gina"},
	model.FeatureShabbatElevator:    {"shabbatelevator", "shabbat elevator", "shabbos elevator", "shabbat lift"},
	model.FeatureRooftop:            {"rooftop", "roof", "roof terrace", "rooftop terrace"},
	model.FeatureKosherKitchen:      {"kosherkitchen", "kosher kitchen", "kosher"},
	model.FeatureSeparateSink:       {"separatesink", "separate sink", "two sinks", "double sink"},
	model.FeatureAccessibleBuilding: {"accessiblebuilding", "accessible building", "accessible", "wheelchair", "wheelchair access"},
	model.FeatureRenovated:          {"renovated", "renovation", "newly renovated", "upgraded"},
	model.FeatureBalcony:            {"balcony", "balconies", "terrace", "mirpeset"},
}

// aliasIndex is the reverse lookup built from featureAliases
var aliasIndex = buildAliasIndex()

func buildAliasIndex() map[string]model.Feature {
	idx := make(map[string]model.Feature)
	for feature, aliases := range featureAliases {
		idx[strings.ToLower(string(feature))] = feature
		for _, alias := range aliases {
			idx[alias] = feature
		}
	}
	return idx
}

// NormalizeFeature maps a user-supplied feature term to its canonical name.
// Returns false when the term matches no known feature.
func NormalizeFeature(term string) (model.Feature, bool) {
	t := strings.ToLower(strings.TrimSpace(term))
	if t == "" {
		return "", false
	}

	// Exact match
	if f, ok := aliasIndex[t]; ok {
		return f, true
	}

	// Collapse separators: "air-conditioning", "safe_room"
	collapsed := strings.NewReplacer("-", " ", "_", " ").Replace(t)
	collapsed = strings.Join(strings.Fields(collapsed), " ")
	if f, ok := aliasIndex[collapsed]; ok {
		return f, true
	}
	if f, ok := aliasIndex[strings.ReplaceAll(collapsed, " ", "")]; ok {
		return f, true
	}

	// Contains match on multi-word aliases, longest alias wins
	var best model.Feature
	bestAlias := ""
	for alias, f := range aliasIndex {
		if len(alias) < 4 || !strings.Contains(collapsed, alias) {
			continue
		}
		if len(alias) > len(bestAlias) || (len(alias) == len(bestAlias) && alias < bestAlias) {
			best, bestAlias = f, alias
		}
	}
	if bestAlias != "" {
		return best, true
	}

	return "", false
}

// NormalizeFeatures splits comma-separated terms and maps each to its
// canonical feature. Unrecognized terms are returned separately.
func NormalizeFeatures(terms []string) (features []string, unknown []string) {
	seen := make(map[model.Feature]bool)
	for _, raw := range terms {
		for _, term := range strings.Split(raw, ",") {
			if strings.TrimSpace(term) == "" {
				continue
			}
			f, ok := NormalizeFeature(term)
			if !ok {
				unknown = append(unknown, strings.TrimSpace(term))
				continue
			}
			if !seen[f] {
				seen[f] = true
				features = append(features, string(f))
			}
		}
	}
	sort.Strings(features)
	return features, unknown
}

// featureConditions holds the SQL predicate for each canonical feature
var featureConditions = map[model.Feature]string{
	model.FeatureParking:            "parking >= 1",
	model.FeatureElevator:           "elevator = true",
	model.FeatureMamad:              "mamad = true",
	model.FeatureSukka:              "sukka = true",
	model.FeatureStorage:            "storage = true",
	model.FeatureAirConditioning:    "air_conditioning = true",
	model.FeatureGarden:             "garden = true",
	model.FeatureShabbatElevator:    "shabbat_elevator = true",
	model.FeatureRooftop:            "rooftop = true",
	model.FeatureKosherKitchen:      "kosher_kitchen = true",
	model.FeatureSeparateSink:       "separate_sink = true",
	model.FeatureAccessibleBuilding: "accessible_building = true",
	model.FeatureRenovated:          "renovated = true",
	model.FeatureBalcony:            "balconies >= 1",
}

// BuildFeatureConditions returns the WHERE predicates for canonical features.
// Names without a predicate are skipped.
func BuildFeatureConditions(features []string) []string {
	var conditions []string
	for _, name := range features {
		if cond, ok := featureConditions[model.Feature(name)]; ok {
			conditions = append(conditions, cond)
		}
	}
	return conditions
}
