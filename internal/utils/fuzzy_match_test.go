package utils

import (
	"reflect"
	"testing"

	"estate/internal/model"
)

func TestNormalizeFeature(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   model.Feature
		wantOK bool
	}{
		{name: "Canonical name", input: "parking", want: model.FeatureParking, wantOK: true},
		{name: "Canonical camel case", input: "airConditioning", want: model.FeatureAirConditioning, wantOK: true},
		{name: "Alias", input: "safe room", want: model.FeatureMamad, wantOK: true},
		{name: "Alias with dash", input: "Safe-Room", want: model.FeatureMamad, wantOK: true},
		{name: "Short alias", input: "A/C", want: model.FeatureAirConditioning, wantOK: true},
		{name: "Underscore separated", input: "shabbat_elevator", want: model.FeatureShabbatElevator, wantOK: true},
		{name: "Contained alias prefers longest", input: "has a sukkah balcony", want: model.FeatureSukka, wantOK: true},
		{name: "Hebrew transliteration", input: "mirpeset", want: model.FeatureBalcony, wantOK: true},
		{name: "Unknown", input: "helipad", wantOK: false},
		{name: "Empty", input: "   ", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeFeature(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("NormalizeFeature(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("NormalizeFeature(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeFeatures(t *testing.T) {
	features, unknown := NormalizeFeatures([]string{"lift, safe room", "elevator", "pool"})

	wantFeatures := []string{"elevator", "mamad"}
	if !reflect.DeepEqual(features, wantFeatures) {
		t.Errorf("features = %v, want %v", features, wantFeatures)
	}
	if !reflect.DeepEqual(unknown, []string{"pool"}) {
		t.Errorf("unknown = %v, want [pool]", unknown)
	}
}

func TestBuildFeatureConditions(t *testing.T) {
	conds := BuildFeatureConditions([]string{"parking", "mamad", "nonsense"})
	want := []string{"parking >= 1", "mamad = true"}
	if !reflect.DeepEqual(conds, want) {
		t.Errorf("conditions = %v, want %v", conds, want)
	}

	if conds := BuildFeatureConditions(nil); len(conds) != 0 {
		t.Errorf("expected no conditions, got %v", conds)
	}
}

func TestEveryFeatureHasCondition(t *testing.T) {
	for feature := range featureAliases {
		if _, ok := featureConditions[feature]; !ok {
			t.Errorf("feature %q has aliases but no SQL condition", feature)
		}
	}
}
