package service

import (
	"math"
	"sort"
	"time"

	"estate/internal/model"

	"github.com/pgvector/pgvector-go"
)

// Match reason constants
const (
	ReasonSameNeighborhood = "Same neighborhood"
	ReasonSamePropertyType = "Same property type"
	ReasonSimilarPrice     = "Similar price"
	ReasonSameRooms        = "Same number of rooms"
	ReasonSharedFeatures   = "Shared features"
	ReasonNewlyListed      = "Newly listed"
	ReasonGeneralMatch     = "General match"
)

// FeatureVectorDim is the dimension of the property feature vector column
const FeatureVectorDim = 12

// Ranker scores similar-listing candidates against a base property
type Ranker struct {
	weightVector  float64
	weightPrice   float64
	weightRecency float64
	now           func() time.Time
}

// NewRanker creates a new ranker with specified weights
func NewRanker(weightVector, weightPrice, weightRecency float64) *Ranker {
	return &Ranker{
		weightVector:  weightVector,
		weightPrice:   weightPrice,
		weightRecency: weightRecency,
		now:           time.Now,
	}
}

// RankSimilar scores candidates and sorts them best first
func (r *Ranker) RankSimilar(base *model.Property, candidates []model.Property) []model.SimilarProperty {
	results := make([]model.SimilarProperty, 0, len(candidates))

	for _, c := range candidates {
		vectorScore := r.calculateVectorScore(c.Distance)
		priceScore := r.calculatePriceScore(base.Price, c.Price)
		recencyScore := r.calculateRecencyScore(c.CreatedAt)

		results = append(results, model.SimilarProperty{
			Property: c,
			Score: (r.weightVector * vectorScore) +
				(r.weightPrice * priceScore) +
				(r.weightRecency * recencyScore),
			MatchedReasons: r.generateMatchedReasons(base, &c, priceScore),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results
}

// calculateVectorScore maps an L2 distance to 0-1, closer is higher
func (r *Ranker) calculateVectorScore(distance *float64) float64 {
	if distance == nil {
		return 0
	}
	return 1.0 / (1.0 + *distance)
}

// calculatePriceScore scores how close a candidate price is to the base price
func (r *Ranker) calculatePriceScore(basePrice, price float64) float64 {
	if basePrice <= 0 {
		return 0.5 // Neutral score if base has no price
	}
	score := 1.0 - math.Abs(price-basePrice)/basePrice
	if score < 0 {
		return 0
	}
	return score
}

// calculateRecencyScore calculates recency score based on listing date
func (r *Ranker) calculateRecencyScore(createdAt time.Time) float64 {
	if createdAt.IsZero() {
		return 0.5
	}

	daysSinceListed := r.now().Sub(createdAt).Hours() / 24

	// Score = e^(-0.01 * days)
	// After 30 days: ~0.74, after 90 days: ~0.41
	score := math.Exp(-0.01 * daysSinceListed)

	if score > 1.0 {
		score = 1.0
	}
	return score
}

// generateMatchedReasons explains why a candidate resembles the base property
func (r *Ranker) generateMatchedReasons(base, c *model.Property, priceScore float64) []string {
	reasons := []string{}

	if c.Neighborhood == base.Neighborhood {
		reasons = append(reasons, ReasonSameNeighborhood)
	}
	if c.PropertyType == base.PropertyType {
		reasons = append(reasons, ReasonSamePropertyType)
	}
	if priceScore >= 0.85 {
		reasons = append(reasons, ReasonSimilarPrice)
	}
	if c.Rooms == base.Rooms {
		reasons = append(reasons, ReasonSameRooms)
	}
	if sharedFeatures(base, c) >= 3 {
		reasons = append(reasons, ReasonSharedFeatures)
	}
	if !c.CreatedAt.IsZero() && r.now().Sub(c.CreatedAt).Hours()/24 < 7 {
		reasons = append(reasons, ReasonNewlyListed)
	}

	if len(reasons) == 0 {
		reasons = append(reasons, ReasonGeneralMatch)
	}
	return reasons
}

// keyFeatures are the amenities used by both the vector and the reasons
func keyFeatures(p *model.Property) []bool {
	return []bool{
		p.Parking > 0,
		p.Elevator,
		p.Mamad,
		p.Garden,
		p.Sukka,
		p.Renovated,
		p.AirConditioning,
		p.Storage,
	}
}

func sharedFeatures(a, b *model.Property) int {
	fa, fb := keyFeatures(a), keyFeatures(b)
	n := 0
	for i := range fa {
		if fa[i] && fb[i] {
			n++
		}
	}
	return n
}

// FeatureVector builds the normalized vector stored for similarity search:
// log-scaled price, rooms, size and floor ratio followed by the key amenities
func FeatureVector(p *model.Property) pgvector.Vector {
	v := make([]float32, 0, FeatureVectorDim)

	// log10 of 100k..100M maps onto 0..1
	price := 0.0
	if p.Price > 0 {
		price = clamp01((math.Log10(p.Price) - 5) / 3)
	}
	v = append(v,
		float32(price),
		float32(clamp01(p.Rooms/10)),
		float32(clamp01(p.SizeSqm/300)),
		float32(floorRatio(p)),
	)

	for _, has := range keyFeatures(p) {
		if has {
			v = append(v, 1)
		} else {
			v = append(v, 0)
		}
	}
	return pgvector.NewVector(v)
}

func floorRatio(p *model.Property) float64 {
	if p.Floor == nil || p.TotalFloors == nil || *p.TotalFloors <= 0 {
		return 0
	}
	return clamp01(float64(*p.Floor) / float64(*p.TotalFloors))
}

func clamp01(f float64) float64 {
	switch {
	case math.IsNaN(f) || f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}
