package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func intPtr(v int) *int { return &v }

func TestVenueFilterQueryEmpty(t *testing.T) {
	assert.Equal(t, bson.M{}, VenueFilter{}.Query())
}

func TestVenueFilterQueryExactMatches(t *testing.T) {
	query := VenueFilter{City: "İstanbul", District: "Beşiktaş", VenueType: "hotel"}.Query()

	assert.Equal(t, bson.M{
		"location.city":     "İstanbul",
		"location.district": "Beşiktaş",
		"venueType":         "hotel",
	}, query)
}

func TestVenueFilterQueryPriceBounds(t *testing.T) {
	query := VenueFilter{MinPrice: intPtr(400), MaxPrice: intPtr(900)}.Query()
	assert.Equal(t, bson.M{"pricePerPerson": bson.M{"$gte": 400, "$lte": 900}}, query)

	query = VenueFilter{MinPrice: intPtr(400)}.Query()
	assert.Equal(t, bson.M{"pricePerPerson": bson.M{"$gte": 400}}, query)

	query = VenueFilter{MaxPrice: intPtr(900)}.Query()
	assert.Equal(t, bson.M{"pricePerPerson": bson.M{"$lte": 900}}, query)
}

func TestVenueFilterQueryConjunctive(t *testing.T) {
	query := VenueFilter{City: "İzmir", MinPrice: intPtr(500)}.Query()

	assert.Equal(t, bson.M{
		"location.city":  "İzmir",
		"pricePerPerson": bson.M{"$gte": 500},
	}, query)
}

func TestSupplierFilterQuery(t *testing.T) {
	assert.Equal(t, bson.M{}, SupplierFilter{}.Query())

	query := SupplierFilter{City: "Ankara", Category: "catering", WomenOwned: true}.Query()
	assert.Equal(t, bson.M{
		"location.city": "Ankara",
		"category":      "catering",
		"isWomenOwned":  true,
	}, query)
}

func TestSupplierFilterWomenOwnedOnlyConstrainsWhenTrue(t *testing.T) {
	query := SupplierFilter{WomenOwned: false}.Query()
	_, present := query["isWomenOwned"]
	assert.False(t, present)
}

func TestSupplierFilterPriceBounds(t *testing.T) {
	query := SupplierFilter{MinPrice: intPtr(5000), MaxPrice: intPtr(30000)}.Query()

	assert.Equal(t, bson.M{
		"priceRange.min": bson.M{"$gte": 5000},
		"priceRange.max": bson.M{"$lte": 30000},
	}, query)
}
