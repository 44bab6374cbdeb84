package models

import "go.mongodb.org/mongo-driver/bson"

// Location is the nested address block shared by venues and suppliers.
type Location struct {
	City     string `bson:"city" json:"city"`
	District string `bson:"district" json:"district"`
	Address  string `bson:"address,omitempty" json:"address,omitempty"`
}

type CapacityRange struct {
	Min int `bson:"min" json:"min"`
	Max int `bson:"max" json:"max"`
}

type Venue struct {
	ID             string        `bson:"id" json:"id"`
	Name           string        `bson:"name" json:"name"`
	Description    string        `bson:"description" json:"description"`
	Location       Location      `bson:"location" json:"location"`
	Capacity       CapacityRange `bson:"capacity" json:"capacity"`
	PricePerPerson int           `bson:"pricePerPerson" json:"pricePerPerson"`
	VenueType      string        `bson:"venueType" json:"venueType"`
	Features       []string      `bson:"features" json:"features"`
	Images         []string      `bson:"images" json:"images"`
	Rating         float64       `bson:"rating" json:"rating"`
	ReviewCount    int           `bson:"reviewCount" json:"reviewCount"`
}

// VenueFilter narrows the venue listing. Every set field is an exact match
// except the price bounds, which are inclusive. Nil pointers mean no constraint.
type VenueFilter struct {
	City      string
	District  string
	VenueType string
	MinPrice  *int
	MaxPrice  *int
}

func (f VenueFilter) Query() bson.M {
	query := bson.M{}
	if f.City != "" {
		query["location.city"] = f.City
	}
	if f.District != "" {
		query["location.district"] = f.District
	}
	if f.VenueType != "" {
		query["venueType"] = f.VenueType
	}
	if f.MinPrice != nil || f.MaxPrice != nil {
		price := bson.M{}
		if f.MinPrice != nil {
			price["$gte"] = *f.MinPrice
		}
		if f.MaxPrice != nil {
			price["$lte"] = *f.MaxPrice
		}
		query["pricePerPerson"] = price
	}
	return query
}
