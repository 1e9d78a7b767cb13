package models

// SalonAddress holds the street-level address of a salon.
type SalonAddress struct {
	Street string `bson:"street,omitempty" json:"street,omitempty"`
	Number string `bson:"number,omitempty" json:"number,omitempty"`
	Sector string `bson:"sector,omitempty" json:"sector,omitempty"`
}

// GeoPoint is a plain latitude/longitude pair.
type GeoPoint struct {
	Lat float64 `bson:"lat,omitempty" json:"lat,omitempty"`
	Lng float64 `bson:"lng,omitempty" json:"lng,omitempty"`
}

// Salon represents a salon business. WorkingHours are used only as a fallback
// when a worker has no availability entry for the queried day.
type Salon struct {
	ID           string         `bson:"_id,omitempty" json:"id"`
	Name         string         `bson:"name" json:"name"`
	Description  string         `bson:"description,omitempty" json:"description,omitempty"`
	Address      SalonAddress   `bson:"address,omitempty" json:"address,omitempty"`
	Location     GeoPoint       `bson:"location,omitempty" json:"location,omitempty"`
	OwnerID      string         `bson:"ownerId" json:"ownerId"`
	Services     []ServiceEntry `bson:"services" json:"services"`
	WorkingHours []DayHours     `bson:"workingHours" json:"workingHours"`
}

// SalonSummary is the short salon projection embedded in booking responses.
type SalonSummary struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Address SalonAddress `json:"address,omitempty"`
}

func (s *Salon) Summary() SalonSummary {
	return SalonSummary{ID: s.ID, Name: s.Name, Address: s.Address}
}

// HoursFor returns the salon-wide opening hours for the given day name.
func (s *Salon) HoursFor(dayName string) (DayHours, bool) {
	for _, wh := range s.WorkingHours {
		if wh.DayOfWeek == dayName {
			return wh, true
		}
	}
	return DayHours{}, false
}
