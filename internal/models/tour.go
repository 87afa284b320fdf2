package models

// Tour represents a bookable tour listing.
// This service only reads tours; records are created and owned by the
// backing store (JSON server fixture or Firestore collection "tours").
type Tour struct {
	ID             string  `json:"id" firestore:"-"`
	Name           string  `json:"name" firestore:"name"`
	Description    string  `json:"description" firestore:"description"`
	Location       string  `json:"location" firestore:"location"`
	Price          float64 `json:"price" firestore:"price"`
	Duration       int     `json:"duration" firestore:"duration"`
	Rating         float64 `json:"rating" firestore:"rating"`
	Image          string  `json:"image" firestore:"image"`
	AvailableSpots int     `json:"availableSpots" firestore:"availableSpots"`
}
