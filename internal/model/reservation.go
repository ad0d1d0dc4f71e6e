package model

// Reservation is a single hotel booking.  One row per stay.  Dates carry
// no time component and travel as ISO YYYY-MM-DD strings; EntryDate is the
// first night of the stay and CheckoutDate is the day the guest leaves
// (an inclusive boundary, not a night stayed).  ID and CreatedAt are
// assigned by the store and never change afterwards.
//
// Fields:
//  ID            – store-assigned opaque identifier.
//  GuestName     – name the booking was made under.
//  EntryDate     – first night of the stay (YYYY-MM-DD).
//  CheckoutDate  – departure day (YYYY-MM-DD), after EntryDate.
//  RoomNumber    – room label; not validated against a room inventory.
//  Price         – total price, never negative.
//  Deposit       – amount already paid, if any (nullable).
//  BookingMethod – how the booking was made, if recorded (nullable).
//  GuestPhone    – contact phone number.
//  GuestCount    – number of guests, at least 1.
//  CreatedAt     – creation timestamp in RFC3339.
type Reservation struct {
	ID            string   `json:"id"`             // reservations.id
	GuestName     string   `json:"guest_name"`     // reservations.guest_name
	EntryDate     string   `json:"entry_date"`     // reservations.entry_date
	CheckoutDate  string   `json:"checkout_date"`  // reservations.checkout_date
	RoomNumber    string   `json:"room_number"`    // reservations.room_number
	Price         float64  `json:"price"`          // reservations.price
	Deposit       *float64 `json:"deposit"`        // reservations.deposit (nullable)
	BookingMethod *string  `json:"booking_method"` // reservations.booking_method (nullable)
	GuestPhone    string   `json:"guest_phone"`    // reservations.guest_phone
	GuestCount    int      `json:"guest_count"`    // reservations.guest_count
	CreatedAt     string   `json:"created_at"`     // reservations.created_at
}

// Known booking methods.  The column is a free string and other values
// are accepted; these are the ones the booking form offers.
const (
	BookingMethodSite      = "booking-site"
	BookingMethodInPerson  = "in-person"
	BookingMethodMessaging = "messaging-app"
	BookingMethodPhone     = "phone"
	BookingMethodOther     = "other"
)
