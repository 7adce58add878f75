package domain

// Represents a single parcel waiting in, or travelling through, the village.
// Place is where the parcel currently is; a parcel whose Place equals the
// robot's place is being carried. Address is where it must be delivered.
type Parcel struct {
	Place   string
	Address string
}

// Delivered reports whether the parcel has reached its address.
func (p Parcel) Delivered() bool { return p.Place == p.Address }
