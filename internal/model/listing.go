package model

// PreviousTenant is one entry of a listing's tenant history. Duration
// is free text as entered by the owner ("2 years", "6 months");
// Rating is an integer star rating in [1,5].
type PreviousTenant struct {
	Name     string `json:"name" yaml:"name"`
	Duration string `json:"duration" yaml:"duration"`
	Rating   int    `json:"rating" yaml:"rating"`
}

// PropertyListing is a published rental property record as stored
// under the `listings` key. Listings are immutable once published and
// the collection is kept newest-first.
//
// ID is assigned by the listing store at publish time (millisecond
// derived, strictly increasing) so insertion order is recoverable
// from ids alone. OwnerName is stamped from the authenticated
// publisher and overrides whatever the draft carried; it is a
// denormalized snapshot with no referential tie back to the account.
// Latitude and Longitude are optional and always set as a pair.
type PropertyListing struct {
	ID     string   `json:"id" yaml:"id"`
	Photos []string `json:"photos" yaml:"photos"`

	Address  string `json:"address" yaml:"address"`
	Road     string `json:"road" yaml:"road"`
	Area     string `json:"area" yaml:"area"`
	City     string `json:"city" yaml:"city"`
	District string `json:"district" yaml:"district"`
	State    string `json:"state" yaml:"state"`
	PinCode  string `json:"pinCode" yaml:"pinCode"`

	Latitude  *float64 `json:"latitude,omitempty" yaml:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty" yaml:"longitude,omitempty"`

	MonthlyRent float64 `json:"monthlyRent" yaml:"monthlyRent"`
	Duration    int     `json:"duration" yaml:"duration"`
	SuitableFor int     `json:"suitableFor" yaml:"suitableFor"`

	ContactNumber string `json:"contactNumber" yaml:"contactNumber"`
	Email         string `json:"email" yaml:"email"`
	OwnerName     string `json:"ownerName" yaml:"ownerName"`

	PreviousTenants []PreviousTenant `json:"previousTenants" yaml:"previousTenants"`
}
