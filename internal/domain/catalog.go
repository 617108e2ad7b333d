package domain

// Country is a read-only catalog entity. Currency is the ISO 4217 code used
// on quotes for the country's cities.
type Country struct {
	ID       string
	Name     string
	Currency string
}

// City is a read-only catalog entity. Timezone is an IANA name (for example
// "Asia/Kolkata") used to localize quote request times.
type City struct {
	ID        string
	CountryID string
	Name      string
	Timezone  string
}

// ServiceType is a vehicle category offered on the platform (for example
// sedan, SUV, auto).
type ServiceType struct {
	ID              string
	Name            string
	DefaultMaxSpace int
}
