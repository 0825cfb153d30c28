package domain

// Default configuration values
const (
	// DefaultExtraGuestFee flat surcharge per guest beyond the first,
	// applied once per stay. Overridable via config.
	DefaultExtraGuestFee = 20.0

	DefaultCacheTTLSeconds = 300
)

// Business validation constants
const (
	MinAdults          = 1
	MaxGuestsPerGroup  = 100
	MaxStayNights      = 365
	DefaultVenuesLimit = 20
	MaxVenuesLimit     = 100
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
