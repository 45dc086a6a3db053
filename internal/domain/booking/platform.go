package booking

// Platform identifies where a booking originated.
type Platform string

const (
	PlatformAirbnb  Platform = "AIRBNB"
	PlatformBooking Platform = "BOOKING"
	PlatformVrbo    Platform = "VRBO"
	PlatformDirect  Platform = "DIRECT"
	PlatformOther   Platform = "OTHER"
)

type platformMeta struct {
	DisplayName string
	DotColor    string
}

// platformTable is the single source of platform display metadata; views
// must look names and colours up here instead of switching per screen.
var platformTable = map[Platform]platformMeta{
	PlatformAirbnb:  {DisplayName: "Airbnb", DotColor: "#FF5A5F"},
	PlatformBooking: {DisplayName: "Booking.com", DotColor: "#003580"},
	PlatformVrbo:    {DisplayName: "Vrbo", DotColor: "#245ABC"},
	PlatformDirect:  {DisplayName: "Direct", DotColor: "#2E7D32"},
	PlatformOther:   {DisplayName: "Other", DotColor: "#757575"},
}

func (p Platform) Known() bool {
	_, ok := platformTable[p]
	return ok
}

func (p Platform) DisplayName() string {
	if meta, ok := platformTable[p]; ok {
		return meta.DisplayName
	}
	return platformTable[PlatformOther].DisplayName
}

func (p Platform) DotColor() string {
	if meta, ok := platformTable[p]; ok {
		return meta.DotColor
	}
	return platformTable[PlatformOther].DotColor
}

// ParsePlatform maps a wire value to a Platform, defaulting to Other.
func ParsePlatform(raw string) Platform {
	switch Platform(raw) {
	case PlatformAirbnb, PlatformBooking, PlatformVrbo, PlatformDirect, PlatformOther:
		return Platform(raw)
	}
	return PlatformOther
}
