package domain

// CelestialBody identifies one of the ten bodies included in a natal chart.
// The set is closed: it is fixed by the ephemeris domain, not configurable.
type CelestialBody int

const (
	Sun CelestialBody = iota
	Moon
	Mercury
	Venus
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	Pluto
)

// Bodies lists every chart body in canonical enumeration order. Chart output
// and aspect pairing both follow this order.
var Bodies = [10]CelestialBody{
	Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn, Uranus, Neptune, Pluto,
}

var bodyNames = [10]string{
	"Sun", "Moon", "Mercury", "Venus", "Mars",
	"Jupiter", "Saturn", "Uranus", "Neptune", "Pluto",
}

var bodyNamesArabic = [10]string{
	"الشمس", "القمر", "عطارد", "الزهرة", "المريخ",
	"المشتري", "زحل", "أورانوس", "نبتون", "بلوتو",
}

// Name returns the Latin display label for the body.
func (b CelestialBody) Name() string {
	if b < 0 || b > Pluto {
		return "unknown"
	}
	return bodyNames[b]
}

// ArabicName returns the Arabic display label for the body.
func (b CelestialBody) ArabicName() string {
	if b < 0 || b > Pluto {
		return "unknown"
	}
	return bodyNamesArabic[b]
}
