package domain

import "math"

// Sign identifies one of the twelve zodiac signs, indexed 0 (Aries) to 11 (Pisces).
type Sign int

const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

// signNames holds the Latin display labels, indexed by Sign.
var signNames = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// signNamesArabic holds the Arabic display labels, indexed by Sign.
var signNamesArabic = [12]string{
	"الحمل", "الثور", "الجوزاء", "السرطان", "الأسد", "العذراء",
	"الميزان", "العقرب", "القوس", "الجدي", "الدلو", "الحوت",
}

// Name returns the Latin label for the sign, or "unknown" for out-of-range values.
func (s Sign) Name() string {
	if s < 0 || s > 11 {
		return "unknown"
	}
	return signNames[s]
}

// ArabicName returns the Arabic label for the sign, or "unknown" for out-of-range values.
func (s Sign) ArabicName() string {
	if s < 0 || s > 11 {
		return "unknown"
	}
	return signNamesArabic[s]
}

// NormalizeDegrees reduces an arbitrary angle to the canonical [0, 360) range.
// The result is never negative.
func NormalizeDegrees(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// SignFromLongitude maps an ecliptic longitude to its zodiac sign and the
// degree within that sign.
//
// The longitude must already be normalized to [0, 360); callers holding raw
// angles normalize with NormalizeDegrees first.
func SignFromLongitude(lon float64) (Sign, float64) {
	sign := Sign(int(lon / 30))
	return sign, lon - float64(sign)*30
}
