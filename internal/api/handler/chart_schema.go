package handler

// --- Request / Response types ---

type computeChartRequest struct {
	Name      string `json:"name"       validate:"required"`
	BirthDate string `json:"birth_date" validate:"required,datetime=2006-01-02"`
	BirthTime string `json:"birth_time" validate:"required,datetime=15:04"`
	Location  string `json:"location"   validate:"required"`
}

type locationResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
}

type timeResponse struct {
	JulianDay float64 `json:"julian_day"`
	UTC       string  `json:"utc"`
}

// bodyPositionResponse carries one body's placement. When the ephemeris failed
// for this body, Error holds the failure tag and the numeric fields are
// omitted.
type bodyPositionResponse struct {
	Body        string   `json:"body"`
	BodyArabic  string   `json:"body_ar"`
	Longitude   *float64 `json:"longitude,omitempty"`
	Sign        string   `json:"zodiac_sign,omitempty"`
	SignArabic  string   `json:"zodiac_sign_ar,omitempty"`
	SignDegree  *float64 `json:"sign_degree,omitempty"`
	Error       string   `json:"error,omitempty"`
}

type houseCuspResponse struct {
	House      int     `json:"house"`
	Longitude  float64 `json:"longitude"`
	Sign       string  `json:"zodiac_sign"`
	SignArabic string  `json:"zodiac_sign_ar"`
	SignDegree float64 `json:"sign_degree"`
}

type ascendantResponse struct {
	Longitude  float64 `json:"longitude"`
	Sign       string  `json:"zodiac_sign"`
	SignArabic string  `json:"zodiac_sign_ar"`
	SignDegree float64 `json:"sign_degree"`
}

type houseAssignmentResponse struct {
	Body      string  `json:"body"`
	House     int     `json:"house"`
	Longitude float64 `json:"longitude"`
	Sign      string  `json:"zodiac_sign"`
}

type aspectResponse struct {
	First      string  `json:"first"`
	Second     string  `json:"second"`
	Separation float64 `json:"separation"`
	Kind       string  `json:"kind"`
}

type computeChartResponse struct {
	Name        string                    `json:"name"`
	BirthDate   string                    `json:"birth_date"`
	BirthTime   string                    `json:"birth_time"`
	Location    string                    `json:"location"`
	Place       locationResponse          `json:"resolved_location"`
	Time        timeResponse              `json:"time"`
	Positions   []bodyPositionResponse    `json:"positions"`
	Cusps       []houseCuspResponse       `json:"houses"`
	Ascendant   ascendantResponse         `json:"ascendant"`
	Assignments []houseAssignmentResponse `json:"house_assignments"`
	Aspects     []aspectResponse          `json:"aspects"`
}
