package domain

import "errors"

// ErrorKind returns the stable machine-readable tag for a chart error, used
// in error payloads and metric labels. Unknown errors map to INTERNAL.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrInvalidDateTimeFormat):
		return "INVALID_DATETIME_FORMAT"
	case errors.Is(err, ErrDateOutOfRange):
		return "DATE_OUT_OF_RANGE"
	case errors.Is(err, ErrInvalidLocalTime):
		return "INVALID_LOCAL_TIME"
	case errors.Is(err, ErrLocationNotFound):
		return "LOCATION_NOT_FOUND"
	case errors.Is(err, ErrProviderUnavailable):
		return "PROVIDER_UNAVAILABLE"
	case errors.Is(err, ErrHouseCalculation):
		return "HOUSE_CALCULATION_ERROR"
	case errors.Is(err, ErrBodyCalculation):
		return "CALCULATION_ERROR"
	default:
		return "INTERNAL"
	}
}
