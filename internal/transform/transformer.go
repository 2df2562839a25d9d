// Package transform maps inbound wire records into the purpose-shaped read
// models consumed by display collaborators. Translation is pure and
// best-effort: malformed optional fields degrade the individual field, they
// never fail the record.
package transform

import (
	"fmt"
	"math"
	"strconv"

	"fraudwatch/internal/types"
)

const maskPrefix = "**** **** **** "

// ToDetail builds the list-display projection of a wire event. The card
// number is masked down to its last 4 digits and the backend decision is
// collapsed to the 3-valued display status.
func ToDetail(e *types.WireEvent) types.DetailRecord {
	return types.DetailRecord{
		TransactionID: e.Card.CardID,
		Card: types.CardSummary{
			CardNumber:     MaskCardNumber(e.Card.CardNumber),
			CardholderName: e.Card.CardHolderName,
		},
		MerchantCategory:       e.MerchantCategory,
		Amount:                 e.Amount,
		TransactionDateAndTime: e.TransactionDateAndTime,
		Latitude:               e.Latitude,
		Longitude:              e.Longitude,
		Device: types.DeviceSummary{
			DeviceType: e.Device.DeviceType,
			DeviceName: fmt.Sprintf("%s - %s", e.Device.OS, e.Device.Browser),
		},
		IPAddress:         e.IPAddress,
		TransactionStatus: StatusFromDecision(e.TransactionDecision),
		IsFraud:           e.IsFraud,
	}
}

// ToMarker builds the spatial projection of a wire event. The marker ID is
// assigned by the feed store at arrival time, not here.
func ToMarker(e *types.WireEvent) types.MarkerRecord {
	return types.MarkerRecord{
		Lat:              ParseCoordinate(e.Latitude),
		Lng:              ParseCoordinate(e.Longitude),
		CardBrand:        e.Card.CardBrand,
		IPAddress:        e.IPAddress,
		Country:          e.Localization.CountryCode,
		City:             e.Localization.City,
		Amount:           e.Amount,
		MerchantCategory: e.MerchantCategory,
		Severity:         e.Severity,
		IsFraud:          e.IsFraud,
		Decision:         e.TransactionDecision,
		Timestamp:        e.CreatedAt,
	}
}

// MaskCardNumber returns the display-safe form of a raw card number,
// revealing only its last 4 characters. Shorter inputs are passed through
// behind the mask prefix rather than rejected.
func MaskCardNumber(raw string) string {
	last4 := raw
	if len(raw) > 4 {
		last4 = raw[len(raw)-4:]
	}
	return maskPrefix + last4
}

// StatusFromDecision collapses a backend decision into the display status.
// Unrecognized decisions are treated as declined.
func StatusFromDecision(d types.Decision) types.TransactionStatus {
	switch d {
	case types.DecisionApproved:
		return types.StatusApproved
	case types.DecisionReview:
		return types.StatusPending
	default:
		return types.StatusDeclined
	}
}

// ParseCoordinate parses a textual coordinate, yielding NaN when the value
// is unparsable so renderers can skip the point.
func ParseCoordinate(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
