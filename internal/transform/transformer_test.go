package transform

import (
	"math"
	"testing"

	"fraudwatch/internal/types"
)

func sampleEvent() *types.WireEvent {
	return &types.WireEvent{
		Card: types.WireCard{
			CardID:         "card_123",
			CardNumber:     "4111111111111111",
			CardHolderName: "Maria Silva",
			CardBrand:      "Visa",
		},
		MerchantCategory:       "ELECTRONICS",
		Amount:                 249.9,
		TransactionDateAndTime: "2025-06-01T12:00:00Z",
		Latitude:               "10.5",
		Longitude:              "-20.25",
		Localization: types.WireLocalization{
			CountryCode: "BR",
			City:        "Sao Paulo",
		},
		Severity: types.SeverityMedium,
		Device: types.WireDevice{
			DeviceType: types.DeviceMobile,
			OS:         "Android",
			Browser:    "Chrome",
		},
		IPAddress:           "192.168.1.10",
		TransactionDecision: types.DecisionReview,
		IsFraud:             false,
		CreatedAt:           "2025-06-01T12:00:01Z",
	}
}

func TestToDetail(t *testing.T) {
	detail := ToDetail(sampleEvent())

	if detail.Card.CardNumber != "**** **** **** 1111" {
		t.Errorf("CardNumber = %q, want %q", detail.Card.CardNumber, "**** **** **** 1111")
	}
	if detail.TransactionStatus != types.StatusPending {
		t.Errorf("TransactionStatus = %v, want %v", detail.TransactionStatus, types.StatusPending)
	}
	if detail.Device.DeviceName != "Android - Chrome" {
		t.Errorf("DeviceName = %q, want %q", detail.Device.DeviceName, "Android - Chrome")
	}
	if detail.TransactionID != "card_123" {
		t.Errorf("TransactionID = %q, want %q", detail.TransactionID, "card_123")
	}
	if detail.Latitude != "10.5" || detail.Longitude != "-20.25" {
		t.Errorf("coordinates = (%q, %q), want raw wire text", detail.Latitude, detail.Longitude)
	}
}

func TestToMarker(t *testing.T) {
	marker := ToMarker(sampleEvent())

	if marker.Lat != 10.5 {
		t.Errorf("Lat = %v, want 10.5", marker.Lat)
	}
	if marker.Lng != -20.25 {
		t.Errorf("Lng = %v, want -20.25", marker.Lng)
	}
	if marker.CardBrand != "Visa" {
		t.Errorf("CardBrand = %q, want Visa", marker.CardBrand)
	}
	if marker.Country != "BR" || marker.City != "Sao Paulo" {
		t.Errorf("location = (%q, %q), want (BR, Sao Paulo)", marker.Country, marker.City)
	}
	if marker.Severity != types.SeverityMedium {
		t.Errorf("Severity = %v, want MEDIUM", marker.Severity)
	}
	if marker.Decision != types.DecisionReview {
		t.Errorf("Decision = %v, want REVIEW", marker.Decision)
	}
	if marker.Timestamp != "2025-06-01T12:00:01Z" {
		t.Errorf("Timestamp = %q, want createdAt", marker.Timestamp)
	}
}

func TestToMarker_UnparsableCoordinates(t *testing.T) {
	e := sampleEvent()
	e.Latitude = "not-a-number"
	e.Longitude = ""

	marker := ToMarker(e)

	if !math.IsNaN(marker.Lat) {
		t.Errorf("Lat = %v, want NaN", marker.Lat)
	}
	if !math.IsNaN(marker.Lng) {
		t.Errorf("Lng = %v, want NaN", marker.Lng)
	}
}

func TestMaskCardNumber(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "standard 16 digit number",
			raw:  "4111111111111111",
			want: "**** **** **** 1111",
		},
		{
			name: "amex length",
			raw:  "378282246310005",
			want: "**** **** **** 0005",
		},
		{
			name: "exactly 4 digits",
			raw:  "1234",
			want: "**** **** **** 1234",
		},
		{
			name: "shorter than 4 digits",
			raw:  "12",
			want: "**** **** **** 12",
		},
		{
			name: "empty",
			raw:  "",
			want: "**** **** **** ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaskCardNumber(tt.raw); got != tt.want {
				t.Errorf("MaskCardNumber(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestStatusFromDecision(t *testing.T) {
	tests := []struct {
		name     string
		decision types.Decision
		want     types.TransactionStatus
	}{
		{name: "approved maps to approved", decision: types.DecisionApproved, want: types.StatusApproved},
		{name: "review maps to pending", decision: types.DecisionReview, want: types.StatusPending},
		{name: "declined maps to declined", decision: types.DecisionDeclined, want: types.StatusDeclined},
		{name: "unknown maps to declined", decision: types.Decision("CHARGEBACK"), want: types.StatusDeclined},
		{name: "empty maps to declined", decision: types.Decision(""), want: types.StatusDeclined},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusFromDecision(tt.decision); got != tt.want {
				t.Errorf("StatusFromDecision(%v) = %v, want %v", tt.decision, got, tt.want)
			}
		})
	}
}

func TestMaskRevealsOnlyLastFour(t *testing.T) {
	raw := "5500123456789012"
	masked := MaskCardNumber(raw)

	if masked[len(masked)-4:] != raw[len(raw)-4:] {
		t.Errorf("masked number %q does not end with original last 4 %q", masked, raw[len(raw)-4:])
	}
	// No digit of the original other than the last 4 may survive masking.
	for _, r := range masked[:len(masked)-4] {
		if r >= '0' && r <= '9' {
			t.Errorf("masked prefix leaks digit %q in %q", r, masked)
		}
	}
}
