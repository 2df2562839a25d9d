package types

// DetailRecord is the list-oriented, PII-masked projection of a WireEvent.
// The card number always reveals exactly the last 4 digits of the original
// and nothing else.
type DetailRecord struct {
	TransactionID          string            `json:"transactionId"`
	Card                   CardSummary       `json:"card"`
	MerchantCategory       string            `json:"merchantCategory"`
	Amount                 float64           `json:"amount"`
	TransactionDateAndTime string            `json:"transactionDateAndTime"`
	Latitude               string            `json:"latitude"`
	Longitude              string            `json:"longitude"`
	Device                 DeviceSummary     `json:"device"`
	IPAddress              string            `json:"ipAddress"`
	TransactionStatus      TransactionStatus `json:"transactionStatus"`
	IsFraud                bool              `json:"isFraud"`
}

// CardSummary is the display-safe card projection
type CardSummary struct {
	CardNumber     string `json:"cardNumber"`
	CardholderName string `json:"cardholderName"`
}

// DeviceSummary is the display device projection; DeviceName combines
// operating system and browser as "{os} - {browser}".
type DeviceSummary struct {
	DeviceType DeviceType `json:"deviceType"`
	DeviceName string     `json:"deviceName"`
}

// MarkerRecord is the map/spatial projection of a WireEvent. Lat and Lng
// are parsed from the wire's text coordinates and may be NaN when the
// source value is unparsable; renderers must guard before plotting.
// ID is a stable per-event identifier, also used as the highlight key.
type MarkerRecord struct {
	ID               string   `json:"id"`
	Lat              float64  `json:"lat"`
	Lng              float64  `json:"lng"`
	CardBrand        string   `json:"cardBrand"`
	IPAddress        string   `json:"ipAddress"`
	Country          string   `json:"country"`
	City             string   `json:"city"`
	Amount           float64  `json:"amount"`
	MerchantCategory string   `json:"merchantCategory"`
	Severity         Severity `json:"severity"`
	IsFraud          bool     `json:"isFraud"`
	Decision         Decision `json:"decision"`
	Timestamp        string   `json:"timestamp"`
}
