package types

// WireEvent is one backend-scored transaction record as received over the
// push channel. It is produced once per transaction and never mutated
// after arrival.
type WireEvent struct {
	Card                   WireCard         `json:"card"`
	MerchantCategory       string           `json:"merchantCategory"`
	Amount                 float64          `json:"amount"`
	IsReimbursement        bool             `json:"isReimbursement"`
	TransactionDateAndTime string           `json:"transactionDateAndTime"`
	Latitude               string           `json:"latitude"`
	Longitude              string           `json:"longitude"`
	Localization           WireLocalization `json:"localizationDto"`
	Validations            WireValidations  `json:"validations"`
	Severity               Severity         `json:"severity"`
	Device                 WireDevice       `json:"device"`
	IPAddress              string           `json:"ipAddress"`
	TransactionDecision    Decision         `json:"transactionDecision"`
	IsFraud                bool             `json:"isFraud"`
	CreatedAt              string           `json:"createdAt"`
}

// WireCard is the card sub-record of a WireEvent. CardNumber arrives
// unmasked and must never leave the translation layer as-is.
type WireCard struct {
	CardID         string  `json:"cardId"`
	CardNumber     string  `json:"cardNumber"`
	CardHolderName string  `json:"cardHolderName"`
	CardBrand      string  `json:"cardBrand"`
	ExpirationDate string  `json:"expirationDate"`
	CreditLimit    float64 `json:"creditLimit"`
	Status         string  `json:"status"`
}

// WireDevice is the device sub-record of a WireEvent
type WireDevice struct {
	ID            string     `json:"id"`
	FingerprintID string     `json:"fingerPrintId"`
	DeviceType    DeviceType `json:"deviceType"`
	OS            string     `json:"os"`
	Browser       string     `json:"browser"`
}

// WireLocalization is the localization sub-record of a WireEvent
type WireLocalization struct {
	CountryCode string  `json:"countryCode"`
	State       *string `json:"state"`
	City        string  `json:"city"`
}

// WireValidations carries the backend's risk scoring output
type WireValidations struct {
	Score           float64  `json:"score"`
	TriggeredAlerts []string `json:"triggeredAlerts"`
}
