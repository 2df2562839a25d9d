// Package alerts wraps the backend's fraud-alert search API: a thin HTTP
// client speaking the paginated search contract and a view model holding
// filter/pagination state for display collaborators.
package alerts

import "fraudwatch/internal/types"

// Filter narrows an alert search. All fields are optional; the zero value
// matches everything.
type Filter struct {
	RecentAlerts    *bool             `json:"recentAlerts,omitempty"`
	Severity        types.Severity    `json:"severity,omitempty"`
	StartFraudScore *float64          `json:"startFraudScore,omitempty"`
	EndFraudScore   *float64          `json:"endFraudScore,omitempty"`
	AlertTypeList   []types.AlertType `json:"alertTypeList,omitempty"`
	CreatedAtFrom   string            `json:"createdAtFrom,omitempty"`
	CreatedAtTo     string            `json:"createdAtTo,omitempty"`
	TransactionID   string            `json:"transactionId,omitempty"`
	CardID          string            `json:"cardId,omitempty"`
	DeviceID        string            `json:"deviceId,omitempty"`
}

// Alert is one backend-generated fraud finding, distinct from a raw
// transaction.
type Alert struct {
	ID               string            `json:"id,omitempty"`
	AlertTypeList    []types.AlertType `json:"alertTypeList"`
	Severity         types.Severity    `json:"severity"`
	FraudProbability float64           `json:"fraudProbability"`
	Description      string            `json:"description"`
	Status           types.AlertStatus `json:"status"`
	CreatedAt        string            `json:"createdAt"`
	FraudScore       float64           `json:"fraudScore"`

	// Optional enrichment fields
	TransactionID string   `json:"transactionId,omitempty"`
	CardID        string   `json:"cardId,omitempty"`
	DeviceID      string   `json:"deviceId,omitempty"`
	Amount        *float64 `json:"amount,omitempty"`
	Location      string   `json:"location,omitempty"`
	CardNumber    string   `json:"cardNumber,omitempty"`
	CardHolder    string   `json:"cardHolder,omitempty"`
	CardBrand     string   `json:"cardBrand,omitempty"`
	IPAddress     string   `json:"ipAddress,omitempty"`
	Device        string   `json:"device,omitempty"`
}

// Page is the backend's pagination envelope. Totals and boundary flags are
// trusted verbatim; the view model never recomputes them.
type Page struct {
	Content       []Alert `json:"content"`
	TotalElements int64   `json:"totalElements"`
	TotalPages    int     `json:"totalPages"`
	Size          int     `json:"size"`
	Number        int     `json:"number"`
	First         bool    `json:"first"`
	Last          bool    `json:"last"`
	Empty         bool    `json:"empty"`
}

// Stats is the backend's aggregate alert summary.
type Stats struct {
	Total      int64            `json:"total"`
	Pending    int64            `json:"pending"`
	Confirmed  int64            `json:"confirmed"`
	BySeverity map[string]int64 `json:"bySeverity"`
}
