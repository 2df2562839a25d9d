package types

// Severity represents the backend-assigned risk tier of a transaction or alert
type Severity string

const (
	SeverityLow      Severity = "LOW"
	SeverityMedium   Severity = "MEDIUM"
	SeverityHigh     Severity = "HIGH"
	SeverityCritical Severity = "CRITICAL" // alerts only
)

// Decision represents the backend's outcome for a scored transaction
type Decision string

const (
	DecisionApproved Decision = "APPROVED"
	DecisionReview   Decision = "REVIEW"
	DecisionDeclined Decision = "DECLINED"
)

// TransactionStatus is the 3-valued display status collapsed from a Decision
type TransactionStatus string

const (
	StatusApproved TransactionStatus = "APPROVED"
	StatusPending  TransactionStatus = "PENDING"
	StatusDeclined TransactionStatus = "DECLINED"
)

// DeviceType represents the originating device category
type DeviceType string

const (
	DeviceMobile  DeviceType = "MOBILE"
	DeviceDesktop DeviceType = "DESKTOP"
	DeviceTablet  DeviceType = "TABLET"
)

// AlertStatus represents the review state of a fraud alert
type AlertStatus string

const (
	AlertStatusPending   AlertStatus = "PENDING"
	AlertStatusReviewed  AlertStatus = "REVIEWED"
	AlertStatusConfirmed AlertStatus = "CONFIRMED"
	AlertStatusDismissed AlertStatus = "DISMISSED"
)

// AlertType identifies which fraud rule produced an alert
type AlertType string

const (
	AlertHighAmount                    AlertType = "HIGH_AMOUNT"
	AlertLimitExceeded                 AlertType = "LIMIT_EXCEEDED"
	AlertVelocityAbuse                 AlertType = "VELOCITY_ABUSE"
	AlertBurstActivity                 AlertType = "BURST_ACTIVITY"
	AlertLocationAnomaly               AlertType = "LOCATION_ANOMALY"
	AlertImpossibleTravel              AlertType = "IMPOSSIBLE_TRAVEL"
	AlertHighRiskCountry               AlertType = "HIGH_RISK_COUNTRY"
	AlertNewDeviceDetected             AlertType = "NEW_DEVICE_DETECTED"
	AlertDeviceFingerprintChange       AlertType = "DEVICE_FINGERPRINT_CHANGE"
	AlertTorOrProxyDetected            AlertType = "TOR_OR_PROXY_DETECTED"
	AlertMultipleCardsSameDevice       AlertType = "MULTIPLE_CARDS_SAME_DEVICE"
	AlertTimeOfDayAnomaly              AlertType = "TIME_OF_DAY_ANOMALY"
	AlertCardTesting                   AlertType = "CARD_TESTING"
	AlertMicroTransactionPattern       AlertType = "MICRO_TRANSACTION_PATTERN"
	AlertDeclineThenApprovePattern     AlertType = "DECLINE_THEN_APPROVE_PATTERN"
	AlertMultipleFailedAttempts        AlertType = "MULTIPLE_FAILED_ATTEMPTS"
	AlertSuspiciousSuccessAfterFailure AlertType = "SUSPICIOUS_SUCCESS_AFTER_FAILURE"
	AlertAnomalyModelTriggered         AlertType = "ANOMALY_MODEL_TRIGGERED"
	AlertCreditLimitReached            AlertType = "CREDIT_LIMIT_REACHED"
	AlertExpirationDateApproaching     AlertType = "EXPIRATION_DATE_APPROACHING"
)

// IsValidSeverity checks if the given severity is a valid Severity
func IsValidSeverity(severity string) bool {
	switch Severity(severity) {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	default:
		return false
	}
}

// IsValidDecision checks if the given decision is a valid Decision
func IsValidDecision(decision string) bool {
	switch Decision(decision) {
	case DecisionApproved, DecisionReview, DecisionDeclined:
		return true
	default:
		return false
	}
}

// IsValidAlertStatus checks if the given status is a valid AlertStatus
func IsValidAlertStatus(status string) bool {
	switch AlertStatus(status) {
	case AlertStatusPending, AlertStatusReviewed, AlertStatusConfirmed, AlertStatusDismissed:
		return true
	default:
		return false
	}
}

// IsValidDeviceType checks if the given device type is a valid DeviceType
func IsValidDeviceType(deviceType string) bool {
	switch DeviceType(deviceType) {
	case DeviceMobile, DeviceDesktop, DeviceTablet:
		return true
	default:
		return false
	}
}
