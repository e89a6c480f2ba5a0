package models

import "errors"

type UserRole string

const (
	UserRoleAdmin UserRole = "ADMIN"
	UserRoleHR    UserRole = "HR"
)

func (t *UserRole) UnmarshalText(b []byte) error {
	switch string(b) {
	case "ADMIN":
		*t = UserRoleAdmin
	case "HR":
		*t = UserRoleHR
	default:
		return errors.New("invalid user role")
	}
	return nil
}

type EmployeeStatus string

const (
	EmployeeStatusActive   EmployeeStatus = "ACTIVE"
	EmployeeStatusInactive EmployeeStatus = "INACTIVE"
)

func (t *EmployeeStatus) UnmarshalText(b []byte) error {
	switch string(b) {
	case "ACTIVE":
		*t = EmployeeStatusActive
	case "INACTIVE":
		*t = EmployeeStatusInactive
	default:
		return errors.New("invalid employee status")
	}
	return nil
}

type DocumentType string

const (
	DocumentTypeIqama     DocumentType = "IQAMA"
	DocumentTypeContract  DocumentType = "CONTRACT"
	DocumentTypeInsurance DocumentType = "INSURANCE"
	DocumentTypeLicense   DocumentType = "LICENSE"
)

func (t *DocumentType) UnmarshalText(b []byte) error {
	documentTypes := map[string]DocumentType{
		"IQAMA":     DocumentTypeIqama,
		"CONTRACT":  DocumentTypeContract,
		"INSURANCE": DocumentTypeInsurance,
		"LICENSE":   DocumentTypeLicense,
	}
	v, ok := documentTypes[string(b)]
	if !ok {
		return errors.New("invalid document type")
	}
	*t = v
	return nil
}

type DocumentStatus string

const (
	DocumentStatusValid        DocumentStatus = "VALID"
	DocumentStatusExpiringSoon DocumentStatus = "EXPIRING_SOON"
	DocumentStatusExpired      DocumentStatus = "EXPIRED"
	DocumentStatusMissing      DocumentStatus = "MISSING"
)

func (t *DocumentStatus) UnmarshalText(b []byte) error {
	documentStatuses := map[string]DocumentStatus{
		"VALID":         DocumentStatusValid,
		"EXPIRING_SOON": DocumentStatusExpiringSoon,
		"EXPIRED":       DocumentStatusExpired,
		"MISSING":       DocumentStatusMissing,
	}
	v, ok := documentStatuses[string(b)]
	if !ok {
		return errors.New("invalid document status")
	}
	*t = v
	return nil
}

type PayrollBatchStatus string

const (
	PayrollBatchStatusDraft     PayrollBatchStatus = "DRAFT"
	PayrollBatchStatusValidated PayrollBatchStatus = "VALIDATED"
	PayrollBatchStatusApproved  PayrollBatchStatus = "APPROVED"
	PayrollBatchStatusProcessed PayrollBatchStatus = "PROCESSED"
)

func (t *PayrollBatchStatus) UnmarshalText(b []byte) error {
	batchStatuses := map[string]PayrollBatchStatus{
		"DRAFT":     PayrollBatchStatusDraft,
		"VALIDATED": PayrollBatchStatusValidated,
		"APPROVED":  PayrollBatchStatusApproved,
		"PROCESSED": PayrollBatchStatusProcessed,
	}
	v, ok := batchStatuses[string(b)]
	if !ok {
		return errors.New("invalid payroll batch status")
	}
	*t = v
	return nil
}

type ValidationStatus string

const (
	ValidationStatusOk      ValidationStatus = "OK"
	ValidationStatusWarning ValidationStatus = "WARNING"
	ValidationStatusError   ValidationStatus = "ERROR"
)

func (t *ValidationStatus) UnmarshalText(b []byte) error {
	switch string(b) {
	case "OK":
		*t = ValidationStatusOk
	case "WARNING":
		*t = ValidationStatusWarning
	case "ERROR":
		*t = ValidationStatusError
	default:
		return errors.New("invalid validation status")
	}
	return nil
}

type BankStatus string

const (
	BankStatusActive  BankStatus = "ACTIVE"
	BankStatusInvalid BankStatus = "INVALID"
)

func (t *BankStatus) UnmarshalText(b []byte) error {
	switch string(b) {
	case "ACTIVE":
		*t = BankStatusActive
	case "INVALID":
		*t = BankStatusInvalid
	default:
		return errors.New("invalid bank status")
	}
	return nil
}

type AlertType string

const (
	AlertTypeIqamaExpiry     AlertType = "IQAMA_EXPIRY"
	AlertTypeMissingDocument AlertType = "MISSING_DOCUMENT"
	AlertTypePayrollError    AlertType = "PAYROLL_ERROR"
	AlertTypeDataQuality     AlertType = "DATA_QUALITY"
)

func (t *AlertType) UnmarshalText(b []byte) error {
	alertTypes := map[string]AlertType{
		"IQAMA_EXPIRY":     AlertTypeIqamaExpiry,
		"MISSING_DOCUMENT": AlertTypeMissingDocument,
		"PAYROLL_ERROR":    AlertTypePayrollError,
		"DATA_QUALITY":     AlertTypeDataQuality,
	}
	v, ok := alertTypes[string(b)]
	if !ok {
		return errors.New("invalid alert type")
	}
	*t = v
	return nil
}

type AlertSeverity string

const (
	AlertSeverityInfo     AlertSeverity = "INFO"
	AlertSeverityWarning  AlertSeverity = "WARNING"
	AlertSeverityCritical AlertSeverity = "CRITICAL"
)

func (t *AlertSeverity) UnmarshalText(b []byte) error {
	switch string(b) {
	case "INFO":
		*t = AlertSeverityInfo
	case "WARNING":
		*t = AlertSeverityWarning
	case "CRITICAL":
		*t = AlertSeverityCritical
	default:
		return errors.New("invalid alert severity")
	}
	return nil
}

type AlertStatus string

const (
	AlertStatusOpen     AlertStatus = "OPEN"
	AlertStatusResolved AlertStatus = "RESOLVED"
)

func (t *AlertStatus) UnmarshalText(b []byte) error {
	switch string(b) {
	case "OPEN":
		*t = AlertStatusOpen
	case "RESOLVED":
		*t = AlertStatusResolved
	default:
		return errors.New("invalid alert status")
	}
	return nil
}

type XpEventType string

const (
	XpEventTypeFixedAlert     XpEventType = "FIXED_ALERT"
	XpEventTypeUploadedBatch  XpEventType = "UPLOADED_BATCH"
	XpEventTypeUpdatedRecord  XpEventType = "UPDATED_RECORD"
	XpEventTypeClosedDocument XpEventType = "CLOSED_DOCUMENT"
)

func (t *XpEventType) UnmarshalText(b []byte) error {
	eventTypes := map[string]XpEventType{
		"FIXED_ALERT":     XpEventTypeFixedAlert,
		"UPLOADED_BATCH":  XpEventTypeUploadedBatch,
		"UPDATED_RECORD":  XpEventTypeUpdatedRecord,
		"CLOSED_DOCUMENT": XpEventTypeClosedDocument,
	}
	v, ok := eventTypes[string(b)]
	if !ok {
		return errors.New("invalid xp event type")
	}
	*t = v
	return nil
}
