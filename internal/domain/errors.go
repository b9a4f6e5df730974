package domain

import "errors"

// Sentinel errors for the repository layer.
var (
	ErrNotFound = errors.New("domain: not found")
	ErrConflict = errors.New("domain: conflict")
)

// Error is a business-rule violation carried up to the HTTP layer as a
// code/status/message triple. Matched with errors.As.
type Error struct {
	Code    string
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Code + ": " + e.Message }

var (
	ErrWorkingHourInvalidDay   = &Error{Code: "WORKING_HOUR_INVALID_DAY", Status: 400, Message: "day of week must be an integer between 0 and 6"}
	ErrWorkingHourInvalidRange = &Error{Code: "WORKING_HOUR_INVALID_RANGE", Status: 400, Message: "end time must be after start time"}
	ErrWorkingHourConflict     = &Error{Code: "WORKING_HOUR_CONFLICT", Status: 409, Message: "working hours already registered for this day"}
	ErrBlockInvalidRange       = &Error{Code: "BLOCK_INVALID_RANGE", Status: 400, Message: "block end must be after block start"}
	ErrCustomerNotFound        = &Error{Code: "CUSTOMER_NOT_FOUND", Status: 404, Message: "customer not found"}
	ErrServiceNotFound         = &Error{Code: "SERVICE_NOT_FOUND", Status: 404, Message: "service not found"}
	ErrAppointmentNotFound     = &Error{Code: "APPOINTMENT_NOT_FOUND", Status: 404, Message: "appointment not found"}
	ErrAppointmentOverlap      = &Error{Code: "APPOINTMENT_OVERLAP", Status: 409, Message: "appointment overlaps an existing appointment"}
)
