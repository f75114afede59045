package model

import (
	"fmt"
	"slices"
	"strings"
	"suitespot/shared/failure"
	"suitespot/shared/model"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "taxi_requests"
	EntityName = "taxi"

	FieldID            = "id"
	FieldBookingID     = "booking_id"
	FieldStatus        = "status"
	FieldDriverName    = "driver_name"
	FieldVehicleNumber = "vehicle_number"
	FieldPhoneNumber   = "phone_number"
	FieldEstimatedCost = "estimated_cost"
	FieldEstimatedETA  = "estimated_arrival_at"
	FieldCompletedAt   = "completed_at"
	FieldRequestedAt   = "requested_at"
)

// DefaultPickup is used when a request names no pickup location.
const DefaultPickup = "Hotel"

// ArrivalLead is how long after confirmation the driver is expected at the pickup.
const ArrivalLead = 15 * time.Minute

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusOnTheWay  Status = "on_the_way"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusOnTheWay, StatusCancelled},
	StatusOnTheWay:  {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

func Statuses() []Status {
	return []Status{StatusPending, StatusConfirmed, StatusOnTheWay, StatusCompleted, StatusCancelled}
}

func ParseStatus(value string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(value)))
	if !status.Valid() {
		return "", failure.BadRequestFromString(fmt.Sprintf("unknown taxi request status %q", value)) // nolint:wrapcheck
	}

	return status, nil
}

func (s Status) Valid() bool {
	_, ok := transitions[s]

	return ok
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

func (s Status) TransitionTo(target Status) (Status, error) {
	if !target.Valid() {
		return s, failure.BadRequestFromString(fmt.Sprintf("unknown taxi request status %q", target)) // nolint:wrapcheck
	}

	if !slices.Contains(transitions[s], target) {
		return s, failure.InvalidTransition(fmt.Sprintf("taxi request cannot move from %s to %s", s, target)) // nolint:wrapcheck
	}

	return target, nil
}

type TaxiRequest struct {
	ID             string              `db:"id"`
	BookingID      string              `db:"booking_id"`
	PickupLocation string              `db:"pickup_location"`
	Destination    string              `db:"destination"`
	Status         Status              `db:"status"`
	RequestedAt    time.Time           `db:"requested_at"`
	EstimatedETA   *time.Time          `db:"estimated_arrival_at"`
	DriverName     string              `db:"driver_name"`
	VehicleNumber  string              `db:"vehicle_number"`
	PhoneNumber    string              `db:"phone_number"`
	EstimatedCost  decimal.NullDecimal `db:"estimated_cost"`
	Notes          string              `db:"notes"`
	CompletedAt    *time.Time          `db:"completed_at"`
	model.Metadata
}

// Driver is the dispatch detail attached on confirmation.
type Driver struct {
	Name          string
	VehicleNumber string
	PhoneNumber   string
	EstimatedCost decimal.Decimal
}

// Confirm assigns a driver to a pending request and expects it at the pickup ArrivalLead after at.
func (t TaxiRequest) Confirm(driver Driver, at time.Time) (TaxiRequest, error) {
	status, err := t.Status.TransitionTo(StatusConfirmed)
	if err != nil {
		return t, err
	}

	eta := at.Add(ArrivalLead)

	t.Status = status
	t.DriverName = driver.Name
	t.VehicleNumber = driver.VehicleNumber
	t.PhoneNumber = driver.PhoneNumber
	t.EstimatedCost = decimal.NewNullDecimal(driver.EstimatedCost.Round(2))
	t.EstimatedETA = &eta

	return t, nil
}

// MoveTo changes status along the transition table. Completion stamps CompletedAt.
func (t TaxiRequest) MoveTo(target Status, at time.Time) (TaxiRequest, error) {
	status, err := t.Status.TransitionTo(target)
	if err != nil {
		return t, err
	}

	t.Status = status
	if status == StatusCompleted {
		t.CompletedAt = &at
	}

	return t, nil
}

// Fields is the update set for the dispatch columns of t.
func (t TaxiRequest) Fields() map[string]any {
	return map[string]any{
		FieldStatus:        t.Status,
		FieldDriverName:    t.DriverName,
		FieldVehicleNumber: t.VehicleNumber,
		FieldPhoneNumber:   t.PhoneNumber,
		FieldEstimatedCost: t.EstimatedCost,
		FieldEstimatedETA:  t.EstimatedETA,
		FieldCompletedAt:   t.CompletedAt,
	}
}
