package model

import (
	"fmt"
	"slices"
	"strings"
	"suitespot/shared/failure"
	"suitespot/shared/model"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID          = "id"
	FieldNumber      = "number"
	FieldType        = "type"
	FieldStatus      = "status"
	FieldPrice       = "price"
	FieldCapacity    = "capacity"
	FieldFloor       = "floor"
	FieldAmenities   = "amenities"
	FieldDescription = "description"
	FieldActive      = "active"
)

const (
	StatusChangeTableName  = "room_status_changes"
	StatusChangeEntityName = "room_status_change"

	FieldStatusChangeRoomID    = "room_id"
	FieldStatusChangeChangedAt = "changed_at"
)

type Status string

const (
	StatusAvailable   Status = "available"
	StatusOccupied    Status = "occupied"
	StatusMaintenance Status = "maintenance"
	StatusReserved    Status = "reserved"
)

// transitions lists the allowed targets for each status. Staying in the same status is always allowed.
var transitions = map[Status][]Status{
	StatusAvailable:   {StatusOccupied, StatusMaintenance, StatusReserved},
	StatusOccupied:    {StatusAvailable, StatusMaintenance},
	StatusMaintenance: {StatusAvailable},
	StatusReserved:    {StatusAvailable, StatusOccupied},
}

func Statuses() []Status {
	return []Status{StatusAvailable, StatusOccupied, StatusMaintenance, StatusReserved}
}

func ParseStatus(value string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(value)))
	if !status.Valid() {
		return "", failure.BadRequestFromString(fmt.Sprintf("unknown room status %q", value)) // nolint:wrapcheck
	}

	return status, nil
}

func (s Status) Valid() bool {
	_, ok := transitions[s]

	return ok
}

func (s Status) CanTransitionTo(target Status) bool {
	if !s.Valid() || !target.Valid() {
		return false
	}

	return s == target || slices.Contains(transitions[s], target)
}

// TransitionTo returns target when the move from s is in the transition table.
func (s Status) TransitionTo(target Status) (Status, error) {
	if !target.Valid() {
		return s, failure.BadRequestFromString(fmt.Sprintf("unknown room status %q", target)) // nolint:wrapcheck
	}

	if !s.CanTransitionTo(target) {
		return s, failure.InvalidTransition(fmt.Sprintf("cannot change room status from %s to %s", s, target)) // nolint:wrapcheck
	}

	return target, nil
}

type Type string

const (
	TypeSingle       Type = "single"
	TypeDouble       Type = "double"
	TypeSuite        Type = "suite"
	TypeDeluxe       Type = "deluxe"
	TypePresidential Type = "presidential"
)

func Types() []Type {
	return []Type{TypeSingle, TypeDouble, TypeSuite, TypeDeluxe, TypePresidential}
}

func ParseType(value string) (Type, error) {
	roomType := Type(strings.ToLower(strings.TrimSpace(value)))
	if !slices.Contains(Types(), roomType) {
		return "", failure.BadRequestFromString(fmt.Sprintf("unknown room type %q", value)) // nolint:wrapcheck
	}

	return roomType, nil
}

type Room struct {
	ID          string          `db:"id"`
	Number      string          `db:"number"`
	Type        Type            `db:"type"`
	Status      Status          `db:"status"`
	Price       decimal.Decimal `db:"price"`
	Capacity    int             `db:"capacity"`
	Floor       int             `db:"floor"`
	Amenities   pq.StringArray  `db:"amenities"`
	Description string          `db:"description"`
	Active      bool            `db:"active"`
	model.Metadata
}

// IsBookable reports whether the room can be offered for a new stay.
func (r Room) IsBookable() bool {
	return r.Active && r.Status == StatusAvailable
}

// StatusChange is the audit record written for every room status change.
type StatusChange struct {
	ID         string    `db:"id"`
	RoomID     string    `db:"room_id"`
	FromStatus Status    `db:"from_status"`
	ToStatus   Status    `db:"to_status"`
	Forced     bool      `db:"forced"`
	Reason     string    `db:"reason"`
	ChangedAt  time.Time `db:"changed_at"`
	ChangedBy  string    `db:"changed_by"`
}
