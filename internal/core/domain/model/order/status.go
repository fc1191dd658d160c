package order

import (
	"fmt"
	"strings"

	"deliveryapi/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	PENDING ──> CONFIRMED ──> IN_PREPARATION ──> OUT_FOR_DELIVERY ──> DELIVERED
//	   │            │               │                    │
//	   └────────────┴───────────────┴────────────────────┴──────────> CANCELED
//
// DELIVERED and CANCELED are terminal: no transition leaves either state.
// A transition to the current status is rejected as well; repeating a
// transition is an error, not a no-op.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned when an order is created.
	Pending

	// Confirmed indicates the restaurant accepted the order.
	Confirmed

	// InPreparation indicates the order is being prepared.
	InPreparation

	// OutForDelivery indicates the order left the restaurant.
	OutForDelivery

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Canceled indicates the order was canceled. Terminal.
	Canceled
)

// getStatusStrings returns a map of Status values to their wire names.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "UNKNOWN",
		Pending:        "PENDING",
		Confirmed:      "CONFIRMED",
		InPreparation:  "IN_PREPARATION",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
		Canceled:       "CANCELED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "PENDING",
		Confirmed:      "CONFIRMED",
		InPreparation:  "IN_PREPARATION",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
		Canceled:       "CANCELED",
	}
}

// allStatuses lists the valid statuses in workflow order, used for stable
// error messages and lookups.
func allStatuses() []Status {
	return []Status{Pending, Confirmed, InPreparation, OutForDelivery, Delivered, Canceled}
}

// StatusFromString parses a status from its wire name (e.g. "PENDING").
// Returns an error naming the valid statuses when the name is unknown.
func StatusFromString(s string) (Status, error) {
	for _, status := range allStatuses() {
		if getValidStatusStrings()[status] == s {
			return status, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not one of %s", s, strings.Join(statusNames(allStatuses()), ", ")),
	)
}

// Validate checks if the Status value is one of the six defined statuses.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, or "UNKNOWN" for invalid values.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no transition may leave this status.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Canceled
}

// AllowedTransitions returns the statuses this status may legally transition
// to. The returned slice is empty for terminal states.
//
// This table is the single source of legal transitions:
//
//	PENDING          -> CONFIRMED, CANCELED
//	CONFIRMED        -> IN_PREPARATION, CANCELED
//	IN_PREPARATION   -> OUT_FOR_DELIVERY, CANCELED
//	OUT_FOR_DELIVERY -> DELIVERED, CANCELED
//	DELIVERED        -> (none)
//	CANCELED         -> (none)
func (s Status) AllowedTransitions() []Status {
	switch s {
	case Pending:
		return []Status{Confirmed, Canceled}
	case Confirmed:
		return []Status{InPreparation, Canceled}
	case InPreparation:
		return []Status{OutForDelivery, Canceled}
	case OutForDelivery:
		return []Status{Delivered, Canceled}
	default:
		return nil
	}
}

// CanTransitionTo checks whether moving to target is legal from this status
// without performing the transition.
//
// Rejections, in order of precedence:
//   - target is not a valid status
//   - target equals the current status (repeating a transition is an error)
//   - the current status is terminal (DELIVERED or CANCELED)
//   - the edge is absent from the transition table; the returned error names
//     the allowed targets for the current status
func (s Status) CanTransitionTo(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	if s == target {
		return errs.NewBusinessRuleViolatedError(
			fmt.Sprintf("order already has status %s", s))
	}

	if s == Delivered {
		return errs.NewBusinessRuleViolatedError("delivered orders cannot be changed")
	}

	if s == Canceled {
		return errs.NewBusinessRuleViolatedError("canceled orders cannot be changed")
	}

	allowed := s.AllowedTransitions()
	for _, a := range allowed {
		if a == target {
			return nil
		}
	}

	return errs.NewBusinessRuleViolatedError(fmt.Sprintf(
		"status %s can only transition to %s",
		s, strings.Join(statusNames(allowed), " or "),
	))
}

// TransitionTo returns the target status if the transition is legal.
// Returns (Unknown, error) otherwise; the current status is never mutated
// because Status is a value.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := s.CanTransitionTo(target); err != nil {
		return Unknown, err
	}
	return target, nil
}

func statusNames(statuses []Status) []string {
	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, s.String())
	}
	return names
}
