package valueobjects

import "fmt"

// Status is the operational status of a service ticket. Values are the
// business labels shown on the board, so they stay in Spanish.
type Status string

const (
	StatusScheduled  Status = "Programado"
	StatusInProgress Status = "En proceso"
	StatusOnHold     Status = "En espera"
	StatusInReview   Status = "Revisión"
	StatusCompleted  Status = "Completado"
	StatusCancelled  Status = "Cancelado"
)

var validStatuses = map[Status]bool{
	StatusScheduled:  true,
	StatusInProgress: true,
	StatusOnHold:     true,
	StatusInReview:   true,
	StatusCompleted:  true,
	StatusCancelled:  true,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) IsCompleted() bool {
	return s == StatusCompleted
}

func (s Status) IsCancelled() bool {
	return s == StatusCancelled
}

// IsManual reports whether the status is only ever set by an operator.
// Manual statuses are never produced nor overridden by task-based derivation.
func (s Status) IsManual() bool {
	return s == StatusOnHold || s == StatusInReview || s == StatusCancelled
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return status, nil
}
