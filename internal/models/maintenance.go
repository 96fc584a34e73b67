package models

import (
	"errors"
	"time"
)

// MaintenanceMode это единственный флаг режима обслуживания.
// Немедленный и запланированный режимы взаимоисключающие по построению.
type MaintenanceMode string

const (
	MaintenanceOff       MaintenanceMode = "off"
	MaintenanceImmediate MaintenanceMode = "immediate"
	MaintenanceScheduled MaintenanceMode = "scheduled"
)

// MaintenanceState is the effective state of the gate at a given instant.
type MaintenanceState string

const (
	StateNormal           MaintenanceState = "normal"
	StateScheduledPending MaintenanceState = "scheduled_pending"
	StateActive           MaintenanceState = "active"
)

// DefaultMaintenanceMessage is shown when an administrator leaves the message empty.
const DefaultMaintenanceMessage = "The store is under maintenance. Please try again later."

var (
	// ErrInvalidWindow indicates a scheduled window whose start is not before its end
	ErrInvalidWindow = errors.New("maintenance window start must be before end")

	// ErrUnknownMode indicates a mode value outside the known set
	ErrUnknownMode = errors.New("unknown maintenance mode")
)

// Maintenance хранит настройки режима обслуживания
type Maintenance struct {
	UpdatedAt time.Time       `json:"updated_at"`
	Start     *time.Time      `json:"start,omitempty"` // только для scheduled
	End       *time.Time      `json:"end,omitempty"`   // только для scheduled
	Mode      MaintenanceMode `json:"mode"`
	Message   string          `json:"message,omitempty"`
}

// Validate checks the settings are a well-formed variant.
func (m Maintenance) Validate() error {
	switch m.Mode {
	case MaintenanceOff, MaintenanceImmediate:
		return nil
	case MaintenanceScheduled:
		if m.Start == nil || m.End == nil || !m.Start.Before(*m.End) {
			return ErrInvalidWindow
		}
		return nil
	default:
		return ErrUnknownMode
	}
}

// StateAt evaluates the effective state at now.
// A scheduled window is active on [Start, End).
func (m Maintenance) StateAt(now time.Time) MaintenanceState {
	switch m.Mode {
	case MaintenanceImmediate:
		return StateActive
	case MaintenanceScheduled:
		if m.Start == nil || m.End == nil {
			return StateNormal
		}
		if now.Before(*m.Start) {
			return StateScheduledPending
		}
		if now.Before(*m.End) {
			return StateActive
		}
		return StateNormal
	default:
		return StateNormal
	}
}

// DisplayMessage returns the configured message or the default one.
func (m Maintenance) DisplayMessage() string {
	if m.Message != "" {
		return m.Message
	}
	return DefaultMaintenanceMessage
}

// ImmediateMaintenance builds settings for immediate mode; any schedule is dropped.
func ImmediateMaintenance(message string, now time.Time) Maintenance {
	return Maintenance{Mode: MaintenanceImmediate, Message: message, UpdatedAt: now}
}

// ScheduledMaintenance builds settings for a window; immediate mode is dropped.
func ScheduledMaintenance(start, end time.Time, message string, now time.Time) (Maintenance, error) {
	m := Maintenance{Mode: MaintenanceScheduled, Start: &start, End: &end, Message: message, UpdatedAt: now}
	if err := m.Validate(); err != nil {
		return Maintenance{}, err
	}
	return m, nil
}

// NoMaintenance builds settings with maintenance switched off.
func NoMaintenance(now time.Time) Maintenance {
	return Maintenance{Mode: MaintenanceOff, UpdatedAt: now}
}
