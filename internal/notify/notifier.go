// Package notify defines the notification interface and implementations
// for delivering engine decisions to users.
package notify

import (
	"context"
	"fmt"

	domain "github.com/donaldgifford/medwatch/pkg/types"
)

// Notification is one record a user is told about, with the search it
// matched and why.
type Notification struct {
	SearchID    string
	SearchTitle string
	Reason      domain.Reason
	Record      domain.CanonicalRecord
}

// Notifier defines the interface for sending decision notifications.
type Notifier interface {
	SendDecision(ctx context.Context, n *Notification) error
	SendBatch(ctx context.Context, ns []Notification, searchTitle string) error
}

// NewNotification builds the notification for a Notify or Deactivate
// decision taken against s.
func NewNotification(s domain.Search, d *domain.Decision) Notification {
	return Notification{
		SearchID:    d.SearchID,
		SearchTitle: SearchTitle(s),
		Reason:      d.Reason,
		Record:      d.Record,
	}
}

// SearchTitle is the human label of a search.
func SearchTitle(s domain.Search) string {
	switch v := s.(type) {
	case *domain.Watch:
		if v.City != "" {
			return fmt.Sprintf("Appointments in %s (region %d)", v.City, v.RegionID)
		}
		return fmt.Sprintf("Appointments in region %d", v.RegionID)
	case *domain.MedicineSearch:
		if v.Title != "" {
			return v.Title
		}
		return fmt.Sprintf("%s near %s", v.FullName(), v.Location)
	default:
		return s.SearchID()
	}
}
