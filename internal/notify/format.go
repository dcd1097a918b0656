package notify

import (
	"fmt"
	"html"
	"strings"

	domain "github.com/donaldgifford/medwatch/pkg/types"
)

const timeLayout = "2006-01-02 15:04"

// FormatNotification renders a notification as Telegram HTML.
func FormatNotification(n *Notification) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<b>%s</b>\n", html.EscapeString(headline(n)))
	writeRecord(&b, &n.Record)
	return b.String()
}

func headline(n *Notification) string {
	switch n.Reason {
	case domain.ReasonAutoBook:
		return "Booked: " + n.SearchTitle
	case domain.ReasonAutoBookFallback:
		return "Also available: " + n.SearchTitle
	case domain.ReasonDeactivateThreshold:
		return "Search deactivated: " + n.SearchTitle
	default:
		return "New match: " + n.SearchTitle
	}
}

func writeRecord(b *strings.Builder, r *domain.CanonicalRecord) {
	switch r.Kind {
	case domain.KindAppointment:
		writeAppointment(b, r)
	case domain.KindPharmacy:
		writePharmacy(b, r)
	}
}

func writeAppointment(b *strings.Builder, r *domain.CanonicalRecord) {
	line(b, "When", r.DateTime.Format(timeLayout))
	line(b, "Clinic", nameOrID(r.ClinicName, r.ClinicID))
	line(b, "Doctor", nameOrID(r.DoctorName, r.DoctorID))
	if r.Examination {
		line(b, "Type", "examination")
	} else if r.VisitType != "" {
		line(b, "Type", r.VisitType)
	}
}

func writePharmacy(b *strings.Builder, r *domain.CanonicalRecord) {
	line(b, "Pharmacy", r.PharmacyName)
	line(b, "Address", strings.TrimSpace(r.PostalCode+" "+r.AddressKey))
	line(b, "Phone", r.PhoneE164)
	if p, ok := r.LowestPrice(); ok {
		line(b, "Price", p.StringFixed(2)+" zł")
	}
	if r.Availability != domain.AvailabilityUnknown {
		line(b, "Availability", r.Availability.String())
	}
}

func line(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "%s: %s\n", label, html.EscapeString(value))
}

func nameOrID(name string, id int64) string {
	switch {
	case name != "":
		return name
	case id > 0:
		return fmt.Sprintf("#%d", id)
	default:
		return ""
	}
}
