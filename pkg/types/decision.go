package domain

// Action is the directive a Decision carries to the collaborators.
type Action string

// Action constants.
const (
	ActionSkip       Action = "skip"
	ActionNotify     Action = "notify"
	ActionAutoBook   Action = "auto_book"
	ActionDeactivate Action = "deactivate"
)

// ActionPriority is the total order in which decisions are emitted and must
// be executed. Lower index runs first.
var ActionPriority = []Action{ActionAutoBook, ActionNotify, ActionDeactivate, ActionSkip}

// Rank returns the action's position in ActionPriority.
func (a Action) Rank() int {
	for i, p := range ActionPriority {
		if p == a {
			return i
		}
	}
	return len(ActionPriority)
}

// Reason is a machine-readable code explaining a match result or decision.
type Reason string

// Match reasons.
const (
	ReasonMatched             Reason = "matched"
	ReasonKindMismatch        Reason = "kind_mismatch"
	ReasonRegionMismatch      Reason = "region_mismatch"
	ReasonSpecialtyMismatch   Reason = "specialty_mismatch"
	ReasonClinicMismatch      Reason = "clinic_mismatch"
	ReasonDoctorMismatch      Reason = "doctor_mismatch"
	ReasonDateOutOfRange      Reason = "date_out_of_range"
	ReasonTimeOutOfRange      Reason = "time_out_of_range"
	ReasonExaminationMismatch Reason = "examination_mismatch"
	ReasonDosageMismatch      Reason = "dosage_mismatch"
	ReasonPackageMismatch     Reason = "package_mismatch"
	ReasonOutsideRadius       Reason = "outside_radius"
	ReasonPriceExceeded       Reason = "price_exceeded"
	ReasonPriceUnknown        Reason = "price_unknown"
	ReasonAvailabilityBelow   Reason = "availability_below"
	ReasonExcluded            Reason = "excluded"
)

// Decision reasons.
const (
	ReasonInactive              Reason = "inactive"
	ReasonDuplicateSeen         Reason = "duplicate_seen"
	ReasonDuplicateInBatch      Reason = "duplicate_in_batch"
	ReasonNotify                Reason = "notify"
	ReasonAutoBook              Reason = "auto_book"
	ReasonAutoBookFallback      Reason = "auto_book_fallback"
	ReasonNotificationsDisabled Reason = "notifications_disabled"
	ReasonDeactivateThreshold   Reason = "deactivate_threshold"
)

// Decision is the engine's sole output: one directive for a collaborator.
// Decisions are values and are never modified after emission.
type Decision struct {
	Action      Action          `json:"action"`
	SearchID    string          `json:"search_id"`
	Record      CanonicalRecord `json:"record"`
	Reason      Reason          `json:"reason"`
	Fingerprint Fingerprint     `json:"fingerprint"`
}

// Executes reports whether the decision requires a side effect.
func (d Decision) Executes() bool { return d.Action != ActionSkip }
