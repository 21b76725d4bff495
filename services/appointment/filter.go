package appointment

import "trimly/models"

// Filter selects appointments by exact status and/or date match. Both
// criteria are optional and independent; order is preserved.
type Filter struct {
	Status models.AppointmentStatus
	Date   string
}

// Apply returns the subsequence of appts matching f. Pure: the input slice
// is never mutated and no paging is applied.
func (f Filter) Apply(appts []models.Appointment) []models.Appointment {
	out := make([]models.Appointment, 0, len(appts))
	for _, a := range appts {
		if f.Status != "" && a.Status != f.Status {
			continue
		}
		if f.Date != "" && a.Date != f.Date {
			continue
		}
		out = append(out, a)
	}
	return out
}

// Stats tallies appointments into the dashboard's per-status counters.
func Stats(appts []models.Appointment) models.AppointmentStats {
	var st models.AppointmentStats
	for _, a := range appts {
		switch a.Status {
		case models.AppointmentPending:
			st.Pending++
		case models.AppointmentConfirmed:
			st.Confirmed++
		case models.AppointmentRejected:
			st.Rejected++
		}
	}
	return st
}
