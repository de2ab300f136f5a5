package domain

// ScheduleAlert flags a callback slot the agent should double check.
type ScheduleAlert string

const (
	AlertSunday       ScheduleAlert = "cae_domingo"
	AlertHoliday      ScheduleAlert = "cae_feriado"
	AlertOutsideHours ScheduleAlert = "fuera_horario"
)

var scheduleAlertMessages = map[ScheduleAlert]string{
	AlertSunday:       "Cae domingo",
	AlertHoliday:      "Cae feriado",
	AlertOutsideHours: "Fuera del horario (09:00-20:00)",
}

// Message returns the Spanish text shown to the agent.
func (a ScheduleAlert) Message() string {
	return scheduleAlertMessages[a]
}

// ExportFormat is the file format of a client export.
type ExportFormat string

const (
	ExportCSV  ExportFormat = "csv"
	ExportXLSX ExportFormat = "xlsx"
)

// ContentType returns the MIME type served for the format.
func (f ExportFormat) ContentType() string {
	switch f {
	case ExportXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "text/csv; charset=utf-8"
	}
}
