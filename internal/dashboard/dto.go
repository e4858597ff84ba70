package dashboard

// StatsResponse carries the global dashboard counts. The today counts are
// restricted to the server's current date; the totals are all-time.
type StatsResponse struct {
	TotalEmployees         int64 `json:"total_employees"`
	TotalAttendanceRecords int64 `json:"total_attendance_records"`
	PresentToday           int64 `json:"present_today"`
	AbsentToday            int64 `json:"absent_today"`
}
