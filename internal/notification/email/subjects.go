package email

const (
	subjectBookingStatusFmt = "Your booking is %s"
	subjectBookingReminder  = "Reminder: your booking is tomorrow"
	subjectPasswordReset    = "Reset your password"
)
