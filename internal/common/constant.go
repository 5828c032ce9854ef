package common

// DateLayout is the calendar-day format used for payment and completion dates.
const DateLayout = "2006-01-02"

// MonthLayout is the year-month format used by monthly reports.
const MonthLayout = "2006-01"
