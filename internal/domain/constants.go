package domain

// Salon opening hours in decimal hours, local business time.
// The schedule is fixed: 09:00-13:00 every open day, 15:00-19:00 every
// open day except Saturday.
const (
	MorningOpenHour    = 9.0
	MorningCloseHour   = 13.0
	AfternoonOpenHour  = 15.0
	AfternoonCloseHour = 19.0
)

// Business validation constants.
const (
	MaxMenuNameLength = 100
	MaxNotesLength    = 500
)
