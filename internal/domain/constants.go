package domain

import "time"

// Default configuration values
const (
	DefaultSessionTTL = 24 * time.Hour
	DefaultAdminName  = "Admin"
	DefaultAdminEmail = "admin@local"
)

// DefaultSlotTimes девять ежедневных слотов консультаций
var DefaultSlotTimes = []string{
	"10:00", "11:00", "12:00", "13:00", "14:00",
	"15:00", "16:00", "17:00", "18:00",
}

// Business validation constants
const (
	MaxNameLength           = 100
	MaxPhoneLength          = 20
	MaxTimeSlotLength       = 20
	MaxTypeLength           = 50
	MaxDeckLength           = 50
	MaxRequestContentLength = 2000
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
