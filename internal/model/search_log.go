package model

import (
	"time"
	"unicode/utf8"
)

// MaxUserAgentLength is the stored user-agent cap; longer values are truncated.
const MaxUserAgentLength = 255

// SearchLog is an immutable audit record of a public search attempt,
// written whether or not the search matched a member.
type SearchLog struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	MemberID         *uint     `json:"member_id" gorm:"index"` // nil when no match
	MemberNumber     string    `json:"member_number" gorm:"size:50"`
	IDNumber         string    `json:"id_number" gorm:"size:50"`
	SearchSuccessful bool      `json:"search_successful" gorm:"index"`
	IPAddress        string    `json:"ip_address" gorm:"size:45"`
	UserAgent        string    `json:"user_agent" gorm:"size:255"`
	SearchedAt       time.Time `json:"searched_at" gorm:"autoCreateTime;index"`
}

// TruncateUserAgent trims a raw user-agent string to the stored cap,
// backing off to a rune boundary so the result stays valid UTF-8.
func TruncateUserAgent(ua string) string {
	if len(ua) <= MaxUserAgentLength {
		return ua
	}
	cut := MaxUserAgentLength
	for cut > 0 && !utf8.RuneStart(ua[cut]) {
		cut--
	}
	return ua[:cut]
}
