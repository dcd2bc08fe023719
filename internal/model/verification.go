package model

import "time"

// Verification is an immutable snapshot recording that a member confirmed
// their stored details were correct at a point in time.
type Verification struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	MemberID     uint      `json:"member_id" gorm:"not null;index"`
	MemberNumber string    `json:"member_number" gorm:"size:50;not null"`
	Name         string    `json:"name" gorm:"size:100;not null"`
	Zone         string    `json:"zone" gorm:"size:100"`
	IDNumber     string    `json:"id_number" gorm:"size:50"`
	VerifiedAt   time.Time `json:"verified_at" gorm:"autoCreateTime;index"`
}
