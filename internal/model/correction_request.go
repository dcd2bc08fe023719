package model

import "time"

// CorrectionStatus represents the workflow state of a correction request.
type CorrectionStatus string

const (
	CorrectionStatusPending  CorrectionStatus = "pending"
	CorrectionStatusResolved CorrectionStatus = "resolved"
)

// CorrectionRequest is a public-submitted proposal to change a member's
// stored details. The status transition is one-way: pending to resolved.
type CorrectionRequest struct {
	ID              uint             `json:"id" gorm:"primaryKey"`
	MemberID        uint             `json:"member_id" gorm:"not null;index"`
	MemberNumber    string           `json:"member_number" gorm:"size:50;not null"`
	IDNumber        string           `json:"id_number" gorm:"size:50"`
	CurrentName     string           `json:"current_name" gorm:"size:100"`
	CurrentZone     string           `json:"current_zone" gorm:"size:100"`
	CorrectName     string           `json:"correct_name" gorm:"size:100"`
	CorrectZone     string           `json:"correct_zone" gorm:"size:100"`
	Email           string           `json:"email" gorm:"size:255"`
	Phone           string           `json:"phone" gorm:"size:50"`
	AdditionalNotes string           `json:"additional_notes" gorm:"size:1000"`
	Status          CorrectionStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	SubmittedAt     time.Time        `json:"submitted_at" gorm:"autoCreateTime"`
	ResolvedAt      *time.Time       `json:"resolved_at"`
	ResolvedBy      *uint            `json:"resolved_by"`

	// Relations
	Resolver *User `json:"-" gorm:"foreignKey:ResolvedBy"`
}
