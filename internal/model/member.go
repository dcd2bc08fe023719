package model

import "time"

// MemberStatus represents the lifecycle status of a member.
type MemberStatus string

const (
	MemberStatusActive    MemberStatus = "active"
	MemberStatusInactive  MemberStatus = "inactive"
	MemberStatusPending   MemberStatus = "pending"
	MemberStatusSuspended MemberStatus = "suspended"
)

// ValidMemberStatus reports whether s is one of the recognized statuses.
func ValidMemberStatus(s MemberStatus) bool {
	switch s {
	case MemberStatusActive, MemberStatusInactive, MemberStatusPending, MemberStatusSuspended:
		return true
	}
	return false
}

// Member represents a registered member of the cooperative.
type Member struct {
	ID           uint         `json:"id" gorm:"primaryKey"`
	Name         string       `json:"name" gorm:"size:100;not null"`
	MemberNumber string       `json:"member_number" gorm:"uniqueIndex;size:50;not null;index:idx_member_search,priority:1"`
	IDNumber     string       `json:"id_number" gorm:"size:50;not null;index;index:idx_member_search,priority:2"`
	Zone         string       `json:"zone" gorm:"size:100;not null"`
	Status       MemberStatus `json:"status" gorm:"type:varchar(20);not null;default:'active';index"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`

	// Relations (cascade-deleted with the member)
	Verifications      []Verification      `json:"-" gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`
	CorrectionRequests []CorrectionRequest `json:"-" gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`
	SearchLogs         []SearchLog         `json:"-" gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`
}
