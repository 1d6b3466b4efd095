package models

import "time"

// System identifies which side of a reconciliation a transaction came from.
type System string

const (
	// SystemA is the first system being reconciled (e.g. the finance ledger).
	SystemA System = "system_a"
	// SystemB is the second system being reconciled (e.g. the payment provider).
	SystemB System = "system_b"
)

// IsValid reports whether the system tag is one of the two known values.
func (s System) IsValid() bool {
	return s == SystemA || s == SystemB
}

// Session represents the 'reconciliation_sessions' table: a named context
// grouping transaction records from exactly two systems for comparison.
type Session struct {
	ID          uint      `gorm:"column:id;primaryKey" json:"id"`
	SessionName string    `gorm:"column:session_name;uniqueIndex;size:255;not null" json:"session_name"`
	SystemAName string    `gorm:"column:system_a_name;size:255;not null" json:"system_a_name"`
	SystemBName string    `gorm:"column:system_b_name;size:255;not null" json:"system_b_name"`
	Description string    `gorm:"column:description;type:text" json:"description,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`

	Transactions []Transaction `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// TableName overrides the table name used by GORM.
func (Session) TableName() string {
	return "reconciliation_sessions"
}

// Transaction represents the 'transactions' table: a single record reported
// by one of the two systems. TransactionID is the identifier assigned by the
// source system and is not required to be unique within a session.
type Transaction struct {
	ID            uint      `gorm:"column:id;primaryKey" json:"id"`
	TransactionID string    `gorm:"column:transaction_id;index;size:255;not null" json:"transaction_id"`
	SessionID     uint      `gorm:"column:session_id;index;not null" json:"session_id"`
	System        System    `gorm:"column:system;size:16;not null" json:"system"`
	Amount        float64   `gorm:"column:amount;not null" json:"amount"`
	Metadata      string    `gorm:"column:metadata;type:text" json:"metadata,omitempty"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName overrides the table name used by GORM.
func (Transaction) TableName() string {
	return "transactions"
}
