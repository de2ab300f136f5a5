package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultHour   = 10
	DefaultMinute = 30
	DateLayout    = "2006-01-02"
)

// Agent is a field agent who owns client records.
type Agent struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	FullName     string    `db:"full_name" json:"full_name"`
	PasswordHash string    `db:"password_hash" json:"-"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// ClientRecord is a saved client with its scheduled callback. Amounts and
// rates are kept exactly as dictated or typed.
type ClientRecord struct {
	ID                 uuid.UUID  `db:"id" json:"id"`
	AgentID            uuid.UUID  `db:"agent_id" json:"agent_id"`
	Name               string     `db:"name" json:"name"`
	Phone              string     `db:"phone" json:"phone"`
	PersonalLoanAmount string     `db:"personal_loan_amount" json:"personal_loan_amount"`
	PersonalLoanRate   string     `db:"personal_loan_rate" json:"personal_loan_rate"`
	Debt               string     `db:"debt" json:"debt"`
	DebtPurchaseAmount string     `db:"debt_purchase_amount" json:"debt_purchase_amount"`
	DebtPurchaseRate   string     `db:"debt_purchase_rate" json:"debt_purchase_rate"`
	Comment            string     `db:"comment" json:"comment"`
	ScheduledAt        time.Time  `db:"scheduled_at" json:"scheduled_at"`
	AlarmActive        bool       `db:"alarm_active" json:"alarm_active"`
	NotifiedAt         *time.Time `db:"notified_at" json:"notified_at,omitempty"`
	CreatedAt          time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at" json:"updated_at"`
}

// ClientDraft is the in-progress client form. Dictation results are merged
// into it field by field before it is saved.
type ClientDraft struct {
	DictationText      string `json:"dictation_text"`
	Name               string `json:"name"`
	Phone              string `json:"phone"`
	PersonalLoanAmount string `json:"personal_loan_amount"`
	PersonalLoanRate   string `json:"personal_loan_rate"`
	Debt               string `json:"debt"`
	DebtPurchaseAmount string `json:"debt_purchase_amount"`
	DebtPurchaseRate   string `json:"debt_purchase_rate"`
	Comment            string `json:"comment"`
	ScheduledDate      string `json:"scheduled_date"`
	Hour               int    `json:"hour"`
	Minute             int    `json:"minute"`
	IsAM               bool   `json:"is_am"`
}

// NewClientDraft returns an empty draft scheduled at 10:30 AM on date.
func NewClientDraft(date time.Time) ClientDraft {
	return ClientDraft{
		ScheduledDate: date.Format(DateLayout),
		Hour:          DefaultHour,
		Minute:        DefaultMinute,
		IsAM:          true,
	}
}

// Holiday is a non-working date registered on top of the fixed national
// holidays.
type Holiday struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Date        time.Time `db:"holiday_date" json:"date"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
