package domain

import "time"

type InquiryStatus string

const (
	InquiryNew        InquiryStatus = "new"
	InquiryProcessing InquiryStatus = "processing"
	InquiryCompleted  InquiryStatus = "completed"
	InquiryHold       InquiryStatus = "hold"
)

// ValidInquiryStatus reports whether s is one of the known workflow states.
func ValidInquiryStatus(s InquiryStatus) bool {
	switch s {
	case InquiryNew, InquiryProcessing, InquiryCompleted, InquiryHold:
		return true
	}
	return false
}

// Inquiry is a contact-form submission. Created only through the public form;
// only its status (and soft-delete flag) is mutable afterwards.
type Inquiry struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Contact   string        `json:"contact"`
	Purpose   string        `json:"purpose"`
	Type      string        `json:"type"`
	Budget    string        `json:"budget"`
	Date      string        `json:"date"`
	Message   string        `json:"message"`
	Status    InquiryStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	IsDeleted bool          `json:"isDeleted,omitempty"`
}

// InquiryDraft carries the caller-supplied fields of a new Inquiry. The
// repository assigns identity, timestamp and initial status.
type InquiryDraft struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Purpose string `json:"purpose"`
	Type    string `json:"type"`
	Budget  string `json:"budget"`
	Date    string `json:"date"`
	Message string `json:"message"`
}
