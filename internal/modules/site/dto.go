package site

// ContactRequest is the public contact form. Presence is the only validation;
// field contents are stored verbatim.
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Contact string `json:"contact" binding:"required"`
	Purpose string `json:"purpose" binding:"required"`
	Type    string `json:"type" binding:"required"`
	Budget  string `json:"budget" binding:"required"`
	Date    string `json:"date"`
	Message string `json:"message" binding:"required"`
}
