package content

import (
	"regexp"
	"time"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Message 為聯絡表單訊息，由訪客送出、管理員讀取。
type Message struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject,omitempty"`
	Body      string    `json:"body"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

func (m Message) Validate() error {
	var v validator
	v.require("name", m.Name)
	v.require("email", m.Email)
	v.require("body", m.Body)
	v.maxLen("body", m.Body, 5000)
	if m.Email != "" && !emailPattern.MatchString(m.Email) {
		v.add("email", "must be a valid email address")
	}
	return v.result()
}
