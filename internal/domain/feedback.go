package domain

import "time"

// AnonymousUserID attributes feedback left without a session
const AnonymousUserID = "anonymous"

// Feedback is a free-form message left by a user. Feedback is the only
// collection in the store that is not namespaced per owner.
type Feedback struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Email     string    `json:"email,omitempty"`
	Message   string    `json:"message"`
	Rating    int       `json:"rating,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// FeedbackRepository appends to the global feedback collection
type FeedbackRepository interface {
	Append(feedback *Feedback) error
	List() ([]*Feedback, error)
}
