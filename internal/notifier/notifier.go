package notifier

// Event carries everything needed to deliver the generated credential to a
// freshly created account's owner.
type Event struct {
	Email    string `json:"email"`
	UniqueID string `json:"unique_id"`
	Username string `json:"username"`
	Balance  int64  `json:"balance"`
}

// Notifier delivers the credential notification for a created account.
// Implementations may deliver directly (SMTP) or enqueue for asynchronous
// delivery (RabbitMQ); callers treat a returned error as a downgraded
// response message, never as a failed creation.
type Notifier interface {
	AccountCreated(event Event) error
}
