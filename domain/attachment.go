package domain

// Attachment is an immutable view of one message's media payload.
// It is built fresh per incoming message and discarded right after
// classification and aggregation.
type Attachment struct {
	HasMedia    bool
	HasDocument bool
	IsPhoto     bool
	// Filename is the declared filename attribute, empty when the
	// document carries none.
	Filename string
	// DeclaredMIME is the MIME type announced by the platform, empty
	// when absent.
	DeclaredMIME string
	Size         uint64
	Audio        bool
	Video        bool
}
