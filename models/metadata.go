package models

// Button is one entry of a reply's inline keyboard.
type Button struct {
	Text string
	URL  string
}

// Metadata supplies the buttons attached to a reply. Loaders return an
// implementation describing the source post; ordering is significant.
type Metadata interface {
	Buttons() []Button
}
