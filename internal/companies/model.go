package companies

import "time"

// Company is a registered hiring company.
type Company struct {
	ID             string
	Name           string
	BusinessNumber string
	Industry       string
	Description    string
	Website        string
	CreatedAt      time.Time
}
