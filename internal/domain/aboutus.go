package domain

// AboutUs is the editable "about us" page content.
type AboutUs struct {
	ID       int64
	Title    string
	Body     string
	ImageURL string
}
