package core

// Upload is a file attached to a form submission.
type Upload struct {
	Field       string
	Filename    string
	ContentType string
	Data        []byte
}

func (u *Upload) Empty() bool { return u == nil || len(u.Data) == 0 }
