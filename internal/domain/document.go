package domain

// Document is a fetched HTTP response held fully in memory
type Document struct {
	URL         string
	StatusCode  int
	ContentType string
	Body        []byte
}

// Size returns the body length in bytes
func (d *Document) Size() int64 {
	return int64(len(d.Body))
}
