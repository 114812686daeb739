// Package domain contains the core data types of the editor.
package domain

import "time"

// Document is one markdown document managed by the editor.
type Document struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Filename  string    `json:"filename"`
	Body      string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Summary is the index entry for a document, without its body.
type Summary struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Filename  string    `json:"filename"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Summary returns the index entry for the document.
func (d Document) Summary() Summary {
	return Summary{
		ID:        d.ID,
		Title:     d.Title,
		Filename:  d.Filename,
		UpdatedAt: d.UpdatedAt,
	}
}
