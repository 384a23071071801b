package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/talentbase-api/internal/dedupe"
)

// Candidate is a stored candidate record. Name is the only required field;
// the rest is whatever the recruiter (or an upstream parsing pipeline)
// supplied.
type Candidate struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name" binding:"required"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	LastCompany  string    `json:"lastCompany,omitempty"`
	LastPosition string    `json:"lastPosition,omitempty"`
	SourceFile   string    `json:"sourceFile,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// DedupeRecord converts a candidate to the detector's lightweight view.
func (c Candidate) DedupeRecord() dedupe.Record {
	return dedupe.Record{
		ID:           c.ID.String(),
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		LastCompany:  c.LastCompany,
		LastPosition: c.LastPosition,
		SourceFile:   c.SourceFile,
		CreatedAt:    c.CreatedAt,
	}
}

// ExplainedPair is a classified pair with its rendered summary, as returned
// by the duplicate endpoints.
type ExplainedPair struct {
	dedupe.Pair
	Explanation string `json:"explanation"`
}

// DuplicateReport is the response of a full duplicate scan.
type DuplicateReport struct {
	Scanned   int             `json:"scanned"`
	Definite  []ExplainedPair `json:"definite"`
	Potential []ExplainedPair `json:"potential"`
	Homonyms  []ExplainedPair `json:"homonyms"`
}
