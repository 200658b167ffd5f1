package domain

import "time"

// SubjectType identifies who a token was issued to.
type SubjectType string

const (
	SubjectTypeOrganizer SubjectType = "ORGANIZER"
)

// Token describes an issued access token.
type Token struct {
	Value     string
	Subject   SubjectType
	ExpiresAt time.Time
}
