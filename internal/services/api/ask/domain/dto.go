// Package domain holds DTOs for the ask endpoint and its audit trail
package domain

import (
	"time"

	"github.com/google/uuid"
)

// AskInput is the POST /ask body
type AskInput struct {
	Query string `json:"query" validate:"required,notblank,max=2000" example:"how do I get a driving license, I am 25"`
	Lang  string `json:"lang,omitempty" validate:"omitempty,langtag" example:"hi"`
}

// AnswerView is the answer as the api returns it
type AnswerView struct {
	Answer   string   `json:"answer"`
	Outcome  string   `json:"outcome" example:"procedure"`
	IntentID string   `json:"intent_id" example:"driving_license"`
	Lang     string   `json:"lang" example:"hi"`
	Steps    []string `json:"steps,omitempty"`
	Age      *int     `json:"age,omitempty" example:"25"`
}

// Resolution is one audited answer; raw user text is never stored
type Resolution struct {
	ID       uuid.UUID
	At       time.Time
	Lang     string
	IntentID string
	Outcome  string
	Latency  time.Duration
	Failed   bool
}
