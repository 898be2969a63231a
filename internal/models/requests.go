package models

import "mime/multipart"

// LeadRequest is the body of POST /api/lead.
type LeadRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Name     *string `json:"name"`
	Language string  `json:"language" default:"es"`
	Source   string  `json:"source" default:"landing"`
}

// DreamRequest is the body of POST /api/dream/analyze.
// Text must be present but may be empty.
type DreamRequest struct {
	Text      *string `json:"text" validate:"required"`
	Language  string  `json:"language" default:"es"`
	UserEmail *string `json:"user_email" validate:"omitempty,email"`
}

// AudioDreamRequest carries the multipart form of POST /api/dream/audio.
type AudioDreamRequest struct {
	Language  string                `json:"language" default:"es"`
	UserEmail *string               `json:"user_email" validate:"omitempty,email"`
	File      *multipart.FileHeader `json:"-" form:"file" validate:"required"`
}

type QuizRequest struct {
	UserEmail string            `json:"user_email" validate:"required,email"`
	Answers   map[string]string `json:"answers" validate:"required"`
	Score     *int              `json:"score"`
}

type ReportRequest struct {
	UserEmail string  `json:"user_email" validate:"required,email"`
	DreamID   *string `json:"dream_id"`
	Language  string  `json:"language" default:"es"`
}

type HistoryRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type CreatedResponse struct {
	OK bool   `json:"ok"`
	ID string `json:"id"`
}

type DreamResponse struct {
	OK       bool      `json:"ok"`
	ID       string    `json:"id"`
	Analysis *Analysis `json:"analysis"`
}

type ReportResponse struct {
	OK     bool   `json:"ok"`
	ID     string `json:"id"`
	Queued bool   `json:"queued"`
}

type HistoryResponse struct {
	OK    bool    `json:"ok"`
	Items []Dream `json:"items"`
}
