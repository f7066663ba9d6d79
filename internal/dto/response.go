package dto

import "time"

type BasicResponse struct {
	Ok        bool      `json:"ok"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func NewBasicResponse(ok bool, details string) BasicResponse {
	return BasicResponse{
		Ok:        ok,
		Error:     details,
		Timestamp: time.Now(),
	}
}
