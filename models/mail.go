package models

// MailPayload is the queued unit of outbound mail. Rendering happens at
// enqueue time so the worker only delivers.
type MailPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}
