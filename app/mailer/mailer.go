// Package mailer menyediakan transport email pluggable untuk fitur reminder
// deadline: console (default, hanya log) dan SendGrid (dipakai jika API key
// dikonfigurasi).
package mailer

// Message adalah 1 email reminder yang siap dikirim.
type Message struct {
	ToName  string `json:"toName"`
	ToEmail string `json:"toEmail"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Service adalah kontrak transport email. Pengiriman best-effort: error cukup
// di-log oleh implementasi, pemanggil tidak menunggu.
type Service interface {
	SendMessages(messages ...Message)
}
