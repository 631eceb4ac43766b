package mailer

import (
	"log"
	"sync"
)

// ConsoleService menulis email ke log, tidak mengirim apa pun. Dipakai di
// development dan sebagai fallback saat SENDGRID_API_KEY kosong. Pesan yang
// "terkirim" juga disimpan supaya bisa diperiksa dari test.
type ConsoleService struct {
	mu   sync.Mutex
	sent []Message
}

var _ Service = (*ConsoleService)(nil)

// NewConsoleService membuat transport console.
func NewConsoleService() *ConsoleService {
	return &ConsoleService{}
}

// SendMessages meng-log setiap pesan dan mencatatnya ke buffer internal.
func (s *ConsoleService) SendMessages(messages ...Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, msg := range messages {
		log.Printf("[MAILER][console] to=%s <%s> subject=%q", msg.ToName, msg.ToEmail, msg.Subject)
		s.sent = append(s.sent, msg)
	}
}

// Sent mengembalikan salinan daftar pesan yang sudah dikirim.
func (s *ConsoleService) Sent() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.sent))
	copy(out, s.sent)
	return out
}
