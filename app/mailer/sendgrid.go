package mailer

import (
	"log"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridService mengirim email reminder lewat SendGrid.
type SendGridService struct {
	client *sendgrid.Client
	from   *sgmail.Email
}

var _ Service = (*SendGridService)(nil)

// NewSendGridService membuat transport SendGrid dari API key + alamat pengirim.
func NewSendGridService(apiKey, fromName, fromEmail string) *SendGridService {
	return &SendGridService{
		client: sendgrid.NewSendClient(apiKey),
		from:   sgmail.NewEmail(fromName, fromEmail),
	}
}

// SendMessages mengirim tiap pesan di goroutine sendiri. Kegagalan hanya
// di-log: reminder adalah efek samping best-effort, bukan bagian dari
// response request.
func (s *SendGridService) SendMessages(messages ...Message) {
	for _, msg := range messages {
		msg := msg
		go func() {
			m := sgmail.NewSingleEmail(s.from, msg.Subject, sgmail.NewEmail(msg.ToName, msg.ToEmail), msg.Body, "")
			resp, err := s.client.Send(m)
			if err != nil {
				log.Printf("[MAILER][sendgrid] gagal kirim ke %s: %v", msg.ToEmail, err)
				return
			}
			if resp.StatusCode >= 300 {
				log.Printf("[MAILER][sendgrid] status %d untuk %s", resp.StatusCode, msg.ToEmail)
			}
		}()
	}
}
