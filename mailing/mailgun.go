package mailing

import (
	"context"
	"log"
	"time"

	"github.com/mailgun/mailgun-go/v4"
	"github.com/muratfirtina/teklif-sistemi-sub002/config"
)

// Mailgun wraps the mailgun client used to deliver quotation emails.
type Mailgun struct {
	Client *mailgun.MailgunImpl
	From   string
}

func (m *Mailgun) Init(c *config.Config) {
	m.Client = mailgun.NewMailgun(c.MgDomain, c.MailgunApiKey)
	m.From = c.MgEmailFrom
}

// SendQuotationEmail delivers a rendered HTML body and returns the
// provider message id.
func (m *Mailgun) SendQuotationEmail(to, subject, html string) (string, error) {
	message := m.Client.NewMessage(m.From, subject, "", to)
	message.SetHtml(html)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	resp, id, err := m.Client.Send(ctx, message)
	if err != nil {
		log.Printf("mailgun send failed: %v", err)
		return "", err
	}
	log.Printf("mailgun queued message id=%s resp=%s", id, resp)
	return id, nil
}
