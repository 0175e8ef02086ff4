package mail

import (
	"context"
	"log/slog"

	gomail "github.com/wneessen/go-mail"

	"github.com/commercekit/orderflow/internal/order/domain"
)

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Sender delivers confirmation emails over SMTP. Delivery outcome only
// acknowledges the handoff; SMTP has no per-message tracking URL, so URL
// stays empty.
type Sender struct {
	log    *slog.Logger
	client *gomail.Client
	from   string
}

func NewSender(log *slog.Logger, cfg Config) (*Sender, error) {
	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}
	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, err
	}
	return &Sender{log: log, client: client, from: cfg.From}, nil
}

func (s *Sender) Send(ctx context.Context, to, subject, htmlBody string) (domain.DeliveryReference, error) {
	msg := gomail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return domain.DeliveryReference{}, err
	}
	if err := msg.To(to); err != nil {
		return domain.DeliveryReference{}, err
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, htmlBody)

	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return domain.DeliveryReference{}, err
	}
	s.log.Info("confirmation email sent", "to", to, "subject", subject)
	return domain.DeliveryReference{Acknowledged: true}, nil
}
