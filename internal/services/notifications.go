package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/Omaralabdullah051/doctors-portal-server/internal/models"
	"github.com/Omaralabdullah051/doctors-portal-server/pkg/logging"
)

// EmailSender defines the interface for sending emails.
// Implementations can be swapped without changing callers.
type EmailSender interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// EmailMessage represents an email to be sent.
type EmailMessage struct {
	To      string
	ToName  string
	Subject string
	Body    string
	HTML    string
}

// SendGridSender sends emails via the SendGrid API.
type SendGridSender struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
	logger    *logging.Logger
}

// NewSendGridSender creates a SendGrid email sender. Returns nil when no API
// key is configured; callers fall back to the stub.
func NewSendGridSender(apiKey, fromEmail, fromName string, logger *logging.Logger) *SendGridSender {
	if apiKey == "" {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &SendGridSender{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
		logger:    logger,
	}
}

func (s *SendGridSender) Send(ctx context.Context, msg EmailMessage) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(msg.ToName, msg.To)

	body := msg.Body
	html := msg.HTML
	if html == "" {
		html = body
	}
	message := mail.NewSingleEmail(from, msg.Subject, to, body, html)

	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d", response.StatusCode)
	}
	return nil
}

// StubEmailSender logs instead of sending. Used when email is not configured.
type StubEmailSender struct {
	logger *logging.Logger
}

func NewStubEmailSender(logger *logging.Logger) *StubEmailSender {
	if logger == nil {
		logger = logging.Default()
	}
	return &StubEmailSender{logger: logger}
}

func (s *StubEmailSender) Send(ctx context.Context, msg EmailMessage) error {
	s.logger.Info("email sending disabled, skipping", "to", msg.To, "subject", msg.Subject)
	return nil
}

// NotificationService dispatches booking-related emails. Sending is
// fire-and-forget: delivery failures are logged and never affect the
// operation that triggered them.
type NotificationService struct {
	sender EmailSender
	logger *logging.Logger
}

func NewNotificationService(sender EmailSender, logger *logging.Logger) *NotificationService {
	if logger == nil {
		logger = logging.Default()
	}
	return &NotificationService{sender: sender, logger: logger}
}

// SendBookingConfirmation emails the patient that their appointment is
// confirmed. Runs in a goroutine so it doesn't block the API response.
func (s *NotificationService) SendBookingConfirmation(booking *models.Booking) {
	subject := fmt.Sprintf("Your Appointment for %s is on %s at %s is confirmed",
		booking.Treatment, booking.Date, booking.Slot)
	body := subject
	html := fmt.Sprintf(`<div>
  <p>Hello %s,</p>
  <h3>Your Appointment for %s is confirmed</h3>
  <p>Looking forward to seeing you on %s at %s</p>
</div>`, booking.PatientName, booking.Treatment, booking.Date, booking.Slot)

	go s.send(EmailMessage{
		To:      booking.Patient,
		ToName:  booking.PatientName,
		Subject: subject,
		Body:    body,
		HTML:    html,
	})
}

// SendPaymentConfirmation emails the patient that their payment was received.
func (s *NotificationService) SendPaymentConfirmation(booking *models.Booking) {
	subject := fmt.Sprintf("We have received your payment for %s on %s at %s",
		booking.Treatment, booking.Date, booking.Slot)
	body := subject
	html := fmt.Sprintf(`<div>
  <p>Hello %s,</p>
  <h3>Thank you for your payment</h3>
  <p>Looking forward to seeing you on %s at %s</p>
</div>`, booking.PatientName, booking.Date, booking.Slot)

	go s.send(EmailMessage{
		To:      booking.Patient,
		ToName:  booking.PatientName,
		Subject: subject,
		Body:    body,
		HTML:    html,
	})
}

func (s *NotificationService) send(msg EmailMessage) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := s.sender.Send(ctx, msg); err != nil {
		s.logger.Error("failed to send email", "error", err, "to", msg.To, "subject", msg.Subject)
		return
	}
	s.logger.Info("email sent", "to", msg.To, "subject", msg.Subject)
}
