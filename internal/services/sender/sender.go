// Package services содержит логику бизнес-уровня для отправки почтовых
// напоминаний об истекающих планах.
package services

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/examprep-backend/internal/lib/smtp"
	"github.com/magabrotheeeer/examprep-backend/internal/models"
)

// SenderService превращает сообщения очереди уведомлений в письма.
type SenderService struct {
	transport smtp.TransportInterface
	log       *slog.Logger
}

// NewSenderService создает новый экземпляр SenderService.
func NewSenderService(transport smtp.TransportInterface, log *slog.Logger) *SenderService {
	return &SenderService{
		transport: transport,
		log:       log,
	}
}

// SendPlanExpiringReminder разбирает сообщение очереди и отправляет
// письмо о скором окончании плана.
func (s *SenderService) SendPlanExpiringReminder(body []byte) error {
	const op = "services.sender.SendPlanExpiringReminder"

	var reminder models.PlanReminder
	if err := json.Unmarshal(body, &reminder); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if reminder.Email == "" {
		return fmt.Errorf("%s: reminder has no email", op)
	}

	expiry := time.UnixMilli(reminder.PlanExpiry).Format("02 Jan 2006")
	subject := "Your exam prep plan expires tomorrow"
	text := fmt.Sprintf(
		"Hello %s,\r\n\r\n"+
			"Your subscription plan expires on %s. Renew now to keep full access "+
			"to daily questions, mock tests and the GK digest.\r\n\r\n"+
			"Team ExamPrep",
		reminder.Name, expiry)

	if err := s.sendEmail(reminder.Email, subject, text); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("reminder email sent", slog.String("email", reminder.Email))
	return nil
}

func (s *SenderService) sendEmail(to, subject, text string) error {
	client, err := s.transport.Connect()
	if err != nil {
		return fmt.Errorf("connect to smtp server: %w", err)
	}
	defer func() {
		if err := client.Quit(); err != nil {
			_ = client.Close()
		}
	}()

	if err := client.Mail(s.transport.GetSMTPUser()); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("open data writer: %w", err)
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		s.transport.GetSMTPUser(), to, subject, text)
	if _, err := w.Write([]byte(msg)); err != nil {
		_ = w.Close()
		return fmt.Errorf("write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close data writer: %w", err)
	}
	return nil
}
