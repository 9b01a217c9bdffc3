package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendFeedbackAlert(sessionID string, rating int, category, comment string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	teamEmail   string
}

func NewEmailService(host string, port int, username, password, senderEmail, teamEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		teamEmail:   teamEmail,
	}
}

func (s *emailService) SendFeedbackAlert(sessionID string, rating int, category, comment string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", s.teamEmail)
	m.SetHeader("Subject", fmt.Sprintf("New feedback: %s (%d/5)", category, rating))

	if sessionID == "" {
		sessionID = "(anonymous)"
	}

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>New user feedback</h2>
			<p><b>Session:</b> %s</p>
			<p><b>Rating:</b> %d / 5</p>
			<p><b>Category:</b> %s</p>
			<p><b>Comment:</b></p>
			<blockquote>%s</blockquote>
		</div>
	`, sessionID, rating, category, comment)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send feedback alert: %v\n", err)
		return err
	}

	fmt.Printf("[MAILER] Feedback alert sent to %s\n", s.teamEmail)
	return nil
}
