package email

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
	"os"
	"strconv"
	"strings"

	"github.com/apex/log"

	"github.com/report_admin/internal/models"
)

// ErrNoRecipient 表示用户没有可用的邮箱地址
var ErrNoRecipient = errors.New("user has no email address")

// SMTPConfig holds the SMTP server configuration
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Sender   string
}

// LoadSMTPConfigFromEnv loads SMTP configuration from environment variables
func LoadSMTPConfigFromEnv() (*SMTPConfig, error) {
	host := os.Getenv("SMTP_HOST")
	portStr := os.Getenv("SMTP_PORT")
	username := os.Getenv("SMTP_USERNAME")
	password := os.Getenv("SMTP_PASSWORD")
	sender := os.Getenv("SMTP_SENDER_EMAIL")

	if host == "" || portStr == "" || sender == "" {
		return nil, fmt.Errorf("SMTP_HOST, SMTP_PORT, and SMTP_SENDER_EMAIL must be set")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %v", err)
	}

	return &SMTPConfig{
		Host:     host,
		Port:     port,
		Username: username, // Username can be empty for some SMTP servers
		Password: password,
		Sender:   sender,
	}, nil
}

// sendFunc matches smtp.SendMail.
type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// Notifier sends resolution notices to citizens over SMTP.
type Notifier struct {
	config *SMTPConfig
	send   sendFunc
}

// NewNotifier returns a notifier for the given SMTP server.
func NewNotifier(config *SMTPConfig) *Notifier {
	return &Notifier{config: config, send: smtp.SendMail}
}

// NotifyResolved queues a notice that the user's report was resolved and
// points were credited. Delivery happens in the background; failures are logged.
func (n *Notifier) NotifyResolved(_ context.Context, user models.User, report models.Report, points int) error {
	if strings.TrimSpace(user.Email) == "" {
		return ErrNoRecipient
	}
	msg := BuildResolutionMessage(n.config.Sender, user, report, points)

	go func() {
		if err := n.deliver(user.Email, msg); err != nil {
			log.WithError(err).WithFields(log.Fields{"user": user.ID, "report": report.ID}).Error("email: resolution notice failed")
			return
		}
		log.WithFields(log.Fields{"user": user.ID, "report": report.ID}).Info("email: resolution notice sent")
	}()
	return nil
}

func (n *Notifier) deliver(to string, msg []byte) error {
	var auth smtp.Auth
	if n.config.Username != "" {
		auth = smtp.PlainAuth("", n.config.Username, n.config.Password, n.config.Host)
	}
	addr := fmt.Sprintf("%s:%d", n.config.Host, n.config.Port)
	if err := n.send(addr, auth, n.config.Sender, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// BuildResolutionMessage renders the MIME message with CRLF line endings.
func BuildResolutionMessage(sender string, user models.User, report models.Report, points int) []byte {
	name := user.Name
	if name == "" {
		name = "there"
	}
	body := fmt.Sprintf(`
<html>
<body>
    <p>Hello %s,</p>
    <p>Your report <b>%s</b> has been marked as resolved. Thank you for helping keep the city clean.</p>
    <p>%d incentive points were added to your account. Your balance is now %d points.</p>
    <p><small>This is an automated message, please do not reply.</small></p>
</body>
</html>
`, name, report.ID, points, user.Incentives)

	return []byte(strings.Join([]string{
		"To: " + user.Email,
		"From: " + sender,
		"Subject: Your report has been resolved",
		"MIME-version: 1.0",
		"Content-Type: text/html; charset=\"UTF-8\"",
		"",
		body,
	}, "\r\n"))
}
