package email

import (
	"context"
	"net/smtp"
	"os"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/report_admin/internal/models"
)

func TestBuildResolutionMessage(t *testing.T) {
	user := models.User{ID: "u1", Name: "Ada", Email: "ada@example.com", Incentives: 25}
	msg := string(BuildResolutionMessage("noreply@example.com", user, models.Report{ID: "r1"}, 25))

	assert.Contains(t, msg, "To: ada@example.com\r\n")
	assert.Contains(t, msg, "From: noreply@example.com\r\n")
	assert.Contains(t, msg, "Subject: Your report has been resolved\r\n")
	assert.Contains(t, msg, "Hello Ada")
	assert.Contains(t, msg, "<b>r1</b>")
	assert.Contains(t, msg, "now 25 points")
}

func TestNotifyResolvedWithoutEmail(t *testing.T) {
	n := NewNotifier(&SMTPConfig{Host: "localhost", Port: 25, Sender: "noreply@example.com"})
	err := n.NotifyResolved(context.Background(), models.User{ID: "u1"}, models.Report{ID: "r1"}, 25)
	assert.ErrorIs(t, err, ErrNoRecipient)
}

func TestNotifyResolvedDeliversInBackground(t *testing.T) {
	var (
		mu   sync.Mutex
		got  []string
		done = make(chan struct{})
	)
	n := NewNotifier(&SMTPConfig{Host: "smtp.example.com", Port: 587, Sender: "noreply@example.com"})
	n.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		mu.Lock()
		got = append(got, addr, from)
		got = append(got, to...)
		mu.Unlock()
		assert.Nil(t, a)
		close(done)
		return nil
	}

	user := models.User{ID: "u1", Email: "ada@example.com"}
	require.NoError(t, n.NotifyResolved(context.Background(), user, models.Report{ID: "r1"}, 25))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("notification was not delivered")
	}
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"smtp.example.com:587", "noreply@example.com", "ada@example.com"}, got)
}

func TestSendResolutionEmail(t *testing.T) {
	recipientEmail := os.Getenv("TEST_RECIPIENT_EMAIL")
	if recipientEmail == "" {
		t.Skip("Skipping email sending test: TEST_RECIPIENT_EMAIL environment variable not set.")
	}

	config, err := LoadSMTPConfigFromEnv()
	require.NoError(t, err, "SMTP_HOST, SMTP_PORT and SMTP_SENDER_EMAIL must be set")

	t.Logf("Attempting to send resolution email to %s using SMTP server %s:%s...",
		recipientEmail, config.Host, strconv.Itoa(config.Port))

	n := NewNotifier(config)
	user := models.User{ID: "test-user", Name: "Test User", Email: recipientEmail, Incentives: 25}
	msg := BuildResolutionMessage(config.Sender, user, models.Report{ID: "test-report"}, 25)
	require.NoError(t, n.deliver(recipientEmail, msg))
}
