package service

import (
	"context"
	"net/url"

	"edoc-portal/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

// Notifier delivers the account emails: password reset and address
// verification links.
type Notifier interface {
	PasswordReset(ctx context.Context, user *entity.User, token string) error
	EmailVerification(ctx context.Context, user *entity.User, token string) error
}

type logNotifier struct {
	log       *logrus.Logger
	publicURL string
}

// NewLogNotifier writes the links to the log instead of sending mail. It is
// the delivery used until an SMTP relay is configured.
func NewLogNotifier(log *logrus.Logger, publicURL string) Notifier {
	return &logNotifier{
		log:       log,
		publicURL: publicURL,
	}
}

func (n *logNotifier) PasswordReset(ctx context.Context, user *entity.User, token string) error {
	n.log.WithFields(logrus.Fields{
		"to":   user.Email,
		"link": n.link("/reset-password.html", token),
	}).Info("Password reset requested")
	return nil
}

func (n *logNotifier) EmailVerification(ctx context.Context, user *entity.User, token string) error {
	n.log.WithFields(logrus.Fields{
		"to":   user.Email,
		"link": n.link("/verify-email.html", token),
	}).Info("Email verification requested")
	return nil
}

func (n *logNotifier) link(page, token string) string {
	return n.publicURL + page + "?token=" + url.QueryEscape(token)
}
