package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/resend/resend-go/v2"
	"github.com/shopspring/decimal"
)

// EmailService sends transactional emails.
type EmailService interface {
	SendScoreReport(ctx context.Context, toEmail, quizTitle string, score decimal.Decimal, idempotencyKey string) error
}

// NoopEmailService is used when score report emails are disabled.
type NoopEmailService struct{}

func (s *NoopEmailService) SendScoreReport(ctx context.Context, toEmail, quizTitle string, score decimal.Decimal, idempotencyKey string) error {
	log.Printf("[EmailService] noop send score report to=%s quiz=%q", toEmail, quizTitle)
	return nil
}

// ResendEmailService sends emails via Resend REST API.
type ResendEmailService struct {
	from   string
	client *resend.Client
}

func NewResendEmailService(apiKey, from string) (*ResendEmailService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("resend api key is required")
	}
	if from == "" {
		return nil, fmt.Errorf("email from is required")
	}
	return &ResendEmailService{
		from:   from,
		client: resend.NewClient(apiKey),
	}, nil
}

func (s *ResendEmailService) SendScoreReport(ctx context.Context, toEmail, quizTitle string, score decimal.Decimal, idempotencyKey string) error {
	if toEmail == "" || quizTitle == "" {
		return fmt.Errorf("toEmail and quizTitle are required")
	}

	scoreText := score.StringFixed(2)
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{toEmail},
		Subject: fmt.Sprintf("Your result for %q", quizTitle),
		Text:    fmt.Sprintf("You completed the quiz %q with a score of %s%%.", quizTitle, scoreText),
		Html:    fmt.Sprintf("<p>You completed the quiz <strong>%s</strong> with a score of <strong>%s%%</strong>.</p>", quizTitle, scoreText),
	}

	options := &resend.SendEmailOptions{}
	if strings.TrimSpace(idempotencyKey) != "" {
		options.IdempotencyKey = strings.TrimSpace(idempotencyKey)
	}

	if _, err := s.client.Emails.SendWithOptions(ctx, params, options); err != nil {
		return fmt.Errorf("resend send failed: %w", err)
	}
	return nil
}
