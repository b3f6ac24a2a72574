package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"focusapp/internal/models"
)

// ErrNoRecipient is returned when the active user has no email address.
var ErrNoRecipient = errors.New("user has no email address")

// reminderWindowDays bounds how far ahead the digest looks for exams.
const reminderWindowDays = 7

// EmailService sends reminder digests via Amazon SES
type EmailService struct {
	client    *sesv2.Client
	fromEmail string
	fromName  string
	enabled   bool
	debug     bool
}

// NewEmailService creates a new email service
func NewEmailService(awsRegion, fromEmail, fromName string, debug bool) (*EmailService, error) {
	// If fromEmail is empty, create a disabled service
	if fromEmail == "" {
		log.Println("Email service disabled: SES_FROM_EMAIL not configured")
		return &EmailService{
			enabled: false,
			debug:   debug,
		}, nil
	}

	if debug {
		log.Printf("[DEBUG] Initializing email service with AWS SES")
		log.Printf("[DEBUG] AWS Region: %s", awsRegion)
		log.Printf("[DEBUG] From Email: %s", fromEmail)
	}

	// Load AWS configuration
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(awsRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	// Create SES client
	client := sesv2.NewFromConfig(cfg)

	log.Printf("Email service enabled: from=%s, region=%s", fromEmail, awsRegion)

	return &EmailService{
		client:    client,
		fromEmail: fromEmail,
		fromName:  fromName,
		enabled:   true,
		debug:     debug,
	}, nil
}

// IsEnabled returns whether the email service is enabled
func (s *EmailService) IsEnabled() bool {
	return s.enabled
}

// SendReminderDigest emails the user their reminder-flagged open tasks and
// the exams scheduled within the next week. Sending nothing (no email on
// the profile, no reminders due, service disabled) is not an error for the
// caller beyond ErrNoRecipient.
func (s *EmailService) SendReminderDigest(ctx context.Context, user models.User, tasks []models.Task, exams []models.Exam, now time.Time) error {
	if user.Email == "" {
		return ErrNoRecipient
	}

	dueTasks := reminderTasks(tasks)
	dueExams := upcomingExams(exams, now)

	if !s.enabled {
		log.Printf("Skipping email send (service disabled): reminder digest to %s", user.Email)
		return nil
	}
	if len(dueTasks) == 0 && len(dueExams) == 0 {
		if s.debug {
			log.Printf("[DEBUG] No reminders due for %s, skipping digest", user.Name)
		}
		return nil
	}

	subject := "Bugünün hatırlatmaları"
	textBody := buildDigestText(user, dueTasks, dueExams)
	htmlBody := buildDigestHTML(user, dueTasks, dueExams)

	if s.debug {
		log.Printf("[DEBUG] Sending reminder digest: to=%s, tasks=%d, exams=%d", user.Email, len(dueTasks), len(dueExams))
	}

	return s.sendEmail(ctx, user.Email, subject, htmlBody, textBody)
}

// reminderTasks filters to incomplete tasks the user asked to be reminded of.
func reminderTasks(tasks []models.Task) []models.Task {
	var due []models.Task
	for _, t := range tasks {
		if t.Reminder && !t.Completed {
			due = append(due, t)
		}
	}
	return due
}

// upcomingExams filters to exams dated within the reminder window.
func upcomingExams(exams []models.Exam, now time.Time) []models.Exam {
	today := now.Format("2006-01-02")
	horizon := now.AddDate(0, 0, reminderWindowDays).Format("2006-01-02")

	var due []models.Exam
	for _, e := range exams {
		if e.Date >= today && e.Date <= horizon {
			due = append(due, e)
		}
	}
	return due
}

func buildDigestText(user models.User, tasks []models.Task, exams []models.Exam) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Merhaba %s,\n\n", user.Name)

	if len(tasks) > 0 {
		b.WriteString("Tamamlanmamış görevlerin:\n")
		for _, t := range tasks {
			fmt.Fprintf(&b, "- %s (%s-%s)\n", t.Title, t.StartTime, t.EndTime)
		}
		b.WriteString("\n")
	}
	if len(exams) > 0 {
		b.WriteString("Yaklaşan sınavların:\n")
		for _, e := range exams {
			fmt.Fprintf(&b, "- %s, %s %s\n", e.Subject, e.Date, e.Time)
		}
		b.WriteString("\n")
	}

	b.WriteString("Başarılar!\n\n---\nBu e-posta Focus App tarafından otomatik gönderildi.\n")
	return b.String()
}

func buildDigestHTML(user models.User, tasks []models.Task, exams []models.Exam) string {
	var b strings.Builder
	b.WriteString(`<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<style>
		body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
		.container { max-width: 600px; margin: 0 auto; padding: 20px; }
		.header { background-color: #6366f1; color: white; padding: 20px; text-align: center; border-radius: 5px 5px 0 0; }
		.content { background-color: #f9f9f9; padding: 30px; border-radius: 0 0 5px 5px; }
		.footer { text-align: center; margin-top: 20px; font-size: 12px; color: #666; }
	</style>
</head>
<body>
	<div class="container">
		<div class="header"><h1>Bugünün Hatırlatmaları</h1></div>
		<div class="content">
`)
	fmt.Fprintf(&b, "\t\t\t<p>Merhaba %s,</p>\n", user.Name)
	if len(tasks) > 0 {
		b.WriteString("\t\t\t<p><strong>Tamamlanmamış görevlerin:</strong></p>\n\t\t\t<ul>\n")
		for _, t := range tasks {
			fmt.Fprintf(&b, "\t\t\t\t<li>%s (%s-%s)</li>\n", t.Title, t.StartTime, t.EndTime)
		}
		b.WriteString("\t\t\t</ul>\n")
	}
	if len(exams) > 0 {
		b.WriteString("\t\t\t<p><strong>Yaklaşan sınavların:</strong></p>\n\t\t\t<ul>\n")
		for _, e := range exams {
			fmt.Fprintf(&b, "\t\t\t\t<li>%s, %s %s</li>\n", e.Subject, e.Date, e.Time)
		}
		b.WriteString("\t\t\t</ul>\n")
	}
	b.WriteString(`			<p>Başarılar!</p>
		</div>
		<div class="footer">
			<p>Bu e-posta Focus App tarafından otomatik gönderildi. Lütfen yanıtlamayın.</p>
		</div>
	</div>
</body>
</html>
`)
	return b.String()
}

// sendEmail sends an email using Amazon SES
func (s *EmailService) sendEmail(ctx context.Context, toEmail, subject, htmlBody, textBody string) error {
	fromAddress := s.fromEmail
	if s.fromName != "" {
		fromAddress = fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fromAddress),
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Html: &types.Content{
						Data:    aws.String(htmlBody),
						Charset: aws.String("UTF-8"),
					},
					Text: &types.Content{
						Data:    aws.String(textBody),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	result, err := s.client.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send email to %s: %w", toEmail, err)
	}

	if s.debug && result.MessageId != nil {
		log.Printf("[DEBUG] Message ID: %s", *result.MessageId)
	}
	log.Printf("Email sent successfully: to=%s, subject=%s", toEmail, subject)
	return nil
}
