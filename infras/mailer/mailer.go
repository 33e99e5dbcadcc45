package mailer

//go:generate go run go.uber.org/mock/mockgen -source=./mailer.go -destination=./mocks/mailer_mock.go -package=mocks

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	htmlTemplate "html/template"
	textTemplate "text/template"
	"time"

	"intake/config"
	"intake/infras/otel"
	"intake/shared/constant"
	"intake/shared/failure"

	"github.com/rs/zerolog/log"
	gomail "github.com/wneessen/go-mail"
)

//go:embed templates/*
var templateFS embed.FS

const subjectPasscode = "【ご相談予約】認証コードのお知らせ"

var (
	htmlTemplates = htmlTemplate.Must(htmlTemplate.ParseFS(templateFS, "templates/*.html"))
	textTemplates = textTemplate.Must(textTemplate.ParseFS(templateFS, "templates/*.txt"))
)

// Passcode is the content of a one-time code email.
type Passcode struct {
	To        string
	Code      string
	Link      string
	ExpiresIn time.Duration
}

type passcodeData struct {
	Title            string
	Code             string
	Link             string
	ExpiresInMinutes int
}

type Mailer interface {
	SendPasscode(ctx context.Context, passcode Passcode) error
}

type smtpMailer struct {
	config *config.Config
	otel   otel.Otel
}

func New(config *config.Config, otel otel.Otel) Mailer {
	if config.Mail.SMTP.Host == "" {
		log.Warn().Msg("SMTP host is not configured, passcode emails cannot be sent")
	}

	return &smtpMailer{
		config: config,
		otel:   otel,
	}
}

func (m *smtpMailer) SendPasscode(ctx context.Context, passcode Passcode) (err error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelMailScopeName, constant.OtelMailScopeName+".SendPasscode")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	smtp := m.config.Mail.SMTP
	if smtp.Host == "" {
		return failure.NotConfigured
	}

	msg, err := m.buildPasscodeMessage(passcode)
	if err != nil {
		return err
	}

	client, err := gomail.NewClient(smtp.Host,
		gomail.WithPort(smtp.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(smtp.Username),
		gomail.WithPassword(smtp.Password),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(time.Duration(smtp.TimeoutSeconds)*time.Second),
	)
	if err != nil {
		return fmt.Errorf("failed to create smtp client: %w", err)
	}

	if err = client.DialAndSendWithContext(ctx, msg); err != nil {
		log.Error().Err(err).Str("to", passcode.To).Msg("Failed to send passcode email")

		return fmt.Errorf("failed to send passcode email: %w", err)
	}

	log.Info().Str("to", passcode.To).Msg("Passcode email sent")

	return nil
}

func (m *smtpMailer) buildPasscodeMessage(passcode Passcode) (*gomail.Msg, error) {
	data := passcodeData{
		Title:            subjectPasscode,
		Code:             passcode.Code,
		Link:             passcode.Link,
		ExpiresInMinutes: int(passcode.ExpiresIn.Minutes()),
	}

	var html, text bytes.Buffer

	if err := htmlTemplates.ExecuteTemplate(&html, "passcode.html", data); err != nil {
		return nil, fmt.Errorf("failed to render passcode html: %w", err)
	}

	if err := textTemplates.ExecuteTemplate(&text, "passcode.txt", data); err != nil {
		return nil, fmt.Errorf("failed to render passcode text: %w", err)
	}

	msg := gomail.NewMsg()

	if err := msg.FromFormat(m.config.Mail.FromName, m.config.Mail.FromEmail); err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}

	if err := msg.To(passcode.To); err != nil {
		return nil, fmt.Errorf("invalid recipient address: %w", err)
	}

	msg.Subject(subjectPasscode)
	msg.SetBodyString(gomail.TypeTextPlain, text.String())
	msg.AddAlternativeString(gomail.TypeTextHTML, html.String())

	return msg, nil
}
