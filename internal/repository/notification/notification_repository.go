package notification

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/The-Batman-Code/laundry-service/pkg/logger"

	"github.com/pobyzaarif/goshortcute"
)

type MailjetConfig struct {
	MailjetBaseURL           string
	MailjetBasicAuthUsername string
	MailjetBasicAuthPassword string
	MailjetSenderEmail       string
	MailjetSenderName        string
}

// MailjetRepository delivers transactional mail (payment receipts) through the
// Mailjet v3.1 send API.
type MailjetRepository struct {
	mailjetConfig MailjetConfig
}

func NewMailjetRepository(cfg MailjetConfig) *MailjetRepository {
	return &MailjetRepository{
		cfg,
	}
}

type payloadSendEmail struct {
	Messages []message `json:"Messages"`
}

type party struct {
	Email string `json:"Email"`
	Name  string `json:"Name"`
}

type attachment struct {
	ContentType   string `json:"ContentType"`
	Filename      string `json:"Filename"`
	Base64Content string `json:"Base64Content"`
}

type message struct {
	From        party        `json:"From"`
	To          []party      `json:"To"`
	Subject     string       `json:"Subject"`
	TextPart    string       `json:"TextPart"`
	HTMLPart    string       `json:"HTMLPart"`
	Attachments []attachment `json:"Attachments,omitempty"`
}

func (r MailjetRepository) SendEmail(toName, toEmail, subject, body string, pdfAttachment []byte) error {
	url := r.mailjetConfig.MailjetBaseURL + "/v3.1/send"

	msg := message{
		From: party{
			Email: r.mailjetConfig.MailjetSenderEmail,
			Name:  r.mailjetConfig.MailjetSenderName,
		},
		To:       []party{{Email: toEmail, Name: toName}},
		Subject:  subject,
		TextPart: body,
		HTMLPart: body,
	}

	if len(pdfAttachment) > 0 {
		msg.Attachments = []attachment{{
			ContentType:   "application/pdf",
			Filename:      "invoice.pdf",
			Base64Content: goshortcute.StringtoBase64Encode(string(pdfAttachment)),
		}}
	}

	payload := payloadSendEmail{Messages: []message{msg}}

	payloadByte, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal json payload: %w", err)
	}

	client := &http.Client{Timeout: 5 * time.Second}
	req, err := http.NewRequest(http.MethodPost, url, strings.NewReader(string(payloadByte)))
	if err != nil {
		return err
	}

	buildBasicAuth := goshortcute.StringtoBase64Encode(r.mailjetConfig.MailjetBasicAuthUsername + ":" + r.mailjetConfig.MailjetBasicAuthPassword)
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Authorization", "Basic "+buildBasicAuth)

	res, err := client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 200 && res.StatusCode <= 299 {
		return nil
	}

	bodyBytes, _ := io.ReadAll(res.Body)
	logger.Warn("mailjet returned negative response", "status", res.StatusCode, "body", string(bodyBytes))

	return fmt.Errorf("mailer service return negative response %v", res.StatusCode)
}
