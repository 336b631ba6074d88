// Package chat implements the portal assistant: a keyword-matching FAQ
// responder with canned replies.
package chat

import (
	"strings"
	"time"
)

const (
	replyUpload = "To upload content, go to the Upload Content section from the sidebar. " +
		"You can upload various file types including videos, documents, and images."
	replyHelp = "I can help you with uploading content, viewing your activities, and navigating " +
		"the platform. What specific assistance do you need?"
	replyFormats = "Supported formats include: Text files, Videos (MP4, AVI), Audio (MP3, WAV), " +
		"Images (JPG, PNG), PDFs, DOCX, and PowerPoint presentations."
	replyStatus = "You can check your content status in the Previous Activities section. " +
		"Content goes through ML validation before approval."
	replyReject = "If content is rejected, it's usually due to inappropriate content, quality issues, " +
		"or sensitive information. You can re-upload after making necessary changes."
	replyDefault = "I understand you need help. Try asking about: uploading content, file formats, " +
		"content status, or general help."
)

// rules are evaluated in order; the first matching keyword wins.
var rules = []struct {
	keywords []string
	reply    string
}{
	{[]string{"upload", "submit"}, replyUpload},
	{[]string{"format", "file"}, replyFormats},
	{[]string{"status", "check"}, replyStatus},
	{[]string{"reject", "denied"}, replyReject},
	{[]string{"help"}, replyHelp},
}

var quickQuestions = []string{
	"How to upload content?",
	"What file formats are supported?",
	"How to check content status?",
	"Why was my content rejected?",
}

type (
	// Reply is a canned assistant answer. Delay is a cosmetic hint: the UI
	// waits that long before showing the reply.
	Reply struct {
		Text  string        `json:"text"`
		Delay time.Duration `json:"-"`
	}

	Service struct {
		appName string
		delay   time.Duration
	}
)

func NewService(appName string, replyDelay time.Duration) *Service {
	return &Service{
		appName: appName,
		delay:   replyDelay,
	}
}

// Greeting opens every conversation.
func (svc *Service) Greeting() string {
	return "Hello! I'm your " + svc.appName + " assistant. How can I help you today?"
}

// QuickQuestions are suggested prompts shown next to the input.
func (svc *Service) QuickQuestions() []string {
	qs := make([]string, len(quickQuestions))
	copy(qs, quickQuestions)
	return qs
}

// Reply matches the message against the FAQ keywords (case-insensitive
// substring match, in rule order) and falls back to a generic answer.
func (svc *Service) Reply(message string) Reply {
	msg := strings.ToLower(message)
	for _, rule := range rules {
		for _, kw := range rule.keywords {
			if strings.Contains(msg, kw) {
				return Reply{Text: rule.reply, Delay: svc.delay}
			}
		}
	}
	return Reply{Text: replyDefault, Delay: svc.delay}
}
