package notification

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"regexp"

	"github.com/startright-uk/startright/internal/entitlement"
	"github.com/startright-uk/startright/internal/order"
)

//go:embed templates/order.html.tmpl
var templateFS embed.FS

var orderTemplate = template.Must(template.ParseFS(templateFS, "templates/order.html.tmpl"))

var whitespace = regexp.MustCompile(`\s+`)

// Attachment is a named binary file sent with a message.
type Attachment struct {
	Filename string
	Content  []byte
}

// Message is an outbound email.
type Message struct {
	From        string
	To          []string
	Subject     string
	HTML        string
	Attachments []Attachment
}

// Mailer delivers a Message with a single pass/fail result.
type Mailer interface {
	Send(ctx context.Context, msg *Message) error
}

// Error reports a message the Mailer could not deliver.
type Error struct {
	Subject string
	Err     error
}

// Error implements the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("failed to deliver %q: %v", e.Subject, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Bundle carries everything one order produced.
type Bundle struct {
	StudyDocument []byte
	PlanDocument  []byte
	// Artifacts holds the generated texts that are embedded in the email body.
	// Kinds that were not requested are absent.
	Artifacts    map[order.ArtifactKind]string
	Entitlements *entitlement.Entitlements
}

// Config holds the fixed sender and recipients.
type Config struct {
	From string
	To   []string
}

// Notifier emails order summaries to the business owner.
type Notifier struct {
	mailer Mailer
	from   string
	to     []string
}

// NewNotifier creates a Notifier that sends through mailer.
func NewNotifier(mailer Mailer, cfg *Config) *Notifier {
	return &Notifier{
		mailer: mailer,
		from:   cfg.From,
		to:     cfg.To,
	}
}

// Notify builds the order summary with both documents attached and sends it.
func (n *Notifier) Notify(ctx context.Context, o *order.Order, bundle *Bundle) error {
	msg, err := n.Compose(o, bundle)
	if err != nil {
		return err
	}

	if err := n.mailer.Send(ctx, msg); err != nil {
		return &Error{Subject: msg.Subject, Err: err}
	}

	return nil
}

// Compose renders the message for an order without sending it.
func (n *Notifier) Compose(o *order.Order, bundle *Bundle) (*Message, error) {
	ent := bundle.Entitlements
	if ent == nil {
		ent = &entitlement.Entitlements{}
	}

	studyName := AttachmentName("Business-Study", o.CustomerName)
	planName := AttachmentName("Business-Plan", o.CustomerName)

	view := struct {
		Order              *order.Order
		Package            string
		BusinessName       string
		YearOneGoals       string
		Competitors        string
		AdditionalInfo     string
		NameSuggestions    string
		Advice             string
		FormationChecklist string
		DomainReminder     bool
		Attachments        []string
	}{
		Order:          o,
		Package:        order.Or(ent.Label, string(o.Product)),
		BusinessName:   order.Or(o.BusinessName, "Needs suggestions"),
		YearOneGoals:   order.Or(o.YearOneGoals, "Not specified"),
		Competitors:    order.Or(o.Competitors, "Not specified"),
		AdditionalInfo: order.Or(o.AdditionalInfo, "None"),
		Advice:         bundle.Artifacts[order.ArtifactAdvice],
		DomainReminder: ent.IsProDomain,
		Attachments:    []string{"Business Study", "Business Plan"},
	}

	if text, ok := bundle.Artifacts[order.ArtifactNameSuggestions]; ok && ent.NeedsNameSuggestions {
		view.NameSuggestions = text
	}
	if text, ok := bundle.Artifacts[order.ArtifactFormationChecklist]; ok && ent.IsPro {
		view.FormationChecklist = text
	}

	var body bytes.Buffer
	if err := orderTemplate.Execute(&body, view); err != nil {
		return nil, fmt.Errorf("failed to render order email: %w", err)
	}

	return &Message{
		From:    n.from,
		To:      n.to,
		Subject: Subject(ent.Label, o.CustomerName),
		HTML:    body.String(),
		Attachments: []Attachment{
			{Filename: studyName, Content: bundle.StudyDocument},
			{Filename: planName, Content: bundle.PlanDocument},
		},
	}, nil
}

// Subject returns the email subject for a package label and customer.
func Subject(label, customerName string) string {
	return fmt.Sprintf("🆕 New %s - %s", order.Or(label, "Order"), customerName)
}

// AttachmentName builds a .docx filename with whitespace runs in the customer name replaced by hyphens.
func AttachmentName(prefix, customerName string) string {
	return fmt.Sprintf("%s-%s.docx", prefix, whitespace.ReplaceAllString(customerName, "-"))
}
