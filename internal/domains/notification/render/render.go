package render

import (
	"bytes"
	"embed"
	"fmt"
	htmlTemplate "html/template"
	"proccms/infras/mail"
	"proccms/internal/domains/notification/model"
	"proccms/shared/timezone"
	"strings"
	textTemplate "text/template"
)

const (
	layoutName  = "base"
	subjectName = "subject"
	dateLayout  = "02 Jan 2006 15:04"
)

//go:embed email/*
var files embed.FS

var funcs = map[string]any{
	"lower": strings.ToLower,
}

type pair struct {
	html *htmlTemplate.Template
	text *textTemplate.Template
}

// Renderer turns an Email into a ready to send mail.Message.
type Renderer struct {
	templates map[string]pair
}

// New parses every template in model.Templates against the shared base layout.
func New() (*Renderer, error) {
	r := &Renderer{templates: make(map[string]pair, len(model.Templates))}

	for _, name := range model.Templates {
		html, err := htmlTemplate.New(name).Funcs(funcs).ParseFS(files, "email/_base.gohtml", "email/"+name+".gohtml")
		if err != nil {
			return nil, fmt.Errorf("failed to parse html template %s: %w", name, err)
		}

		text, err := textTemplate.New(name).Funcs(funcs).ParseFS(files, "email/_base.txt", "email/"+name+".txt")
		if err != nil {
			return nil, fmt.Errorf("failed to parse text template %s: %w", name, err)
		}

		r.templates[name] = pair{html: html, text: text}
	}

	return r, nil
}

// MustNew is New for wiring at startup.
func MustNew() *Renderer {
	r, err := New()
	if err != nil {
		panic(err)
	}

	return r
}

func (r *Renderer) Render(email model.Email) (mail.Message, error) {
	tmpl, ok := r.templates[email.Template]
	if !ok {
		return mail.Message{}, fmt.Errorf("unknown email template %q", email.Template)
	}

	data := email.Data
	if data.Now == "" {
		data.Now = timezone.Format(timezone.Now(), dateLayout)
	}

	var subject, text, html bytes.Buffer

	if err := tmpl.text.ExecuteTemplate(&subject, subjectName, data); err != nil {
		return mail.Message{}, fmt.Errorf("failed to render subject of %s: %w", email.Template, err)
	}

	if err := tmpl.text.ExecuteTemplate(&text, layoutName, data); err != nil {
		return mail.Message{}, fmt.Errorf("failed to render text of %s: %w", email.Template, err)
	}

	if err := tmpl.html.ExecuteTemplate(&html, layoutName, data); err != nil {
		return mail.Message{}, fmt.Errorf("failed to render html of %s: %w", email.Template, err)
	}

	return mail.Message{
		To:      email.To,
		Cc:      email.Cc,
		Subject: strings.TrimSpace(subject.String()),
		Text:    strings.TrimSpace(text.String()),
		HTML:    html.String(),
	}, nil
}
