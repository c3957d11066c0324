package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/oksasatya/go-ddd-identity/pkg/helpers"
	"github.com/oksasatya/go-ddd-identity/pkg/mailer"
	mailtpl "github.com/oksasatya/go-ddd-identity/pkg/mailer/templates"
)

const sendTimeout = 15 * time.Second

// errPoison marks a message that can never succeed; it is dropped, not requeued.
var errPoison = errors.New("poison message")

type sender interface {
	Send(ctx context.Context, to, subject, text, html string) error
}

// process decodes, renders and sends one queued email job.
func process(ctx context.Context, body []byte, s sender) error {
	var job mailer.EmailJob
	if err := json.Unmarshal(body, &job); err != nil {
		return fmt.Errorf("%w: decode: %v", errPoison, err)
	}
	if job.To == "" {
		return fmt.Errorf("%w: missing recipient", errPoison)
	}
	helpers.EnsureRecipientAndEmail(&job)

	subject, text, html := job.Subject, job.Text, job.HTML
	if job.Template != "" {
		sub, txt, htm, err := mailtpl.Render(job.Template, job.Data)
		if err != nil {
			return fmt.Errorf("%w: render %s: %v", errPoison, job.Template, err)
		}
		subject, text, html = sub, txt, htm
	}
	if subject == "" {
		subject = helpers.SubjectFor(job)
	}

	c, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()
	if err := s.Send(c, job.To, subject, text, html); err != nil {
		return fmt.Errorf("send: %w", err)
	}
	return nil
}
