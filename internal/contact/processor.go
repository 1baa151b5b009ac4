package contact

import (
	"context"
	"time"

	"github.com/tazhibayda/contact-service/internal/domain"
	"github.com/tazhibayda/contact-service/internal/mail"
)

// Store is what the processor and handlers need from the mongo layer.
type Store interface {
	InsertContact(ctx context.Context, c *domain.Contact) error
	ListContacts(ctx context.Context) ([]domain.Contact, error)
	Ping(ctx context.Context) error
}

// Processor runs the accept-a-submission workflow: validate, persist,
// notify. Collaborators are injected so tests can swap in fakes.
type Processor struct {
	Store  Store
	Mailer mail.Mailer

	// SendDelay is the pause between persisting and handing the message to
	// SMTP. Receiving mail systems flag bursts as spam; zero is fine in tests.
	SendDelay time.Duration
}

func NewProcessor(store Store, m mail.Mailer, delay time.Duration) *Processor {
	return &Processor{Store: store, Mailer: m, SendDelay: delay}
}

// Process returns the persisted contact on success, a *RejectError for bad
// input, or a *FailError when config, storage, or the transport failed.
//
// Transport credentials are checked before the insert so a submission that
// can never be notified is not persisted. If the send itself fails the
// record stays: there is no rollback and no retry, the caller just gets an
// error while the listing endpoint already shows the entry.
func (p *Processor) Process(ctx context.Context, in Input) (*domain.Contact, error) {
	if rej := Validate(in); rej != nil {
		return nil, rej
	}
	if !p.Mailer.Configured() {
		return nil, &FailError{Stage: StageConfig}
	}

	ct := &domain.Contact{
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Message: in.Message,
	}
	if err := p.Store.InsertContact(ctx, ct); err != nil {
		return nil, &FailError{Stage: StageStorage, Err: err}
	}

	if p.SendDelay > 0 {
		select {
		case <-time.After(p.SendDelay):
		case <-ctx.Done():
		}
	}

	msg, err := mail.ContactNotification(*ct)
	if err != nil {
		return ct, &FailError{Stage: StageNotify, Err: err}
	}
	if err := p.Mailer.Send(ctx, msg); err != nil {
		return ct, &FailError{Stage: StageNotify, Err: err}
	}
	return ct, nil
}
