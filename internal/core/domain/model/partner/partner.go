package partner

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var (
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")

	ErrPartnerIsNotConstructed = errors.New("Partner must be created via NewPartner constructor")
)

// Partner is a company that places orders.
type Partner struct {
	id    kernel.UUID
	name  string
	email *string

	guard guard.ConstructorGuard
}

// NewPartner creates a partner. A nil or blank email means no contact on file.
func NewPartner(id kernel.UUID, name string, email *string) (*Partner, error) {
	p := &Partner{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setEmail(email),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Partner) Validate() error {
	if p == nil {
		return ErrPartnerIsNotConstructed
	}
	return p.guard.Validate(ErrPartnerIsNotConstructed)
}

func (p *Partner) ID() kernel.UUID {
	return p.id
}

func (p *Partner) Name() string {
	return p.name
}

// Email returns nil when the partner has no contact on file.
func (p *Partner) Email() *string {
	return p.email
}

// Contact returns the notification address and whether one exists.
func (p *Partner) Contact() (string, bool) {
	if p.email == nil {
		return "", false
	}
	return *p.email, true
}

func (p *Partner) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("partner ID", err)
	}
	p.id = id
	return nil
}

func (p *Partner) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Partner) setEmail(email *string) error {
	if email == nil || strings.TrimSpace(*email) == "" {
		p.email = nil
		return nil
	}

	addr, err := mail.ParseAddress(*email)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q: %w", *email, err))
	}
	p.email = &addr.Address
	return nil
}
