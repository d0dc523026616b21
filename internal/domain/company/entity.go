package company

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const minFoundationYear = 1800

// Company is the registry record owned by exactly one user.
type Company struct {
	id        uuid.UUID
	userID    uuid.UUID
	name      string
	fullName  *string
	inn       INN
	region    *string
	createdAt time.Time
}

func NewCompany(userID uuid.UUID, name string, inn INN, fullName, region *string, now time.Time) (*Company, error) {
	if userID == uuid.Nil {
		return nil, ErrMissingOwner
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Company{
		id:        uuid.New(),
		userID:    userID,
		name:      name,
		fullName:  blankToNil(fullName),
		inn:       inn,
		region:    blankToNil(region),
		createdAt: now,
	}, nil
}

// DefaultName is used when registration does not supply a display name.
func DefaultName(inn INN) string {
	return fmt.Sprintf("Компания %s", inn.Value())
}

func (c *Company) ID() uuid.UUID        { return c.id }
func (c *Company) UserID() uuid.UUID    { return c.userID }
func (c *Company) Name() string         { return c.name }
func (c *Company) FullName() *string    { return c.fullName }
func (c *Company) INN() INN             { return c.inn }
func (c *Company) Region() *string      { return c.region }
func (c *Company) CreatedAt() time.Time { return c.createdAt }

// Profile is the full set of owner-editable fields. The update replaces every field.
type Profile struct {
	Name              string
	FullName          *string
	FoundationYear    *int32
	Region            *string
	Description       *string
	NotifyOnNewOrders bool
	WebsiteURL        *string
	ITAssociations    *string
	LogoURL           *string
	Contact           Contact
}

type Contact struct {
	FullName *string
	Position *string
	Phone    *string
	Email    *string
}

func NewProfile(p Profile, now time.Time) (Profile, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return Profile{}, ErrEmptyName
	}
	if p.FoundationYear != nil {
		y := int(*p.FoundationYear)
		if y < minFoundationYear || y > now.Year() {
			return Profile{}, ErrInvalidFoundingYear
		}
	}
	p.FullName = blankToNil(p.FullName)
	p.Region = blankToNil(p.Region)
	p.Description = blankToNil(p.Description)
	p.WebsiteURL = blankToNil(p.WebsiteURL)
	p.ITAssociations = blankToNil(p.ITAssociations)
	p.LogoURL = blankToNil(p.LogoURL)
	return p, nil
}

func blankToNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
