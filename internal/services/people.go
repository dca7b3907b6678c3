package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/freightdesk/fleetadmin/internal/normalization"
	"github.com/freightdesk/fleetadmin/internal/pkg/ctxutil"
	pkgerrors "github.com/freightdesk/fleetadmin/internal/pkg/errors"
	"github.com/freightdesk/fleetadmin/internal/platform/apierr"
)

// PersonInput is the shared create/update payload for brokers, drivers and
// owners. FirstName is stored as the person's name and LastName as the
// father's name.
type PersonInput struct {
	FirstName   string
	LastName    string
	Email       string
	DialCode    string
	PhoneNumber string
	PanNumber   string
	Country     string
	Address     string
	City        string
	Postcode    string
	Tags        []string

	LicenseNumber string
	IssuedBy      string
	LicenseDate   *time.Time
}

type person struct {
	name       string
	fatherName string
	email      string
	phone      int64
	pan        string
	country    string
	address    string
	city       string
	postcode   *int
	tags       []string
}

func (in PersonInput) normalize(requirePAN bool) (person, error) {
	p := person{
		name:       strings.TrimSpace(in.FirstName),
		fatherName: strings.TrimSpace(in.LastName),
		email:      strings.TrimSpace(in.Email),
		pan:        strings.ToUpper(strings.TrimSpace(in.PanNumber)),
		country:    strings.TrimSpace(in.Country),
		address:    strings.TrimSpace(in.Address),
		city:       strings.TrimSpace(in.City),
		tags:       normalization.Tags(in.Tags),
	}
	if p.name == "" || p.fatherName == "" || strings.TrimSpace(in.PhoneNumber) == "" || (requirePAN && p.pan == "") {
		msg := "Missing required fields: firstName, lastName and phoneNumber are required"
		if requirePAN {
			msg = "Missing required fields: firstName, lastName, phoneNumber and panNumber are required"
		}
		return p, apierr.BadRequest("missing_fields", msg)
	}
	phone, err := normalization.Phone(in.DialCode, in.PhoneNumber)
	if err != nil || phone == nil {
		return p, apierr.BadRequest("invalid_phone", "Invalid phone number format")
	}
	p.phone = *phone
	if pc := strings.TrimSpace(in.Postcode); pc != "" {
		n, ok := normalization.PositiveInt(pc)
		if !ok {
			return p, apierr.BadRequest("invalid_postcode", "Invalid postcode")
		}
		p.postcode = &n
	}
	return p, nil
}

// requireUser returns the authenticated user's id.
func requireUser(ctx context.Context) (uuid.UUID, error) {
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return uuid.Nil, pkgerrors.ErrUnauthorized
	}
	return rd.UserID, nil
}

func trimSpace(s string) string { return strings.TrimSpace(s) }
func trimUpper(s string) string { return strings.ToUpper(strings.TrimSpace(s)) }
