package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freightdesk/fleetadmin/internal/data/listing"
	"github.com/freightdesk/fleetadmin/internal/http/response"
	"github.com/freightdesk/fleetadmin/internal/pkg/logger"
	"github.com/freightdesk/fleetadmin/internal/services"
)

// personRequest is the body shared by brokers, drivers and owners.
type personRequest struct {
	FirstName     string     `json:"firstName"`
	LastName      string     `json:"lastName"`
	Email         string     `json:"email"`
	DialCode      FlexString `json:"dialCode"`
	PhoneNumber   FlexString `json:"phoneNumber"`
	PanNumber     string     `json:"panNumber"`
	Country       string     `json:"country"`
	Address       string     `json:"address"`
	City          string     `json:"city"`
	Postcode      FlexString `json:"postcode"`
	Tags          TagList    `json:"tags"`
	LicenseNumber string     `json:"licenseNumber"`
	IssuedBy      string     `json:"issueBy"`
	LicenseDate   Date       `json:"licenseDate"`
}

func (r personRequest) input() services.PersonInput {
	return services.PersonInput{
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Email:         r.Email,
		DialCode:      r.DialCode.String(),
		PhoneNumber:   r.PhoneNumber.String(),
		PanNumber:     r.PanNumber,
		Country:       r.Country,
		Address:       r.Address,
		City:          r.City,
		Postcode:      r.Postcode.String(),
		Tags:          r.Tags,
		LicenseNumber: r.LicenseNumber,
		IssuedBy:      r.IssuedBy,
		LicenseDate:   r.LicenseDate.Ptr(),
	}
}

// crud is the subset of a user scoped service the generic handler drives.
type crud[T any, In any] interface {
	List(ctx context.Context, params listing.Params) (listing.Page[T], error)
	Get(ctx context.Context, id uint) (T, error)
	Create(ctx context.Context, in In) (T, error)
	Update(ctx context.Context, id uint, in In) (T, error)
}

// resource wires list/get/create/update for one entity. label is used in
// success messages.
type resource[T any, In any, Req any] struct {
	log     *logger.Logger
	label   string
	svc     crud[T, In]
	toInput func(Req) In
}

func (r resource[T, In, Req]) list(c *gin.Context) {
	page, err := r.svc.List(c.Request.Context(), listParams(c))
	if err != nil {
		response.RespondFailure(c, r.log, err)
		return
	}
	response.RespondData(c, http.StatusOK, "", page)
}

func (r resource[T, In, Req]) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	v, err := r.svc.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondFailure(c, r.log, err)
		return
	}
	response.RespondData(c, http.StatusOK, "", v)
}

func (r resource[T, In, Req]) create(c *gin.Context) {
	var req Req
	if !bindJSON(c, &req) {
		return
	}
	v, err := r.svc.Create(c.Request.Context(), r.toInput(req))
	if err != nil {
		response.RespondFailure(c, r.log, err)
		return
	}
	response.RespondData(c, http.StatusCreated, r.label+" created successfully", v)
}

func (r resource[T, In, Req]) update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req Req
	if !bindJSON(c, &req) {
		return
	}
	v, err := r.svc.Update(c.Request.Context(), id, r.toInput(req))
	if err != nil {
		response.RespondFailure(c, r.log, err)
		return
	}
	response.RespondData(c, http.StatusOK, r.label+" updated successfully", v)
}

type deleter interface {
	Delete(ctx context.Context, id uint) error
}

func deleteByID(c *gin.Context, log *logger.Logger, label string, svc deleter) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := svc.Delete(c.Request.Context(), id); err != nil {
		response.RespondFailure(c, log, err)
		return
	}
	response.RespondData(c, http.StatusOK, label+" deleted successfully", gin.H{"id": id})
}
