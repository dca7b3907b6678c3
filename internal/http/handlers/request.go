package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/freightdesk/fleetadmin/internal/data/listing"
	"github.com/freightdesk/fleetadmin/internal/http/response"
)

var errInvalidID = errors.New("Invalid ID")

// pathID parses the :id route parameter. It responds 400 and returns false
// when the id is not a positive integer.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", errInvalidID)
		return 0, false
	}
	return uint(id), true
}

func listParams(c *gin.Context) listing.Params {
	return listing.FromValues(c.Request.URL.Query())
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return false
	}
	return true
}

// FlexString accepts a JSON string, number or null. Form clients send zip
// codes and phone numbers either way.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return errors.New("expected string or number")
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) String() string { return string(f) }

// FlexBool accepts booleans, 0/1 and their string forms.
type FlexBool bool

func (f *FlexBool) UnmarshalJSON(b []byte) error {
	switch strings.Trim(strings.ToLower(string(bytes.TrimSpace(b))), `"`) {
	case "true", "1", "yes", "on":
		*f = true
	case "false", "0", "no", "off", "", "null":
		*f = false
	default:
		return errors.New("expected boolean")
	}
	return nil
}

// TagList accepts ["a","b"] or [{"label":"a","value":"a"}]. The label wins
// over the value.
type TagList []string

func (t *TagList) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			out = append(out, s)
			continue
		}
		var obj struct {
			Label string `json:"label"`
			Value string `json:"value"`
		}
		if err := json.Unmarshal(item, &obj); err != nil {
			return errors.New("tags must be strings or {label, value} objects")
		}
		if obj.Label != "" {
			out = append(out, obj.Label)
		} else {
			out = append(out, obj.Value)
		}
	}
	*t = out
	return nil
}

// Date accepts "2006-01-02", RFC 3339 or an empty value.
type Date struct {
	time.Time
	Set bool
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*d = Date{}
		return nil
	}
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	s = strings.TrimSpace(s)
	if s == "" {
		*d = Date{}
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			*d = Date{Time: t.UTC(), Set: true}
			return nil
		}
	}
	return errors.New("invalid date " + strconv.Quote(s))
}

func (d Date) Ptr() *time.Time {
	if !d.Set {
		return nil
	}
	t := d.Time
	return &t
}
