package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	types "github.com/freightdesk/fleetadmin/internal/domain"
	"github.com/freightdesk/fleetadmin/internal/http/response"
	"github.com/freightdesk/fleetadmin/internal/pkg/logger"
	"github.com/freightdesk/fleetadmin/internal/services"
)

type AuthHandler struct {
	log         *logger.Logger
	authService services.AuthService
}

func NewAuthHandler(log *logger.Logger, authService services.AuthService) *AuthHandler {
	return &AuthHandler{log: log.With("handler", "AuthHandler"), authService: authService}
}

type userView struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Branch     string    `json:"branch"`
	OfficeType string    `json:"officeType"`
	Role       int       `json:"role"`
	Authority  []string  `json:"authority"`
}

func newUserView(u *types.User) userView {
	return userView{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Phone:      u.PhoneNumber,
		Branch:     u.Branch,
		OfficeType: u.OfficeType,
		Role:       u.Role,
		Authority:  u.Authority(),
	}
}

func (ah *AuthHandler) SignUp(c *gin.Context) {
	var req struct {
		UserName   string     `json:"userName"`
		Phone      FlexString `json:"phone"`
		Email      string     `json:"email"`
		Branch     string     `json:"branch"`
		OfficeType string     `json:"officeType"`
		Password   string     `json:"password"`
	}
	if !bindJSON(c, &req) {
		return
	}
	user, err := ah.authService.SignUp(c.Request.Context(), services.SignUpInput{
		Name:       req.UserName,
		Phone:      req.Phone.String(),
		Email:      req.Email,
		Branch:     req.Branch,
		OfficeType: req.OfficeType,
		Password:   req.Password,
	})
	if err != nil {
		response.RespondFailure(c, ah.log, err)
		return
	}
	response.RespondData(c, http.StatusCreated, "User created successfully", gin.H{"id": user.ID})
}

func (ah *AuthHandler) SignIn(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !bindJSON(c, &req) {
		return
	}
	session, err := ah.authService.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.RespondFailure(c, ah.log, err)
		return
	}
	response.RespondOK(c, sessionPayload(session))
}

func (ah *AuthHandler) Refresh(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if !bindJSON(c, &req) {
		return
	}
	session, err := ah.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		response.RespondFailure(c, ah.log, err)
		return
	}
	response.RespondOK(c, sessionPayload(session))
}

func (ah *AuthHandler) SignOut(c *gin.Context) {
	if err := ah.authService.SignOut(c.Request.Context()); err != nil {
		response.RespondFailure(c, ah.log, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

func (ah *AuthHandler) Me(c *gin.Context) {
	user, err := ah.authService.Me(c.Request.Context())
	if err != nil {
		response.RespondFailure(c, ah.log, err)
		return
	}
	response.RespondOK(c, gin.H{"user": newUserView(user)})
}

func sessionPayload(s *services.Session) gin.H {
	return gin.H{
		"access_token":  s.AccessToken,
		"refresh_token": s.RefreshToken,
		"expires_in":    int(s.ExpiresIn.Seconds()),
		"user":          newUserView(s.User),
	}
}
