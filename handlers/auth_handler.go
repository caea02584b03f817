package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"members-only/config"
	"members-only/helper"
	"members-only/middleware"
	"members-only/models"
	"members-only/services"
)

var signUpMessages = map[string]string{
	"first_name":       "First name required.",
	"last_name":        "Last name required.",
	"username":         "Username required.",
	"password":         "Password required.",
	"confirm_password": "Confirm password must match password.",
}

type AuthHandler struct {
	cfg         config.Config
	authService services.AuthService
	Helper      *helper.HTTPHelper
}

func NewAuthHandler(cfg config.Config, authService services.AuthService, h *helper.HTTPHelper) *AuthHandler {
	return &AuthHandler{cfg: cfg, authService: authService, Helper: h}
}

func (h *AuthHandler) ShowLogIn(c *gin.Context) {
	c.HTML(http.StatusOK, "log-in.html", gin.H{
		"title":       "Log In",
		"currentUser": middleware.GetCurrentUser(c),
	})
}

func (h *AuthHandler) LogIn(c *gin.Context) {
	var form models.LogInForm
	if err := c.ShouldBind(&form); err != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}
	form.Sanitize()

	_, token, err := h.authService.LogIn(form)
	if err != nil {
		var authErr models.ErrorUnauthorized
		if errors.As(err, &authErr) {
			// Bad credentials land on the board too; the only difference
			// from a successful log-in is that no session cookie is set.
			c.Redirect(http.StatusFound, "/")
			return
		}
		h.Helper.SendServerError(c, err)
		return
	}

	c.SetCookie(middleware.SessionCookie, token, int(h.cfg.SessionTTL.Seconds()), "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) ShowSignUp(c *gin.Context) {
	c.HTML(http.StatusOK, "sign-up.html", gin.H{
		"title":       "Sign Up",
		"currentUser": middleware.GetCurrentUser(c),
	})
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var form models.SignUpForm
	if err := c.ShouldBind(&form); err != nil {
		h.Helper.SendServerError(c, err)
		return
	}
	form.Sanitize()

	// Render the form again with sanitized values and error messages.
	if fieldErrors := h.Helper.ValidateForm(form, signUpMessages); len(fieldErrors) > 0 {
		c.HTML(http.StatusOK, "sign-up.html", gin.H{
			"title":       "Sign Up",
			"currentUser": middleware.GetCurrentUser(c),
			"user":        form,
			"errors":      fieldErrors,
		})
		return
	}

	if _, err := h.authService.SignUp(form); err != nil {
		var conflict models.ErrorConflict
		if errors.As(err, &conflict) {
			c.HTML(http.StatusConflict, "sign-up.html", gin.H{
				"title":       "Sign Up",
				"currentUser": middleware.GetCurrentUser(c),
				"user":        form,
				"errors":      []models.FieldError{{Field: "username", Message: conflict.Message}},
			})
			return
		}
		h.Helper.SendServerError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) ShowBecomeMember(c *gin.Context) {
	user := middleware.GetCurrentUser(c)
	if user.IsMember {
		c.Redirect(http.StatusFound, "/")
		return
	}

	c.HTML(http.StatusOK, "become-member.html", gin.H{
		"title":       "Become a Member",
		"currentUser": user,
	})
}

func (h *AuthHandler) BecomeMember(c *gin.Context) {
	user := middleware.GetCurrentUser(c)

	var form models.BecomeMemberForm
	if err := c.ShouldBind(&form); err != nil {
		c.Redirect(http.StatusFound, "/become-member")
		return
	}
	form.Sanitize()

	if fieldErrors := h.Helper.ValidateForm(form, nil); len(fieldErrors) > 0 {
		c.Redirect(http.StatusFound, "/become-member")
		return
	}

	upgraded, err := h.authService.BecomeMember(user, form.MemberPassword)
	if err != nil {
		h.Helper.SendServerError(c, err)
		return
	}
	if !upgraded {
		c.Redirect(http.StatusFound, "/become-member")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) LogOut(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}
