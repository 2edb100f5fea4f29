package controllers

import (
	"github.com/shashiranjanraj/maison/app/services"
	"github.com/shashiranjanraj/maison/pkg/ctx"
	"gorm.io/gorm"
)

// AuthController exposes register and login.
type AuthController struct {
	service *services.AuthService
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{service: services.NewAuthService(db)}
}

type credentialsInput struct {
	Username string `json:"username" validate:"required,alpha_dash,min=3,max=30"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// Register creates an account and returns a session token.
func (c *AuthController) Register(cx *ctx.Context) {
	var in credentialsInput
	if !cx.BindJSON(&in) {
		return
	}

	session, err := c.service.Register(in.Username, in.Password)
	if err != nil {
		cx.Fail(err)
		return
	}

	cx.Created(session)
}

// Login checks credentials and returns a session token.
func (c *AuthController) Login(cx *ctx.Context) {
	var in credentialsInput
	if !cx.BindJSON(&in) {
		return
	}

	session, err := c.service.Login(in.Username, in.Password)
	if err != nil {
		cx.Fail(err)
		return
	}

	cx.Success(session)
}

// Me returns the authenticated caller's identity.
func (c *AuthController) Me(cx *ctx.Context) {
	ident, ok := cx.Identity()
	if !ok {
		cx.Unauthorized()
		return
	}
	cx.Success(ident)
}
