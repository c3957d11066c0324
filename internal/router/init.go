package router

import (
	"github.com/oksasatya/go-ddd-identity/internal/container"
	handlers "github.com/oksasatya/go-ddd-identity/internal/interface/http"
	"github.com/oksasatya/go-ddd-identity/internal/interface/middleware"
	"github.com/oksasatya/go-ddd-identity/internal/router/modules"
	"github.com/oksasatya/go-ddd-identity/pkg/helpers"
	mailtpl "github.com/oksasatya/go-ddd-identity/pkg/mailer/templates"
)

func buildUserHandler(c *container.Container) *handlers.UserHandler {
	h := handlers.NewUserHandler(c.CreateUser, c.GetUserInfo, c.Logger)
	if c.Queue != nil && c.Config.MailSendEnabled {
		h.WithWelcomeEmail(c.Queue, mailtpl.EmailData{
			AppName:     c.Config.AppName,
			CompanyName: c.Config.CompanyName,
			SupportURL:  c.Config.SupportURL,
		})
	}
	return h
}

func buildLimits(c *container.Container) modules.Limits {
	l := modules.Limits{
		Store:  c.RateStore(),
		Window: c.Config.RateLimitWindow,
		SignIn: c.Config.RateLimitSignIn,
		API:    c.Config.RateLimitAPI,
		Logger: c.Logger,
	}
	if !c.Config.RateLimitPrivate {
		l.Allow = middleware.AllowPrivateIP()
	}
	return l
}

// InitModules builds the handlers from c and adds every feature module to r.
// Call once at startup, before RegisterAll.
func InitModules(r *Registry, c *container.Container) {
	limits := buildLimits(c)
	cookies := helpers.NewCookie(c.Config.AuthCookieName, c.Config.DomainName, c.Config.CookieSecure)

	r.Add(modules.NewUserModule(buildUserHandler(c), c.Config.AuthCookieName, limits))
	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(c.SignIn, cookies, c.Logger), limits))
	if c.Config.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(limits))
	}
}
