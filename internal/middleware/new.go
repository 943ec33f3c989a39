package middleware

import (
	"mediasearch-srv/pkg/log"
	"mediasearch-srv/pkg/scope"
)

// CookieConfig names the cookie carrying the access token.
type CookieConfig struct {
	Name string
}

type Middleware struct {
	l            log.Logger
	jwtManager   scope.Manager
	cookieConfig CookieConfig
}

func New(l log.Logger, jwtManager scope.Manager, cookieConfig CookieConfig) Middleware {
	return Middleware{
		l:            l,
		jwtManager:   jwtManager,
		cookieConfig: cookieConfig,
	}
}
