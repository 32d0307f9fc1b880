package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"wordrush/domain"
)

var (
	ErrMissingTokenStr          = "missing-token"
	ErrExpiredTokenStr          = "expired-token"
	ErrInvalidRequestFormatStr  = "bad-request-format"
	ErrInvalidCredentialsStr    = "invalid-credentials"
	ErrUnknownStr               = "unknown-error"
	ErrUsernameAlreadyExistsStr = "username-already-exists"
	ErrWeakPasswordStr          = "weak-password"
	ErrPasswordTooLongStr       = "password-too-long"
	ErrInvalidUsernameFormatStr = "invalid-username-format"
)

type authHandler struct {
	authService  AuthService
	cookieMaxAge time.Duration
}

func NewAuthHandler(service AuthService, cookieMaxAge time.Duration) *authHandler {
	return &authHandler{authService: service, cookieMaxAge: cookieMaxAge}
}

// redactToken keeps enough of a bad token to correlate abuse reports
// without logging a usable credential.
func redactToken(token string) string {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return token
	}
	sig := []rune(parts[2])
	if len(sig) > 10 {
		return parts[0] + "." + parts[1] + "." + string(sig[:10]) + strings.Repeat("*", len(sig)-10)
	}
	return token
}

func (ah *authHandler) RequireAuthMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, err := ctx.Cookie("token")
		if err != nil {
			ctx.String(http.StatusUnauthorized, ErrMissingTokenStr)
			ctx.Abort()
			return
		}

		id, err := ah.authService.VerifyToken(token)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrExpiredToken):
				slog.Info("auth: token expired", "ip", ctx.ClientIP())
				ctx.String(http.StatusUnauthorized, ErrExpiredTokenStr)
			default:
				slog.Warn("auth: suspicious token attempt",
					"ip", ctx.ClientIP(),
					"user_agent", ctx.Request.UserAgent(),
					"error", err.Error(),
					"token", redactToken(token),
				)
				ctx.String(http.StatusUnauthorized, ErrUnknownStr)
			}
			ctx.Abort()
			return
		}

		ctx.Set("id", id)
		ctx.Next()
	}
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (ah *authHandler) setSessionCookie(ctx *gin.Context, token string) {
	ctx.SetSameSite(http.SameSiteNoneMode)
	ctx.SetCookie("token", token, int(ah.cookieMaxAge.Seconds()), "/", "", true, true)
}

func (ah *authHandler) SignupHandler(ctx *gin.Context) {
	var creds credentials
	if err := ctx.ShouldBindJSON(&creds); err != nil {
		ctx.String(http.StatusBadRequest, ErrInvalidRequestFormatStr)
		ctx.Abort()
		return
	}

	token, err := ah.authService.Signup(ctx.Request.Context(), creds.Username, creds.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrUsernameAlreadyExists):
			ctx.String(http.StatusConflict, ErrUsernameAlreadyExistsStr)
		case errors.Is(err, ErrWeakPassword):
			ctx.String(http.StatusBadRequest, ErrWeakPasswordStr)
		case errors.Is(err, ErrPasswordTooLong):
			ctx.String(http.StatusBadRequest, ErrPasswordTooLongStr)
		case errors.Is(err, ErrInvalidUsernameFormat):
			ctx.String(http.StatusBadRequest, ErrInvalidUsernameFormatStr)
		default:
			slog.Error("signup failed", "ip", ctx.ClientIP(), "error", err.Error())
			ctx.String(http.StatusInternalServerError, ErrUnknownStr)
		}
		ctx.Abort()
		return
	}

	ah.setSessionCookie(ctx, token)
	ctx.Status(http.StatusCreated)
}

func (ah *authHandler) LoginHandler(ctx *gin.Context) {
	var creds credentials
	if err := ctx.ShouldBindJSON(&creds); err != nil {
		ctx.String(http.StatusBadRequest, ErrInvalidRequestFormatStr)
		ctx.Abort()
		return
	}

	token, err := ah.authService.Login(ctx.Request.Context(), creds.Username, creds.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrUsernameNotFound), errors.Is(err, ErrIncorrectPassword):
			// Same answer for both so usernames cannot be probed.
			ctx.String(http.StatusUnauthorized, ErrInvalidCredentialsStr)
		default:
			slog.Error("login failed", "ip", ctx.ClientIP(), "error", err.Error())
			ctx.String(http.StatusInternalServerError, ErrUnknownStr)
		}
		ctx.Abort()
		return
	}

	ah.setSessionCookie(ctx, token)
	ctx.Status(http.StatusOK)
}

func (ah *authHandler) RefreshSessionHandler(ctx *gin.Context) {
	token, err := ctx.Cookie("token")
	if err != nil {
		ctx.String(http.StatusUnauthorized, ErrMissingTokenStr)
		ctx.Abort()
		return
	}

	fresh, err := ah.authService.RefreshToken(ctx.Request.Context(), token)
	if err != nil {
		ctx.String(http.StatusUnauthorized, ErrUnknownStr)
		ctx.Abort()
		return
	}

	ah.setSessionCookie(ctx, fresh)
	ctx.Status(http.StatusOK)
}

func (ah *authHandler) LogoutHandler(ctx *gin.Context) {
	ctx.SetCookie("token", "", -1, "/", "", true, true)
	ctx.Status(http.StatusOK)
}
