// Copyright (c) 2026 DoodleDog. All rights reserved.
// Author: team@doodledog.app

/*
The HTTP delivery layer for the authentication lifecycle.

It implements the HTML gateway for account creation and session management:
form rendering with anti-forgery tokens, rate-limited form submission, and
access-token cookie handling.

# Error Posture

Credential and duplicate-account failures are re-rendered into the
originating form with a user-facing message. Anti-forgery and rate-limit
violations indicate likely abuse and are surfaced as hard HTTP errors
(403 / 429). No internal detail ever reaches the client.
*/
package auth

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/doodledog/doodledog/internal/platform/apperr"
	"github.com/doodledog/doodledog/internal/platform/constants"
	"github.com/doodledog/doodledog/internal/platform/csrf"
	"github.com/doodledog/doodledog/internal/platform/ctxutil"
	"github.com/doodledog/doodledog/internal/platform/middleware"
	"github.com/doodledog/doodledog/internal/platform/ratelimit"
	"github.com/doodledog/doodledog/internal/platform/render"
	"github.com/doodledog/doodledog/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements the authentication HTML endpoints.
//
// # Scope
//
// This handler manages the user lifecycle entry points: the login and
// registration forms, their submissions, and logout.
type Handler struct {
	authService *Service
	csrfGuard   *csrf.Guard
	limiter     ratelimit.Limiter
	pages       *render.Renderer
}

// NewHandler constructs a new [Handler] with its dependencies.
func NewHandler(service *Service, guard *csrf.Guard, limiter ratelimit.Limiter, pages *render.Renderer) *Handler {
	return &Handler{
		authService: service,
		csrfGuard:   guard,
		limiter:     limiter,
		pages:       pages,
	}
}

// # Page Data

type loginPageData struct {
	Username  string // Always empty: authenticated visitors never see this page.
	CSRFToken string
	FormError string
}

type registerPageData struct {
	Username    string
	CSRFToken   string
	FormError   string
	FieldErrors []apperr.FieldError
}

/*
LoginPage renders the login form.

GET /login

Description: Issues a fresh anti-forgery token (cookie + hidden field) on
every render. Authenticated visitors are redirected away by the router's
RedirectAuthenticated middleware before reaching this handler.
*/
func (handler *Handler) LoginPage(writer http.ResponseWriter, request *http.Request) {
	token, ok := handler.issueCSRF(writer, request)
	if !ok {
		return
	}
	handler.pages.Page(writer, http.StatusOK, "login.html", loginPageData{CSRFToken: token})
}

/*
Login authenticates a user and establishes a session.

POST /login

Description: Applies the rate limiter and anti-forgery check before any
credential work, then verifies the username/password pair and sets the
access-token cookie.

Request:
  - Form: username, password, csrf_token

Response:
  - 303: Redirect to /dashboard with the session cookie set
  - 200: Login form re-rendered with a uniform invalid-credentials message
  - 403: Anti-forgery token mismatch
  - 429: Too many attempts from this address
*/
func (handler *Handler) Login(writer http.ResponseWriter, request *http.Request) {
	if !handler.gateSubmission(writer, request) {
		return
	}

	input := LoginInput{
		Username: request.PostFormValue(FieldUsername),
		Password: request.PostFormValue(FieldPassword),
	}

	validator := &validate.Validator{}
	validator.Required(FieldUsername, input.Username).
		Required(FieldPassword, input.Password)

	if validator.HasErrors() {
		handler.rerenderLogin(writer, request, "Username and password are required")
		return
	}

	session, err := handler.authService.Login(request.Context(), input)
	if err != nil {
		appError := apperr.As(err)
		if appError != nil && appError.HTTPStatus == http.StatusUnauthorized {
			// Form error, not an HTTP error status. No cookie is set.
			handler.rerenderLogin(writer, request, appError.Message)
			return
		}
		handler.internalError(writer, request, err)
		return
	}

	setAccessTokenCookie(writer, session.AccessToken, session.ExpiresAt)
	http.Redirect(writer, request, constants.DashboardPath, http.StatusSeeOther)
}

/*
RegisterPage renders the registration form.

GET /register
*/
func (handler *Handler) RegisterPage(writer http.ResponseWriter, request *http.Request) {
	token, ok := handler.issueCSRF(writer, request)
	if !ok {
		return
	}
	handler.pages.Page(writer, http.StatusOK, "register.html", registerPageData{CSRFToken: token})
}

/*
Register handles the creation of a new user account.

POST /register

Description: Applies the rate limiter and anti-forgery check, validates the
form, and persists a new account. Duplicate identities re-render the form
with a conflict message.

Request:
  - Form: username, email, password, csrf_token

Response:
  - 303: Redirect to /login on success
  - 200: Registration form re-rendered with validation or conflict messages
  - 403: Anti-forgery token mismatch
  - 429: Too many attempts from this address
*/
func (handler *Handler) Register(writer http.ResponseWriter, request *http.Request) {
	if !handler.gateSubmission(writer, request) {
		return
	}

	input := RegisterInput{
		Username: request.PostFormValue(FieldUsername),
		Email:    request.PostFormValue(FieldEmail),
		Password: request.PostFormValue(FieldPassword),
	}

	validator := &validate.Validator{}
	validator.Required(FieldUsername, input.Username).
		MinLen(FieldUsername, input.Username, UsernameMinLength).
		MaxLen(FieldUsername, input.Username, UsernameMaxLength).
		Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		Required(FieldPassword, input.Password).
		MinLen(FieldPassword, input.Password, PasswordMinLength)

	if validator.HasErrors() {
		handler.rerenderRegister(writer, request, "", validator.Errors())
		return
	}

	if _, err := handler.authService.Register(request.Context(), input); err != nil {
		appError := apperr.As(err)
		if appError != nil && appError.HTTPStatus == http.StatusConflict {
			handler.rerenderRegister(writer, request, appError.Message, nil)
			return
		}
		handler.internalError(writer, request, err)
		return
	}

	http.Redirect(writer, request, constants.LoginPath, http.StatusSeeOther)
}

/*
Logout terminates the current session.

GET /logout

Description: Sessions are stateless, so logout is purely client-side: the
access-token cookie is cleared and the visitor is sent back to the login
page. An already-anonymous visitor gets the same redirect.
*/
func (handler *Handler) Logout(writer http.ResponseWriter, request *http.Request) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.AccessTokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	http.Redirect(writer, request, constants.LoginPath, http.StatusSeeOther)
}

// # Submission Gate

// gateSubmission applies, in order, the rate limiter and the anti-forgery
// check to a state-changing form submission. It writes the rejection
// response itself and reports whether the handler may proceed.
func (handler *Handler) gateSubmission(writer http.ResponseWriter, request *http.Request) bool {
	logger := ctxutil.GetLogger(request.Context())

	// 1. Rate limit by client address, before any credential work.
	clientKey := middleware.RealIP(request)
	allowed, err := handler.limiter.Allow(request.Context(), clientKey)
	if err != nil {
		// An unreachable limiter backend must not take authentication down.
		logger.WarnContext(request.Context(), "rate_limiter_unavailable", slog.Any("error", err))
		allowed = true
	}
	if !allowed {
		logger.WarnContext(request.Context(), "auth_rate_limited", slog.String("client", clientKey))
		handler.pages.Error(writer, http.StatusTooManyRequests, apperr.RateLimited().Message)
		return false
	}

	// 2. Anti-forgery: cookie value and form value must match exactly.
	if err := request.ParseForm(); err != nil {
		handler.pages.Error(writer, http.StatusBadRequest, "Invalid form submission")
		return false
	}

	cookieValue := ""
	if cookie, err := request.Cookie(constants.CSRFCookieName); err == nil {
		cookieValue = cookie.Value
	}

	if !handler.csrfGuard.Check(cookieValue, request.PostFormValue(FieldCSRF)) {
		logger.WarnContext(request.Context(), "csrf_rejected", slog.String("client", clientKey))
		handler.pages.Error(writer, http.StatusForbidden, "The form has expired. Please go back and try again.")
		return false
	}

	return true
}

// # Rendering Helpers

// rerenderLogin shows the login form again with a message and a fresh
// anti-forgery token.
func (handler *Handler) rerenderLogin(writer http.ResponseWriter, request *http.Request, message string) {
	token, ok := handler.issueCSRF(writer, request)
	if !ok {
		return
	}
	handler.pages.Page(writer, http.StatusOK, "login.html", loginPageData{
		CSRFToken: token,
		FormError: message,
	})
}

// rerenderRegister shows the registration form again with messages and a
// fresh anti-forgery token.
func (handler *Handler) rerenderRegister(writer http.ResponseWriter, request *http.Request, message string, fieldErrors []apperr.FieldError) {
	token, ok := handler.issueCSRF(writer, request)
	if !ok {
		return
	}
	handler.pages.Page(writer, http.StatusOK, "register.html", registerPageData{
		CSRFToken:   token,
		FormError:   message,
		FieldErrors: fieldErrors,
	})
}

// issueCSRF generates a fresh anti-forgery token and sets its cookie. A
// generation failure (exhausted entropy source) is a hard 500.
func (handler *Handler) issueCSRF(writer http.ResponseWriter, request *http.Request) (string, bool) {
	token, err := handler.csrfGuard.Issue()
	if err != nil {
		handler.internalError(writer, request, err)
		return "", false
	}

	http.SetCookie(writer, &http.Cookie{
		Name:     constants.CSRFCookieName,
		Value:    token,
		Path:     "/",
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	return token, true
}

// setAccessTokenCookie installs the session cookie with a lifetime equal to
// the token's.
func setAccessTokenCookie(writer http.ResponseWriter, token string, expiresAt time.Time) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.AccessTokenCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(AccessTokenTTL.Seconds()),
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

// internalError logs the cause and renders the generic error page.
func (handler *Handler) internalError(writer http.ResponseWriter, request *http.Request, err error) {
	ctxutil.GetLogger(request.Context()).ErrorContext(request.Context(),
		"auth_handler_error", slog.Any("error", err))
	handler.pages.Error(writer, http.StatusInternalServerError, "An unexpected error occurred")
}
