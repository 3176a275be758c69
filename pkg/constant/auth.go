package constant

const (
	ALREADY_EXISTS       = "%s already exists"
	CREATED              = "%s created successfully"
	INVALID_REQUEST      = "Invalid request payload"
	CANT_FIND            = "%s not found"
	INVALID_CREDENTIALS  = "invalid email or password"
	SOMETHING_WENT_WRONG = "something went wrong"
	INVALID_TOKEN        = "Invalid or expired token"
	TOKEN_EXPIRED        = "Token has expired"
	UNAUTHORIZED         = "Unauthorized"
	RESET_EMAIL_SENT     = "If that email exists, a reset link has been sent."
	PASSWORD_RESET_OK    = "Password reset successfully"
)

// SessionCookie is the cookie the server sets today. The remaining names are
// legacy schemes still accepted on inbound requests; they are tried in order.
const SessionCookie = "folio_session"

var SessionCookieCandidates = []string{
	SessionCookie,
	"__Secure-folio_session",
	"portfolio_session",
	"__Secure-portfolio_session",
}

const (
	LoginPath     = "/admin/login"
	DashboardPath = "/admin"
)
