package pages

// Paths of the screens and their htmx endpoints.
const (
	HomePath           = "/"
	LoginPath          = "/login"
	LoginValidatePath  = "/login/validate"
	LogoutPath         = "/logout"
	SignUpPath         = "/sign-up"
	SignUpValidatePath = "/sign-up/validate"
)

// Element ids targeted by out-of-band swaps.
const (
	LoginFormID    = "login-form"
	LoginSubmitID  = "login-submit"
	SignUpFormID   = "signup-form"
	SignUpSubmitID = "signup-submit"
)
