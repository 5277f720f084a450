package constants

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Account event types
const (
	EventAccountRegistered    = "account.registered"
	EventAccountVerified      = "account.verified"
	EventAccountPasswordReset = "account.password_reset"
	EventAccountDeleted       = "account.deleted"
)

// Mail subjects for code delivery
const (
	SubjectVerificationCode   = "verification code"
	SubjectForgotPasswordCode = "Forgot password code"
)
