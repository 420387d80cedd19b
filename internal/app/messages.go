package app

import "github.com/jsamuelsen11/todotags/internal/domain"

// Notice texts. They are catalog keys; the locale files translate them.
const (
	MsgTodoCreated      = "Todo created"
	MsgTodoUpdated      = "Todo updated"
	MsgTodoDeleted      = "Todo deleted"
	MsgTodoCompleted    = "Todo completed"
	MsgTodoUncompleted  = "Todo marked as not completed"
	MsgTagCreated       = "Tag created"
	MsgTagUpdated       = "Tag updated"
	MsgTagDeleted       = "Tag deleted"
	MsgAccountCreated   = "Account created"
	MsgSignedIn         = "Signed in"
	MsgSignedInProvider = "Signed in with %s"
	MsgSignedOut        = "Signed out"
)

// kindMessages holds the user-facing text for every error kind.
var kindMessages = map[domain.Kind]string{
	domain.KindUserNotFound:    "User not found",
	domain.KindWrongPassword:   "Wrong password",
	domain.KindEmailInUse:      "This email address is already in use",
	domain.KindWeakPassword:    "Password is too weak",
	domain.KindInvalidEmail:    "Invalid email address",
	domain.KindTooManyRequests: "Too many requests. Please wait and try again",
	domain.KindAuthUnknown:     "Authentication failed",

	domain.KindPermissionDenied:  "Permission denied",
	domain.KindNotFound:          "Data not found",
	domain.KindAlreadyExists:     "Data already exists",
	domain.KindResourceExhausted: "Resource limit reached",
	domain.KindUnavailable:       "Service unavailable. Please try again later",
	domain.KindUnknown:           "A service error occurred",

	domain.KindInvalidArgument: "Invalid input",
	domain.KindDuplicateName:   "Tag name is already in use",
	domain.KindUnauthenticated: "Please sign in",
}

// fallbackMessage is shown for a kind with no entry.
const fallbackMessage = "An unexpected error occurred"

// KindMessage returns the English catalog key for kind.
func KindMessage(kind domain.Kind) string {
	if msg, ok := kindMessages[kind]; ok {
		return msg
	}
	return fallbackMessage
}

// providerLabels are the display names of federated providers.
var providerLabels = map[string]string{
	"google": "Google",
}

func providerLabel(id string) string {
	if label, ok := providerLabels[id]; ok {
		return label
	}
	return id
}
