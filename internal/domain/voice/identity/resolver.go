// Package identity derives the display name used to personalize the summary prompt
package identity

import "github.com/Conte777/audio-tldr/internal/domain/voice/entities"

// Fallback is used when neither the forward origin nor the sender has a name
const Fallback = "Nutzer"

// Resolve returns the display name for a message. First match wins:
// forwarded sender name, forwarded user's username, sender's username,
// Fallback. Forwards from chats and channels carry no person name.
func Resolve(from *entities.User, forward *entities.ForwardOrigin) string {
	if name := fromForward(forward); name != "" {
		return name
	}
	if from != nil && from.Username != "" {
		return from.Username
	}
	return Fallback
}

func fromForward(forward *entities.ForwardOrigin) string {
	if forward == nil {
		return ""
	}

	switch forward.Type {
	case entities.ForwardOriginHiddenUser:
		return forward.SenderName
	case entities.ForwardOriginUser:
		return forward.Username
	default:
		return ""
	}
}
