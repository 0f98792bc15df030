// Package entities contains domain entities
package entities

import "time"

// MediaKind identifies the attachment carried by an incoming message
type MediaKind string

const (
	MediaKindVoice MediaKind = "voice"
	MediaKindAudio MediaKind = "audio"
	MediaKindOther MediaKind = "other"
)

// IsAudio reports whether the pipeline handles this kind
func (k MediaKind) IsAudio() bool {
	return k == MediaKindVoice || k == MediaKindAudio
}

// User is the sender of a message
type User struct {
	ID       int64
	Username string
}

// ForwardOriginType identifies who a forwarded message originally came from
type ForwardOriginType string

const (
	ForwardOriginUser       ForwardOriginType = "user"
	ForwardOriginHiddenUser ForwardOriginType = "hidden_user"
	ForwardOriginChat       ForwardOriginType = "chat"
	ForwardOriginChannel    ForwardOriginType = "channel"
)

// ForwardOrigin describes the original sender of a forwarded message.
// Username is set for ForwardOriginUser, SenderName for ForwardOriginHiddenUser.
type ForwardOrigin struct {
	Type       ForwardOriginType
	Username   string
	SenderName string
}

// IncomingMessage is one unit of inbound chat data
type IncomingMessage struct {
	ChatID    int64
	MessageID int
	Kind      MediaKind
	FileID    string
	From      *User
	Forward   *ForwardOrigin
}

// Outcome describes what the pipeline did with one message.
// TranscriptionErr and SummaryErr hold the remote failures that were
// downgraded to absent results.
type Outcome struct {
	ChatID           int64
	MessageID        int
	Kind             MediaKind
	DisplayName      string
	Transcript       string
	HasTranscript    bool
	Summary          string
	HasSummary       bool
	TranscriptionErr error
	SummaryErr       error
	RepliesSent      int
	ProcessedAt      time.Time
}

// Status returns a short label for metrics and logs
func (o *Outcome) Status() string {
	switch {
	case !o.Kind.IsAudio():
		return "ignored"
	case !o.HasTranscript:
		return "no_transcript"
	case !o.HasSummary:
		return "no_summary"
	default:
		return "summarized"
	}
}
