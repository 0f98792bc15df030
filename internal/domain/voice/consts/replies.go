// Package consts contains constants for the voice domain
package consts

// Reply texts sent back to the chat
const (
	NoTranscription = "No transcription available"
	NoResponse      = "no response"
	SummaryPrefix   = "TL;DR: "
)

// TempFileExt is the extension of downloaded media files
const TempFileExt = ".ogg"

// Labels used for metrics and logs
const (
	StageDownload = "download"
	StageReply    = "reply"

	ServiceTranscription = "transcription"
	ServiceSummary       = "summary"
)
