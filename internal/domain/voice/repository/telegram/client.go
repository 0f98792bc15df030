// Package telegram contains the Telegram Bot API repository: file download
// and text replies
package telegram

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	voiceerrors "github.com/Conte777/audio-tldr/internal/domain/voice/errors"
	pkgerrors "github.com/Conte777/audio-tldr/pkg/errors"
)

// Constants for Telegram API
const (
	MaxMessageLength = 4096
	RequestTimeout   = 30 * time.Second
	DownloadTimeout  = 120 * time.Second

	// RequestsPerSecond caps Bot API calls across all chats
	RequestsPerSecond = 30
)

// API is the subset of *tgbot.Bot used by Client
type API interface {
	GetFile(ctx context.Context, params *tgbot.GetFileParams) (*models.File, error)
	FileDownloadLink(f *models.File) string
	SendMessage(ctx context.Context, params *tgbot.SendMessageParams) (*models.Message, error)
}

// Client implements deps.MessageSender and deps.MediaFetcher
type Client struct {
	api         API
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	logger      zerolog.Logger
}

// NewClient creates a new Telegram repository client
func NewClient(api API, logger zerolog.Logger) *Client {
	return &Client{
		api:    api,
		logger: logger,
		httpClient: &http.Client{
			Timeout: DownloadTimeout,
		},
		rateLimiter: rate.NewLimiter(rate.Every(time.Second/RequestsPerSecond), RequestsPerSecond),
	}
}

// SendMessage sends text to chatID, splitting it into several messages when
// it exceeds the Telegram length limit
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string) error {
	if text == "" {
		c.logger.Warn().Int64("chat_id", chatID).Msg("Attempt to send empty message")
		return voiceerrors.ErrEmptyMessage
	}

	parts := splitMessage(text, MaxMessageLength)
	for i, part := range parts {
		if err := c.sendSingleMessage(ctx, chatID, part); err != nil {
			c.logger.Error().
				Int64("chat_id", chatID).
				Int("part", i+1).
				Int("total_parts", len(parts)).
				Err(err).
				Msg("Failed to send message")
			return pkgerrors.NewTransportError("sending message", err)
		}
	}

	c.logger.Debug().
		Int64("chat_id", chatID).
		Int("text_length", len(text)).
		Int("parts", len(parts)).
		Msg("Message sent")
	return nil
}

func (c *Client) sendSingleMessage(ctx context.Context, chatID int64, text string) error {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	_, err := c.api.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
	return err
}

// Fetch resolves fileID via getFile and streams the file into dst,
// truncating anything already there
func (c *Client) Fetch(ctx context.Context, fileID, dst string) error {
	file, err := c.getFile(ctx, fileID)
	if err != nil {
		return pkgerrors.NewTransportError("resolving file", err)
	}

	link := c.api.FileDownloadLink(file)
	written, err := c.download(ctx, link, dst)
	if err != nil {
		return pkgerrors.NewTransportError("downloading file", err)
	}

	c.logger.Debug().
		Str("file_id", fileID).
		Str("path", dst).
		Int64("bytes", written).
		Msg("File downloaded")
	return nil
}

func (c *Client) getFile(ctx context.Context, fileID string) (*models.File, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	return c.api.GetFile(ctx, &tgbot.GetFileParams{FileID: fileID})
}

func (c *Client) download(ctx context.Context, link, dst string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	out, err := os.Create(dst)
	if err != nil {
		return 0, fmt.Errorf("failed to create file: %w", err)
	}

	written, err := io.Copy(out, resp.Body)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return written, fmt.Errorf("failed to write file: %w", err)
	}
	return written, nil
}
