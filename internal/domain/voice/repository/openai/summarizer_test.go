package openai

import (
	"context"
	"errors"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/Conte777/audio-tldr/pkg/errors"
)

type mockChatModel struct {
	reply *schema.Message
	err   error
	input []*schema.Message
}

func (m *mockChatModel) Generate(_ context.Context, input []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	m.input = input
	return m.reply, m.err
}

func (m *mockChatModel) Stream(context.Context, []*schema.Message, ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("not implemented")
}

func TestSummarizer_Summarize(t *testing.T) {
	m := &mockChatModel{reply: schema.AssistantMessage("Alice kommt später.", nil)}
	s := NewSummarizerWithModel(m, zerolog.Nop())

	summary, err := s.Summarize(context.Background(), "Hallo, ich komme später.", "alice")

	require.NoError(t, err)
	assert.Equal(t, "Alice kommt später.", summary)

	require.Len(t, m.input, 2)
	assert.Equal(t, schema.System, m.input[0].Role)
	assert.Contains(t, m.input[0].Content, "von einer Person namens alice welche")
	assert.Contains(t, m.input[0].Content, "ohne 'TL;DR' prefix")
	assert.Equal(t, schema.User, m.input[1].Role)
	assert.Equal(t, "Hallo, ich komme später.", m.input[1].Content)
}

func TestSummarizer_EmptyContent(t *testing.T) {
	m := &mockChatModel{reply: schema.AssistantMessage("", nil)}
	s := NewSummarizerWithModel(m, zerolog.Nop())

	summary, err := s.Summarize(context.Background(), "text", "Nutzer")

	require.NoError(t, err)
	assert.Empty(t, summary)
}

func TestSummarizer_Failure(t *testing.T) {
	m := &mockChatModel{err: errors.New("context deadline exceeded")}
	s := NewSummarizerWithModel(m, zerolog.Nop())

	_, err := s.Summarize(context.Background(), "text", "Nutzer")

	require.Error(t, err)
	assert.True(t, pkgerrors.IsRemoteServiceError(err))
}
