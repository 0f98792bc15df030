package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Conte777/audio-tldr/internal/domain/voice/entities"
)

func TestResolve(t *testing.T) {
	sender := &entities.User{ID: 1, Username: "alice"}

	tests := []struct {
		name    string
		from    *entities.User
		forward *entities.ForwardOrigin
		want    string
	}{
		{
			name:    "forwarded with sender name",
			from:    sender,
			forward: &entities.ForwardOrigin{Type: entities.ForwardOriginHiddenUser, SenderName: "Oma Erna"},
			want:    "Oma Erna",
		},
		{
			name:    "forwarded from user with username",
			from:    sender,
			forward: &entities.ForwardOrigin{Type: entities.ForwardOriginUser, Username: "bob"},
			want:    "bob",
		},
		{
			name:    "forwarded from user without username",
			from:    sender,
			forward: &entities.ForwardOrigin{Type: entities.ForwardOriginUser},
			want:    "alice",
		},
		{
			name:    "forwarded from chat",
			from:    sender,
			forward: &entities.ForwardOrigin{Type: entities.ForwardOriginChat},
			want:    "alice",
		},
		{
			name:    "forwarded from channel without sender",
			from:    nil,
			forward: &entities.ForwardOrigin{Type: entities.ForwardOriginChannel},
			want:    Fallback,
		},
		{
			name: "direct with username",
			from: sender,
			want: "alice",
		},
		{
			name: "direct without username",
			from: &entities.User{ID: 2},
			want: Fallback,
		},
		{
			name: "no sender at all",
			want: Fallback,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.from, tt.forward)
			assert.Equal(t, tt.want, got)
			assert.NotEmpty(t, got)
		})
	}
}
