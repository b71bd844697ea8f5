package http

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/concordlib/concord/internal/core/domain"
)

// IngestResponse summarizes a reconciled message for the caller.
type IngestResponse struct {
	MessageID   domain.Snowflake   `json:"message_id"`
	GuildID     domain.Snowflake   `json:"guild_id,omitempty"`
	ChannelID   domain.Snowflake   `json:"channel_id"`
	ChannelType domain.ChannelType `json:"channel_type"`
	AuthorID    domain.Snowflake   `json:"author_id"`
	AuthorName  string             `json:"author_name"`
	Member      bool               `json:"member"`
}

func (s *Server) handleIngestMessage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)

		return
	}

	var payload domain.MessagePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)

		return
	}

	if payload.ID == 0 || payload.ChannelID == 0 || payload.Author.ID == 0 {
		http.Error(w, "Missing message, channel or author id", http.StatusBadRequest)

		return
	}

	message := s.app.ReconcileMessage(payload)

	s.logger.Debug("reconciled message",
		zap.String("message_id", message.ID.String()),
		zap.String("author", message.AuthorDisplayName()),
	)

	resp := IngestResponse{
		MessageID:   message.ID,
		GuildID:     message.GuildID,
		ChannelID:   message.ChannelID,
		ChannelType: message.Channel.Type,
		AuthorID:    message.Author.ID,
		AuthorName:  message.AuthorDisplayName(),
		Member:      message.Member != nil,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}
