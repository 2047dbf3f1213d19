// Package coach implements the conversational meal recommendation flow:
// an OpenAI-compatible chat client plus the tool-calling loop that lets
// the model query the menu database before answering.
package coach

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/dg4329-hash/menumap/internal/tools"
)

// maxToolRounds bounds how many times the model may come back with tool
// calls before we give up on the conversation.
const maxToolRounds = 8

// Recommender defines the recommendation operation consumed by the HTTP
// layer.
type Recommender interface {
	// Chat answers one free-form meal question.
	Chat(ctx context.Context, message string) (string, error)
}

// Coach answers free-form meal questions by letting the model call menu
// tools until it has enough data to respond.
type Coach struct {
	client   *Client
	registry *tools.Registry
	logger   zerolog.Logger
}

// NewCoach wires the chat client to the tool registry.
func NewCoach(client *Client, registry *tools.Registry, logger zerolog.Logger) *Coach {
	return &Coach{
		client:   client,
		registry: registry,
		logger:   logger.With().Str("component", "coach").Logger(),
	}
}

// Chat runs one recommendation conversation and returns the assistant's
// final text. Tool failures are fed back to the model as error payloads
// rather than aborting the loop.
func (c *Coach) Chat(ctx context.Context, message string) (string, error) {
	messages := []Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: message},
	}
	defs := c.registry.Definitions()

	for round := 0; round < maxToolRounds; round++ {
		reply, err := c.client.ChatCompletion(ctx, messages, defs)
		if err != nil {
			return "", err
		}

		if len(reply.ToolCalls) == 0 {
			c.logger.Debug().Int("rounds", round).Msg("chat completed")
			return reply.Content, nil
		}

		c.logger.Debug().
			Int("round", round).
			Int("tool_calls", len(reply.ToolCalls)).
			Msg("executing tool calls")

		messages = append(messages, *reply)
		for _, call := range reply.ToolCalls {
			result := c.registry.Execute(ctx, call.Function.Name, json.RawMessage(call.Function.Arguments))
			messages = append(messages, Message{
				Role:       "tool",
				Content:    string(result),
				ToolCallID: call.ID,
			})
		}
	}

	return "", fmt.Errorf("conversation exceeded %d tool rounds without an answer", maxToolRounds)
}
