package models

import "context"

// MessageEvent is a chat message as seen by the completion relay
type MessageEvent struct {
	EventID    string
	GuildID    string
	ChannelID  string
	MessageID  string
	AuthorID   string
	AuthorName string
	Content    string
	IsFromBot  bool
	// MentionsBot is true when the bot user is among the message mentions
	MentionsBot bool
}

// Reply describes what should be sent back for an event.
type Reply struct {
	Content string
	// Deferred means the interaction was acknowledged and the reply must edit that response
	Deferred bool
}

// AckFunc acknowledges an interaction before slow work starts
type AckFunc func(ctx context.Context) error
