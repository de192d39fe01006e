package models

import "time"

// Message is an inbound client message in the salon inbox.
type Message struct {
	ID         string     `bson:"id" json:"id"`
	ClientID   string     `bson:"clientId,omitempty" json:"clientId,omitempty"`
	ClientName string     `bson:"clientName,omitempty" json:"clientName,omitempty"`
	Channel    string     `bson:"channel,omitempty" json:"channel,omitempty"` // where the message came from, informational only
	Text       string     `bson:"text" json:"text"`
	Read       bool       `bson:"read" json:"read"`
	Reply      string     `bson:"reply,omitempty" json:"reply,omitempty"`
	RepliedAt  *time.Time `bson:"repliedAt,omitempty" json:"repliedAt,omitempty"`
	CreatedAt  time.Time  `bson:"createdAt" json:"createdAt"`
}
