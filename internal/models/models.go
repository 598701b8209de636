package models

import "time"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Mode is the user-selected interaction mode for a session. It changes the
// framing and auxiliary capabilities of a request, never the transport or
// persistence path. Not persisted across restarts.
type Mode string

const (
	ModeGeneral   Mode = "general"
	ModeWeb       Mode = "web"
	ModeReasoning Mode = "reasoning"
	ModeCoding    Mode = "coding"
)

// Modes lists the selectable modes in display order.
var Modes = []Mode{ModeGeneral, ModeWeb, ModeReasoning, ModeCoding}

// Attachment is an image payload encoded for inline storage and transport.
type Attachment struct {
	MIME string `json:"mime"`
	Data []byte `json:"data"`
}

// Source is one grounding citation on an assistant message.
type Source struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// Message is one turn in the conversation log. Messages are append-only:
// once appended, ID, Role and Timestamp never change.
type Message struct {
	ID        string      `json:"id"`
	Role      string      `json:"role"`
	Text      string      `json:"text"`
	Image     *Attachment `json:"image,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Sources   []Source    `json:"sources,omitempty"`
}

// Draft is the pending user input before a send. Transient, never persisted.
type Draft struct {
	Text  string
	Image *Attachment
}

// Empty reports whether the draft carries neither text nor an image.
func (d Draft) Empty() bool {
	return d.Text == "" && d.Image == nil
}

// Preferences are the user-toggleable settings flags.
type Preferences struct {
	SnowfallEffect bool `json:"snowfall_effect"`
	ProModel       bool `json:"pro_model"`
}

// Profile is the persisted user profile, stored independently of the
// conversation log.
type Profile struct {
	DisplayName string      `json:"display_name"`
	Avatar      *Attachment `json:"avatar,omitempty"`
	Preferences Preferences `json:"preferences"`
}

// DefaultProfile is used when no profile record exists yet.
func DefaultProfile() Profile {
	return Profile{DisplayName: "Student"}
}
