package commands

import (
	tele "gopkg.in/telebot.v4"
)

// Command describes a slash command: its handler plus the metadata the
// registry needs for menu listing and access control. Hidden commands
// stay out of the Telegram command menu but remain invocable.
type Command struct {
	Handler     tele.HandlerFunc
	Description string
	AdminOnly   bool
	Hidden      bool
	Aliases     []string
}
