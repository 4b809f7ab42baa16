package ui

import tele "gopkg.in/telebot.v4"

// FallbackProvider supplies last-resort handlers for updates the
// router could not match to a command, callback, or text route.
type FallbackProvider interface {
	UnknownText() tele.HandlerFunc
	UnknownDocument() tele.HandlerFunc
	UnknownCallback() tele.HandlerFunc
}
