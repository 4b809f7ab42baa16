package bot

import (
	"context"
	"fmt"
	"log/slog"

	tele "gopkg.in/telebot.v4"

	"github.com/shopsavvy/dealbot/core/logger"
	tg "github.com/shopsavvy/dealbot/core/telegram"
	"github.com/shopsavvy/dealbot/core/telegram/callbacks"
	"github.com/shopsavvy/dealbot/core/telegram/commands"
	tghelpers "github.com/shopsavvy/dealbot/core/telegram/helpers"
	"github.com/shopsavvy/dealbot/core/telegram/router"
)

// contextOutbound delivers replies through the update's tele.Context.
// Sends are synchronous so card sequences arrive in order and photo
// failures can fall back to text in place.
type contextOutbound struct {
	c tele.Context
}

func (o contextOutbound) SendText(text string, markup *tele.ReplyMarkup) error {
	return o.c.Send(text, &tele.SendOptions{ParseMode: tele.ModeMarkdown, ReplyMarkup: markup})
}

func (o contextOutbound) SendPhoto(url, caption string, markup *tele.ReplyMarkup) error {
	photo := &tele.Photo{File: tele.FromURL(url), Caption: caption}
	return o.c.Send(photo, &tele.SendOptions{ParseMode: tele.ModeMarkdown, ReplyMarkup: markup})
}

func (o contextOutbound) Edit(text string, markup *tele.ReplyMarkup) error {
	return o.c.EditOrSend(text, &tele.SendOptions{ParseMode: tele.ModeMarkdown, ReplyMarkup: markup})
}

// Handlers binds the conversation engine to telebot endpoints.
type Handlers struct {
	flow *Flow
}

// NewHandlers wraps a Flow for registration.
func NewHandlers(flow *Flow) *Handlers {
	return &Handlers{flow: flow}
}

// Register wires every command and callback into the registry.
func (h *Handlers) Register(reg *tg.Registry) {
	reg.RegisterCommand("/start", commands.Command{
		Handler:     h.command(h.flow.Start),
		Description: "Start the bot",
	})
	reg.RegisterCommand("/help", commands.Command{
		Handler: func(c tele.Context) error {
			ctx := tghelpers.BuildContext(c)
			return h.flow.Help(ctx, c.Sender().ID, contextOutbound{c}, false)
		},
		Description: "Show help message",
	})
	reg.RegisterCommand("/deals", commands.Command{
		Handler: func(c tele.Context) error {
			ctx := tghelpers.BuildContext(c)
			return h.flow.Trending(ctx, c.Sender().ID, contextOutbound{c}, false)
		},
		Description: "Browse trending deals",
	})
	reg.RegisterCommand("/cancel", commands.Command{
		Handler:     h.command(h.flow.Cancel),
		Description: "Cancel the current operation",
	})
	reg.RegisterCommand("/dealtypes", commands.Command{
		Handler:     h.command(h.flow.DealTypes),
		Description: "Browse deal types",
		Hidden:      true,
	})
	reg.RegisterCommand("/stats", commands.Command{
		Handler:     h.stats,
		Description: "Bot statistics",
		AdminOnly:   true,
		Hidden:      true,
	})

	h.registerCallback(reg, cbSearchProducts, h.flow.ChoosePlatform)
	h.registerCallback(reg, cbBrowseCategories, h.flow.BrowseCategories)
	h.registerCallback(reg, cbFestivalDeals, h.flow.Festivals)
	h.registerPayloadCallback(reg, cbPlatform, h.flow.SelectPlatform)
	h.registerPayloadCallback(reg, cbCategory, h.flow.SelectCategory)
	h.registerPayloadCallback(reg, cbDealType, h.flow.SelectDealType)

	addCallback(reg, cbTrendingDeals, func(c tele.Context) error {
		ctx := tghelpers.BuildContext(c)
		return h.flow.Trending(ctx, c.Sender().ID, contextOutbound{c}, true)
	})
	addCallback(reg, cbHelp, func(c tele.Context) error {
		ctx := tghelpers.BuildContext(c)
		return h.flow.Help(ctx, c.Sender().ID, contextOutbound{c}, true)
	})

	reg.SetTextFallback(func(c tele.Context) error {
		ctx := tghelpers.BuildContext(c)
		return h.flow.DirectSearch(ctx, c.Sender().ID, c.Text(), contextOutbound{c})
	})
}

func (h *Handlers) command(fn func(ctx context.Context, chatID int64, out Outbound) error) tele.HandlerFunc {
	return func(c tele.Context) error {
		ctx := tghelpers.BuildContext(c)
		return fn(ctx, c.Sender().ID, contextOutbound{c})
	}
}

func (h *Handlers) registerCallback(reg *tg.Registry, key string, fn func(ctx context.Context, chatID int64, out Outbound) error) {
	addCallback(reg, key, func(c tele.Context) error {
		ctx := tghelpers.BuildContext(c)
		return fn(ctx, c.Sender().ID, contextOutbound{c})
	})
}

func (h *Handlers) registerPayloadCallback(reg *tg.Registry, key string, fn func(ctx context.Context, chatID int64, payload string, out Outbound) error) {
	addCallback(reg, key, func(c tele.Context) error {
		ctx := tghelpers.BuildContext(c)
		return fn(ctx, c.Sender().ID, callbacks.CallbackPayload(c), contextOutbound{c})
	})
}

func addCallback(reg *tg.Registry, key string, h tele.HandlerFunc) {
	if err := reg.RegisterCallback(key, h); err != nil {
		logger.TWire.Warn("callback registration failed",
			slog.String("key", key),
			slog.String("err", err.Error()),
		)
	}
}

// stats reports session and catalog counters to the admin.
func (h *Handlers) stats(c tele.Context) error {
	text := fmt.Sprintf("📈 **Bot Stats**\n\nCatalog products: %d", h.flow.catalog.Size())
	return tghelpers.SendMD(c, text, mainMenuKeyboard())
}

// FSM adapts the Flow to the router's state-dispatch interface.
type FSM struct {
	flow *Flow
}

// NewFSM wraps the flow for the text router.
func NewFSM(flow *Flow) *FSM { return &FSM{flow: flow} }

// InProgress reports whether the chat is mid-flow.
func (f *FSM) InProgress(userID int64) bool {
	return f.flow.sessions.InProgress(userID)
}

// ManagerHandler feeds the message to the state handler. Text arriving
// while the state expects a button press is declined so the router can
// fall through to the stateless search.
func (f *FSM) ManagerHandler(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	consumed, err := f.flow.HandleText(ctx, c.Sender().ID, c.Text(), contextOutbound{c})
	if err != nil {
		return err
	}
	if !consumed {
		return router.ErrDeclined
	}
	return nil
}

// Fallbacks provides handlers for updates nothing else claimed.
type Fallbacks struct {
	flow *Flow
}

// NewFallbacks wraps the flow for unknown-update handling.
func NewFallbacks(flow *Flow) *Fallbacks { return &Fallbacks{flow: flow} }

// UnknownText searches the text across all platforms.
func (f *Fallbacks) UnknownText() tele.HandlerFunc {
	return func(c tele.Context) error {
		ctx := tghelpers.BuildContext(c)
		return f.flow.DirectSearch(ctx, c.Sender().ID, c.Text(), contextOutbound{c})
	}
}

// UnknownDocument nudges the user back to the menu.
func (f *Fallbacks) UnknownDocument() tele.HandlerFunc {
	return func(c tele.Context) error {
		return tghelpers.SendMD(c, didntUnderstandText, mainMenuKeyboard())
	}
}

// UnknownCallback answers with a toast so the button stops spinning.
func (f *Fallbacks) UnknownCallback() tele.HandlerFunc {
	return func(c tele.Context) error {
		return c.Respond(&tele.CallbackResponse{Text: "Something went wrong! Please try again."})
	}
}
