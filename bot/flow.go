// Package bot implements the deal assistant's conversation flow: the
// state machine driving platform/category/product selection, the reply
// sequences it emits, and the telebot wiring that feeds it updates.
package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tele "gopkg.in/telebot.v4"

	"github.com/shopsavvy/dealbot/bot/session"
	"github.com/shopsavvy/dealbot/catalog"
	"github.com/shopsavvy/dealbot/core/logger"
	"github.com/shopsavvy/dealbot/deals"
)

// Outbound delivers replies to the chat an update came from. The
// telebot adapter implements it synchronously so that multi-card reply
// sequences keep their numbering order; tests substitute a recorder.
type Outbound interface {
	SendText(text string, markup *tele.ReplyMarkup) error
	SendPhoto(url, caption string, markup *tele.ReplyMarkup) error
	Edit(text string, markup *tele.ReplyMarkup) error
}

// Flow is the conversation engine. It owns the session transitions and
// composes every user-visible reply from the catalog and formatter.
type Flow struct {
	sessions session.Manager
	catalog  *catalog.Service
	render   *deals.Formatter
}

// NewFlow assembles the conversation engine.
func NewFlow(sessions session.Manager, svc *catalog.Service, render *deals.Formatter) *Flow {
	return &Flow{sessions: sessions, catalog: svc, render: render}
}

// Sessions exposes the underlying session store for diagnostics.
func (f *Flow) Sessions() session.Manager { return f.sessions }

// Start resets the chat and shows the welcome menu.
func (f *Flow) Start(ctx context.Context, chatID int64, out Outbound) error {
	f.sessions.Reset(chatID)
	logger.Debug(ctx, "bot.flow", "start", slog.Int64("chat_id", chatID))
	return out.SendText(welcomeText, mainMenuKeyboard())
}

// Help shows usage instructions with the main menu. Button presses
// edit the originating message in place, commands send a fresh one.
func (f *Flow) Help(ctx context.Context, chatID int64, out Outbound, viaButton bool) error {
	if viaButton {
		return out.Edit(helpText, mainMenuKeyboard())
	}
	return out.SendText(helpText, mainMenuKeyboard())
}

// Trending shows the curated hot-deals listing.
func (f *Flow) Trending(ctx context.Context, chatID int64, out Outbound, viaButton bool) error {
	text := f.render.FormatTrending()
	if viaButton {
		return out.Edit(text, mainMenuKeyboard())
	}
	return out.SendText(text, mainMenuKeyboard())
}

// Festivals shows upcoming sale events.
func (f *Flow) Festivals(ctx context.Context, chatID int64, out Outbound) error {
	return out.Edit(f.render.FormatFestivals(), mainMenuKeyboard())
}

// Cancel aborts whatever flow is in progress and returns to the menu.
func (f *Flow) Cancel(ctx context.Context, chatID int64, out Outbound) error {
	f.sessions.Reset(chatID)
	logger.Debug(ctx, "bot.flow", "cancel", slog.Int64("chat_id", chatID))
	return out.SendText(cancelledText, mainMenuKeyboard())
}

// ChoosePlatform starts the guided search flow.
func (f *Flow) ChoosePlatform(ctx context.Context, chatID int64, out Outbound) error {
	f.sessions.SetState(chatID, session.StatePlatformSelection)
	return out.Edit(choosePlatformText, platformKeyboard())
}

// BrowseCategories starts the category flow.
func (f *Flow) BrowseCategories(ctx context.Context, chatID int64, out Outbound) error {
	f.sessions.SetState(chatID, session.StateCategorySearch)
	return out.Edit(browseCategoriesText, categoryKeyboard())
}

// DealTypes shows the deal-type list.
func (f *Flow) DealTypes(ctx context.Context, chatID int64, out Outbound) error {
	f.sessions.SetState(chatID, session.StateDealTypeSelection)
	return out.SendText(chooseDealTypeText, dealTypeKeyboard())
}

// SelectPlatform records the chosen platform and prompts for a product
// query. Buttons are honored from any state, so a stale keyboard still
// works after the session moved on.
func (f *Flow) SelectPlatform(ctx context.Context, chatID int64, payload string, out Outbound) error {
	platform, ok := catalog.ParsePlatform(payload)
	if !ok {
		logger.Warn(ctx, "bot.flow", "platform.invalid",
			slog.Int64("chat_id", chatID),
			slog.String("payload", payload),
		)
		return out.SendText(didntUnderstandText, mainMenuKeyboard())
	}

	f.sessions.SetPlatform(chatID, platform)
	f.sessions.SetState(chatID, session.StateProductSearch)
	logger.Debug(ctx, "bot.flow", "platform.selected",
		slog.Int64("chat_id", chatID),
		slog.String("platform", string(platform)),
	)

	title := platform.Title()
	if platform == catalog.PlatformAll {
		title = "All Platforms"
	}
	return out.Edit(platformSelectedText(title), nil)
}

// SelectCategory records the chosen category and moves on to platform
// selection. The later product-search step uses the category as the
// effective query regardless of what the user then types.
func (f *Flow) SelectCategory(ctx context.Context, chatID int64, slug string, out Outbound) error {
	label := categoryLabel(slug)
	f.sessions.SetCategory(chatID, label)
	f.sessions.SetState(chatID, session.StatePlatformSelection)
	logger.Debug(ctx, "bot.flow", "category.selected",
		slog.Int64("chat_id", chatID),
		slog.String("category", label),
	)
	return out.Edit(categorySelectedText(label), platformKeyboard())
}

// SelectDealType acknowledges the chosen deal type. Dedicated deal-type
// feeds are not built yet, so the reply is a placeholder.
func (f *Flow) SelectDealType(ctx context.Context, chatID int64, slug string, out Outbound) error {
	f.sessions.SetState(chatID, session.StateMenu)
	return out.Edit(dealTypeComingSoonText(dealTypeLabel(slug)), nil)
}

// HandleText routes free text by the chat's conversation state. The
// returned bool reports whether the flow consumed the message; when a
// state expects a button press the text is declined so the router can
// fall through to the stateless all-platform search.
func (f *Flow) HandleText(ctx context.Context, chatID int64, text string, out Outbound) (bool, error) {
	st := f.sessions.State(chatID)
	logger.Debug(ctx, "bot.flow", "text",
		slog.Int64("chat_id", chatID),
		slog.String("state", string(st)),
	)

	if st != session.StateProductSearch {
		return false, nil
	}
	return true, f.flowSearch(ctx, chatID, text, out)
}

// DirectSearch is the stateless path: any free text outside an active
// product-search step is searched across all platforms immediately.
func (f *Flow) DirectSearch(ctx context.Context, chatID int64, text string, out Outbound) error {
	query := strings.ToLower(strings.TrimSpace(text))
	if query == "" {
		return out.SendText(didntUnderstandText, mainMenuKeyboard())
	}

	if err := out.SendText(directSearchingText, nil); err != nil {
		return err
	}

	results := f.catalog.Search(ctx, query, catalog.PlatformAll)
	if len(results) == 0 {
		return out.SendText(directNotFoundText(query), mainMenuKeyboard())
	}

	f.sendCards(ctx, results, catalog.PlatformAll, cardOptions{
		label:      "Result",
		lastMarkup: mainMenuKeyboard(),
	}, out)
	return nil
}

// flowSearch completes the guided flow: it resolves the effective query
// from the session, runs the lookup, streams the deal cards, and clears
// the session. Any internal fault downgrades to an apologetic reply so
// the chat never gets stuck mid-flow.
func (f *Flow) flowSearch(ctx context.Context, chatID int64, text string, out Outbound) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error(ctx, "bot.flow", "search.panic",
				slog.Int64("chat_id", chatID),
				slog.String("err", fmt.Sprint(r)),
			)
			f.sessions.Reset(chatID)
			err = out.SendText(searchFailedText, mainMenuKeyboard())
		}
	}()

	sess := f.sessions.Get(chatID)
	platform := sess.Platform
	if platform == "" {
		platform = catalog.PlatformAll
	}
	query := strings.ToLower(strings.TrimSpace(text))
	if sess.Category != "" {
		query = strings.ToLower(sess.Category)
	}

	if err := out.SendText(searchingText, nil); err != nil {
		return err
	}

	results := f.catalog.Search(ctx, query, platform)
	if len(results) == 0 {
		f.sessions.Reset(chatID)
		return out.SendText(notFoundText(query), mainMenuKeyboard())
	}

	if err := out.SendText(foundDealsText(len(results), query), nil); err != nil {
		return err
	}

	f.sendCards(ctx, results, platform, cardOptions{
		label:     "Deal",
		withLinks: true,
	}, out)

	f.sessions.Reset(chatID)
	return out.SendText(allDealsShownText, mainMenuKeyboard())
}

func categoryLabel(slug string) string {
	for _, c := range categories {
		if slugify(c) == slug {
			return c
		}
	}
	return unslug(slug)
}

func dealTypeLabel(slug string) string {
	for _, d := range dealTypes {
		if slugify(d) == slug {
			return d
		}
	}
	return unslug(slug)
}
