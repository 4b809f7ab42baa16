package bot

import (
	"context"
	"fmt"
	"log/slog"

	tele "gopkg.in/telebot.v4"

	"github.com/shopsavvy/dealbot/catalog"
	"github.com/shopsavvy/dealbot/core/logger"
)

// cardOptions shapes a deal-card sequence. The guided flow numbers
// cards "Deal i/N" with per-product link buttons; the stateless path
// numbers them "Result i/N" and hangs the main menu off the last card.
type cardOptions struct {
	label      string
	withLinks  bool
	lastMarkup *tele.ReplyMarkup
}

// sendCards delivers one card per product, strictly in order. Each card
// tries the rich photo rendering first and falls back to plain text on
// delivery failure; failures are logged and never abort the sequence,
// so the numbering the user sees stays contiguous.
func (f *Flow) sendCards(ctx context.Context, products []catalog.Product, platform catalog.Platform, opts cardOptions, out Outbound) {
	total := len(products)
	for i, p := range products {
		caption := fmt.Sprintf("**%s %d/%d**\n\n%s", opts.label, i+1, total, f.render.Format(p, platform))

		var markup *tele.ReplyMarkup
		if opts.withLinks {
			markup = productLinkKeyboard(p, platform)
		}
		if i == total-1 && opts.lastMarkup != nil {
			markup = opts.lastMarkup
		}

		if p.ImageURL != "" {
			err := out.SendPhoto(p.ImageURL, caption, markup)
			if err == nil {
				continue
			}
			logger.Warn(ctx, "bot.replies", "card.photo_failed",
				slog.String("product", p.Name),
				slog.Int("item", i+1),
				slog.Int("total", total),
				slog.String("err", err.Error()),
			)
		}

		if err := out.SendText(caption, markup); err != nil {
			logger.Warn(ctx, "bot.replies", "card.text_failed",
				slog.String("product", p.Name),
				slog.Int("item", i+1),
				slog.Int("total", total),
				slog.String("err", err.Error()),
			)
		}
	}
}
