package bot

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	tele "gopkg.in/telebot.v4"

	"github.com/shopsavvy/dealbot/bot/session"
	"github.com/shopsavvy/dealbot/catalog"
	"github.com/shopsavvy/dealbot/deals"
)

type sentReply struct {
	kind   string // text, photo, edit
	text   string
	markup *tele.ReplyMarkup
}

// fakeOutbound records replies and can fail selected photo sends.
type fakeOutbound struct {
	sent       []sentReply
	photoCalls int
	failPhotos map[int]bool // 1-based photo call index
}

func (f *fakeOutbound) SendText(text string, markup *tele.ReplyMarkup) error {
	f.sent = append(f.sent, sentReply{kind: "text", text: text, markup: markup})
	return nil
}

func (f *fakeOutbound) SendPhoto(url, caption string, markup *tele.ReplyMarkup) error {
	f.photoCalls++
	if f.failPhotos[f.photoCalls] {
		return fmt.Errorf("telegram: wrong file identifier")
	}
	f.sent = append(f.sent, sentReply{kind: "photo", text: caption, markup: markup})
	return nil
}

func (f *fakeOutbound) Edit(text string, markup *tele.ReplyMarkup) error {
	f.sent = append(f.sent, sentReply{kind: "edit", text: text, markup: markup})
	return nil
}

func (f *fakeOutbound) texts() []string {
	out := make([]string, len(f.sent))
	for i, s := range f.sent {
		out[i] = s.text
	}
	return out
}

func newTestFlow() *Flow {
	render := &deals.Formatter{
		Now:  func() time.Time { return time.Date(2025, time.September, 1, 12, 0, 0, 0, time.UTC) },
		Intn: func(n int) int { return 0 },
	}
	return NewFlow(session.NewMemoryManager(), catalog.NewService(catalog.Builtin(), false), render)
}

const chatID = int64(100)

func TestGuidedSearchScenario(t *testing.T) {
	flow := newTestFlow()
	out := &fakeOutbound{}
	ctx := context.Background()

	if err := flow.Start(ctx, chatID, out); err != nil {
		t.Fatal(err)
	}
	if got := flow.Sessions().State(chatID); got != session.StateMenu {
		t.Fatalf("after /start state = %q, want menu", got)
	}

	if err := flow.ChoosePlatform(ctx, chatID, out); err != nil {
		t.Fatal(err)
	}
	if got := flow.Sessions().State(chatID); got != session.StatePlatformSelection {
		t.Fatalf("state = %q, want platform_selection", got)
	}

	if err := flow.SelectPlatform(ctx, chatID, "amazon", out); err != nil {
		t.Fatal(err)
	}
	sess := flow.Sessions().Get(chatID)
	if sess.State != session.StateProductSearch || sess.Platform != catalog.PlatformAmazon {
		t.Fatalf("after platform choice session = %+v", sess)
	}

	out.sent = nil
	consumed, err := flow.HandleText(ctx, chatID, "tv", out)
	if err != nil {
		t.Fatal(err)
	}
	if !consumed {
		t.Fatal("product-search text must be consumed by the flow")
	}

	texts := out.texts()
	if len(texts) != 7 {
		t.Fatalf("expected searching + header + 4 cards + closing, got %d replies:\n%s", len(texts), strings.Join(texts, "\n---\n"))
	}
	if texts[0] != searchingText {
		t.Errorf("first reply = %q", texts[0])
	}
	if !strings.Contains(texts[1], "Found 4 deals for 'tv'") {
		t.Errorf("header wrong: %q", texts[1])
	}
	for i := 0; i < 4; i++ {
		wantTag := fmt.Sprintf("**Deal %d/4**", i+1)
		if !strings.Contains(texts[2+i], wantTag) {
			t.Errorf("card %d missing %q: %q", i+1, wantTag, texts[2+i])
		}
		if out.sent[2+i].kind != "photo" {
			t.Errorf("card %d kind = %q, want photo", i+1, out.sent[2+i].kind)
		}
		if !strings.Contains(texts[2+i], "**Amazon**") {
			t.Errorf("card %d must render the amazon offer: %q", i+1, texts[2+i])
		}
	}
	if texts[6] != allDealsShownText {
		t.Errorf("closing reply = %q", texts[6])
	}

	if got := flow.Sessions().State(chatID); got != session.StateMenu {
		t.Fatalf("session must clear after search, state = %q", got)
	}
}

func TestTextDeclinedWhileAwaitingButtons(t *testing.T) {
	flow := newTestFlow()
	out := &fakeOutbound{}
	ctx := context.Background()

	for _, st := range []session.State{
		session.StatePlatformSelection,
		session.StateCategorySearch,
		session.StateDealTypeSelection,
	} {
		flow.Sessions().SetState(chatID, st)
		consumed, err := flow.HandleText(ctx, chatID, "macbook", out)
		if err != nil {
			t.Fatal(err)
		}
		if consumed {
			t.Errorf("state %q must decline free text", st)
		}
		if got := flow.Sessions().State(chatID); got != st {
			t.Errorf("declining must not change state, got %q", got)
		}
	}
	if len(out.sent) != 0 {
		t.Fatalf("declined text must emit nothing, got %v", out.texts())
	}
}

func TestDeliveryFailureFallsBackPerItem(t *testing.T) {
	flow := newTestFlow()
	// Second of three photo sends fails; its card must arrive as text
	// and the third card must still be delivered.
	out := &fakeOutbound{failPhotos: map[int]bool{2: true}}
	ctx := context.Background()

	flow.Sessions().SetPlatform(chatID, catalog.PlatformFlipkart)
	flow.Sessions().SetState(chatID, session.StateProductSearch)

	consumed, err := flow.HandleText(ctx, chatID, "smart tv", out)
	if err != nil {
		t.Fatal(err)
	}
	if !consumed {
		t.Fatal("expected flow to consume the query")
	}

	var cards []sentReply
	for _, s := range out.sent {
		if strings.Contains(s.text, "/3**") {
			cards = append(cards, s)
		}
	}
	if len(cards) != 3 {
		t.Fatalf("got %d cards, want 3:\n%s", len(cards), strings.Join(out.texts(), "\n---\n"))
	}
	wantKinds := []string{"photo", "text", "photo"}
	for i, card := range cards {
		if card.kind != wantKinds[i] {
			t.Errorf("card %d kind = %q, want %q", i+1, card.kind, wantKinds[i])
		}
		if !strings.Contains(card.text, fmt.Sprintf("**Deal %d/3**", i+1)) {
			t.Errorf("card %d numbering broken: %q", i+1, card.text)
		}
	}
}

func TestSearchNotFoundClearsSession(t *testing.T) {
	flow := newTestFlow()
	out := &fakeOutbound{}
	ctx := context.Background()

	flow.Sessions().SetState(chatID, session.StateProductSearch)
	consumed, err := flow.HandleText(ctx, chatID, "quantum flux capacitor", out)
	if err != nil {
		t.Fatal(err)
	}
	if !consumed {
		t.Fatal("expected flow to consume the query")
	}

	last := out.sent[len(out.sent)-1]
	if !strings.Contains(last.text, "couldn't find any offers matching 'quantum flux capacitor'") {
		t.Fatalf("not-found reply wrong: %q", last.text)
	}
	if last.markup == nil {
		t.Fatal("not-found reply must carry the menu keyboard")
	}
	if got := flow.Sessions().State(chatID); got != session.StateMenu {
		t.Fatalf("session must clear on not-found, state = %q", got)
	}
}

func TestCategoryOverridesTypedQuery(t *testing.T) {
	flow := newTestFlow()
	out := &fakeOutbound{}
	ctx := context.Background()

	if err := flow.SelectCategory(ctx, chatID, "television", out); err != nil {
		t.Fatal(err)
	}
	if got := flow.Sessions().State(chatID); got != session.StatePlatformSelection {
		t.Fatalf("after category state = %q, want platform_selection", got)
	}
	if err := flow.SelectPlatform(ctx, chatID, "flipkart", out); err != nil {
		t.Fatal(err)
	}

	out.sent = nil
	if _, err := flow.HandleText(ctx, chatID, "anything at all", out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.texts()[1], "deals for 'television'") {
		t.Fatalf("typed text must be overridden by the category: %q", out.texts()[1])
	}
}

func TestDirectSearch(t *testing.T) {
	flow := newTestFlow()
	out := &fakeOutbound{}
	ctx := context.Background()

	if err := flow.DirectSearch(ctx, chatID, "MacBook", out); err != nil {
		t.Fatal(err)
	}

	texts := out.texts()
	if texts[0] != directSearchingText {
		t.Fatalf("first reply = %q", texts[0])
	}
	last := out.sent[len(out.sent)-1]
	if !strings.Contains(last.text, "**Result 1/1**") {
		t.Fatalf("card label wrong: %q", last.text)
	}
	if last.markup == nil {
		t.Fatal("last direct-search card must carry the menu keyboard")
	}
}

func TestDirectSearchNotFound(t *testing.T) {
	flow := newTestFlow()
	out := &fakeOutbound{}

	if err := flow.DirectSearch(context.Background(), chatID, "zzz unknown", out); err != nil {
		t.Fatal(err)
	}
	last := out.sent[len(out.sent)-1]
	if !strings.Contains(last.text, "No deals found for 'zzz unknown'") {
		t.Fatalf("not-found reply wrong: %q", last.text)
	}
}

func TestCancelFromAnyState(t *testing.T) {
	flow := newTestFlow()
	out := &fakeOutbound{}
	ctx := context.Background()

	flow.Sessions().SetState(chatID, session.StateProductSearch)
	flow.Sessions().SetPlatform(chatID, catalog.PlatformMeesho)

	if err := flow.Cancel(ctx, chatID, out); err != nil {
		t.Fatal(err)
	}
	if out.sent[0].text != cancelledText {
		t.Fatalf("cancel reply = %q", out.sent[0].text)
	}
	sess := flow.Sessions().Get(chatID)
	if sess.State != session.StateMenu || sess.Platform != "" {
		t.Fatalf("cancel must wipe the session, got %+v", sess)
	}
}

func TestSelectPlatformRejectsUnknownToken(t *testing.T) {
	flow := newTestFlow()
	out := &fakeOutbound{}
	ctx := context.Background()

	flow.Sessions().SetState(chatID, session.StatePlatformSelection)
	if err := flow.SelectPlatform(ctx, chatID, "ebay", out); err != nil {
		t.Fatal(err)
	}
	if out.sent[0].text != didntUnderstandText {
		t.Fatalf("reply = %q", out.sent[0].text)
	}
	if got := flow.Sessions().State(chatID); got != session.StatePlatformSelection {
		t.Fatalf("state must not change on bad payload, got %q", got)
	}
}

func TestDealTypeComingSoon(t *testing.T) {
	flow := newTestFlow()
	out := &fakeOutbound{}
	ctx := context.Background()

	if err := flow.DealTypes(ctx, chatID, out); err != nil {
		t.Fatal(err)
	}
	if got := flow.Sessions().State(chatID); got != session.StateDealTypeSelection {
		t.Fatalf("state = %q", got)
	}

	if err := flow.SelectDealType(ctx, chatID, "bogo_offers", out); err != nil {
		t.Fatal(err)
	}
	last := out.sent[len(out.sent)-1]
	if !strings.Contains(last.text, "Looking for: BOGO Offers") {
		t.Fatalf("deal-type reply wrong: %q", last.text)
	}
	if got := flow.Sessions().State(chatID); got != session.StateMenu {
		t.Fatalf("deal-type choice must return to menu, got %q", got)
	}
}

func TestFSMInProgress(t *testing.T) {
	flow := newTestFlow()
	fsm := NewFSM(flow)

	if fsm.InProgress(chatID) {
		t.Fatal("fresh chat must not be in progress")
	}
	flow.Sessions().SetState(chatID, session.StatePlatformSelection)
	if !fsm.InProgress(chatID) {
		t.Fatal("chat mid-flow must be in progress")
	}
}
