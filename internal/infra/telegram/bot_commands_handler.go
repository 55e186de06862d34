package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tax_deadline_bot/internal/app"
	"tax_deadline_bot/internal/domain/catalog"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

const (
	callbackCategoryPrefix = "cat_"
	callbackViewAll        = "view_all"
)

const welcomeMessage = `🇳🇬 *Welcome to the Nigerian Tax Deadlines Bot*

Based on the Nigeria Tax Act 2025 and Tax Administration Act 2025.

I'll help you track tax deadlines and send you timely reminders!

*Select your category:*`

const helpMessage = `📚 *Nigerian Tax Deadlines Bot - Help*

*Available Commands:*
/start - Register and select your category
/deadlines - View all deadlines for your category
/change - Change your taxpayer category
/check - Run the reminder check NOW
/help - Show this help message

*Categories:*
👤 *Individual* - PIT, CGT, PAYE
📈 *Small Business* - Turnover ≤₦100M, Assets ≤₦250M
🏢 *Company* - Turnover >₦100M or Assets >₦250M

*Features:*
✅ View registration, filing & remittance deadlines
✅ See penalties for late compliance
✅ Automatic reminders before deadlines
✅ Based on Nigeria Tax Act 2025

*Need to update your category?*
Use /change to switch categories anytime.`

// RegisterBotCommands wires the user-facing command and callback handlers.
func RegisterBotCommands(
	ctx context.Context,
	b *telebot.Bot,
	rules *catalog.Catalog,
	subscriptions *app.SubscriptionService,
	reminders *app.ReminderService,
	baseLogger *logrus.Entry,
) {
	commandLogger := baseLogger.WithField("handler_group", "bot_commands")

	b.Handle("/start", func(c telebot.Context) error {
		logCtx := commandLogger.WithField("command", "/start").WithField("sender_id", c.Sender().ID)
		logCtx.Info("Processing /start command")

		return c.Send(welcomeMessage, &telebot.SendOptions{
			ParseMode:   telebot.ModeMarkdown,
			ReplyMarkup: categoryKeyboard(true),
		})
	})

	b.Handle("/deadlines", func(c telebot.Context) error {
		senderID := c.Sender().ID
		logCtx := commandLogger.WithField("command", "/deadlines").WithField("sender_id", senderID)
		logCtx.Info("Processing /deadlines command")

		cat, err := subscriptions.CurrentCategory(ctx, senderID)
		if err != nil {
			if errors.Is(err, app.ErrNoCategorySelected) {
				return c.Send("Please select your category first using /start")
			}
			logCtx.WithError(err).Error("Failed to resolve subscriber category")
			return c.Send("Something went wrong while looking up your category. Please try again later.")
		}

		return c.Send(formatDeadlines(cat), &telebot.SendOptions{ParseMode: telebot.ModeMarkdown})
	})

	b.Handle("/change", func(c telebot.Context) error {
		logCtx := commandLogger.WithField("command", "/change").WithField("sender_id", c.Sender().ID)
		logCtx.Info("Processing /change command")

		return c.Send("Select your new category:", &telebot.SendOptions{
			ReplyMarkup: categoryKeyboard(false),
		})
	})

	b.Handle("/check", func(c telebot.Context) error {
		logCtx := commandLogger.WithField("command", "/check").WithField("sender_id", c.Sender().ID)
		logCtx.Info("Processing /check command")

		if err := c.Send("🔍 Running the reminder check now..."); err != nil {
			return err
		}

		switch err := reminders.CheckDeadlines(ctx); {
		case errors.Is(err, app.ErrAlreadyEvaluated):
			return c.Send("✅ The reminder check already ran today. Reminders are sent once per day.")
		case err != nil:
			logCtx.WithError(err).Error("Manual deadline check failed")
			return c.Send("Something went wrong during the reminder check. Please try again later.")
		}

		return c.Send("✅ Reminder check complete! Any applicable reminders have been sent.")
	})

	b.Handle("/help", func(c telebot.Context) error {
		logCtx := commandLogger.WithField("command", "/help").WithField("sender_id", c.Sender().ID)
		logCtx.Info("Processing /help command")

		return c.Send(helpMessage, &telebot.SendOptions{ParseMode: telebot.ModeMarkdown})
	})

	b.Handle(telebot.OnCallback, func(c telebot.Context) error {
		action := c.Callback().Unique
		senderID := c.Sender().ID
		logCtx := commandLogger.WithField("callback", action).WithField("sender_id", senderID)

		switch {
		case strings.HasPrefix(action, callbackCategoryPrefix):
			key := strings.TrimPrefix(action, callbackCategoryPrefix)
			cat, err := subscriptions.ChooseCategory(ctx, senderID, key)
			if err != nil {
				if errors.Is(err, catalog.ErrUnknownCategory) {
					logCtx.Warn("Callback carried an unknown category key")
					return c.Respond(&telebot.CallbackResponse{Text: "Unknown category."})
				}
				logCtx.WithError(err).Error("Failed to save category selection")
				return c.Respond(&telebot.CallbackResponse{Text: "Something went wrong. Please try again."})
			}
			logCtx.WithField("category", cat.Key).Info("Category selected")

			if err := c.Respond(); err != nil {
				logCtx.WithError(err).Warn("Failed to acknowledge callback")
			}

			confirm := fmt.Sprintf(`✅ *Category Set: %s*

%s

You'll receive reminders for all applicable deadlines.

Use /deadlines to view all your tax obligations.`, cat.Name, cat.Description)
			if err := c.Send(confirm, &telebot.SendOptions{ParseMode: telebot.ModeMarkdown}); err != nil {
				return err
			}
			// Show the deadlines of the freshly selected category right away.
			return c.Send(formatDeadlines(cat), &telebot.SendOptions{ParseMode: telebot.ModeMarkdown})

		case action == callbackViewAll:
			logCtx.Info("Sending category overview")
			if err := c.Respond(); err != nil {
				logCtx.WithError(err).Warn("Failed to acknowledge callback")
			}
			return c.Send(formatAllCategories(rules), &telebot.SendOptions{ParseMode: telebot.ModeMarkdown})
		}

		logCtx.Warn("Unhandled callback action")
		return c.Respond(&telebot.CallbackResponse{Text: "Unknown action."})
	})
}

func categoryKeyboard(includeViewAll bool) *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{}
	rows := []telebot.Row{
		markup.Row(markup.Data("👤 Individual", callbackCategoryPrefix+catalog.KeyIndividual)),
		markup.Row(markup.Data("📈 Small Business (≤₦100M)", callbackCategoryPrefix+catalog.KeySmallBusiness)),
		markup.Row(markup.Data("🏢 Company (>₦100M)", callbackCategoryPrefix+catalog.KeyCompany)),
	}
	if includeViewAll {
		rows = append(rows, markup.Row(markup.Data("📋 View All Categories", callbackViewAll)))
	}
	markup.Inline(rows...)
	return markup
}

func formatDeadlines(cat catalog.Category) string {
	var b strings.Builder
	b.WriteString(cat.Name + "\n")
	b.WriteString(cat.Description + "\n\n")
	b.WriteString("━━━━━━━━━━━━━━━━━━━━\n\n")

	for i, ob := range cat.Obligations {
		b.WriteString(fmt.Sprintf("*%d. %s*\n", i+1, ob.Title))
		b.WriteString(fmt.Sprintf("📋 Tax Type: %s\n", ob.TaxType))
		b.WriteString(fmt.Sprintf("📅 Due Date: %s\n", ob.DueDateText))
		if ob.Description != "" {
			b.WriteString(fmt.Sprintf("ℹ️ %s\n", ob.Description))
		}
		b.WriteString(fmt.Sprintf("⚠️ Penalty: %s\n\n", ob.PenaltyText))
	}

	b.WriteString("━━━━━━━━━━━━━━━━━━━━\n")
	b.WriteString("\n💡 You'll receive automatic reminders before each deadline.")
	return b.String()
}

func formatAllCategories(rules *catalog.Catalog) string {
	var b strings.Builder
	b.WriteString("📊 *All Tax Categories - Nigeria Tax Act 2025*\n\n")

	for _, cat := range rules.Categories() {
		b.WriteString(cat.Name + "\n")
		b.WriteString(cat.Description + "\n")
		b.WriteString(fmt.Sprintf("Total Obligations: %d\n\n", len(cat.Obligations)))
	}

	b.WriteString("Use /start to select your category and get personalized reminders.")
	return b.String()
}
