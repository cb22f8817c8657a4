package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"
	"unicode/utf8"

	"github.com/donaldgifford/avito-client/internal/avito"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printSelf(w io.Writer, me *avito.UserInfoSelf) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%d\n", me.ID)
	tw.writef("Name:\t%s\n", me.Name)
	if me.Email != "" {
		tw.writef("Email:\t%s\n", me.Email)
	}
	if me.Phone != "" {
		tw.writef("Phone:\t%s\n", me.Phone)
	}
	if me.ProfileURL != "" {
		tw.writef("Profile:\t%s\n", me.ProfileURL)
	}
	return tw.finish()
}

func printBalance(w io.Writer, b *avito.Balance) error {
	tw := newTabWriter(w)
	tw.writef("Real:\t%.2f RUB\n", b.Real)
	tw.writef("Bonus:\t%.2f RUB\n", b.Bonus)
	return tw.finish()
}

func printRating(w io.Writer, r *avito.RatingInfo) error {
	tw := newTabWriter(w)
	tw.writef("Enabled:\t%v\n", r.IsEnabled)
	if r.Rating != nil {
		tw.writef("Score:\t%.1f\n", r.Rating.Score)
		tw.writef("Reviews:\t%d (%d scored)\n", r.Rating.ReviewsCount, r.Rating.ReviewsWithScoreCount)
	}
	return tw.finish()
}

func printOperations(w io.Writer, ops []avito.OperationsHistoryItem) error {
	tw := newTabWriter(w)
	tw.writef("UPDATED\tTYPE\tNAME\tTOTAL\tSERVICE\n")
	for i := range ops {
		op := &ops[i]
		tw.writef("%s\t%s\t%s\t%.2f\t%s\n",
			op.UpdatedAt.Format(time.DateTime),
			op.OperationType,
			truncate(op.OperationName, 40),
			op.AmountTotal,
			op.ServiceName,
		)
	}
	return tw.finish()
}

func printToken(w io.Writer, state avito.TokenState, t *avito.Token) error {
	tw := newTabWriter(w)
	tw.writef("State:\t%s\n", state)
	if t != nil {
		tw.writef("Kind:\t%s\n", t.Kind())
		if !t.ExpiresAt.IsZero() {
			tw.writef("Expires:\t%s\n", t.ExpiresAt.Local().Format(time.DateTime))
		}
		if t.Scope != "" {
			tw.writef("Scope:\t%s\n", t.Scope)
		}
	}
	return tw.finish()
}

func printChats(w io.Writer, chats []avito.Chat, me int64) error {
	tw := newTabWriter(w)
	tw.writef("ID\tWITH\tITEM\tUPDATED\tLAST MESSAGE\n")
	for i := range chats {
		ch := &chats[i]
		last := "-"
		if ch.LastMessage != nil {
			last = truncate(messageSummary(ch.LastMessage.Type, &ch.LastMessage.Content), 40)
		}
		tw.writef("%s\t%s\t%s\t%s\t%s\n",
			ch.ID,
			counterpart(ch.Users, me),
			truncate(ch.Context.Value.Title, 30),
			time.Unix(ch.Updated, 0).Format(time.DateTime),
			last,
		)
	}
	return tw.finish()
}

func printMessages(w io.Writer, msgs []avito.Message) error {
	tw := newTabWriter(w)
	tw.writef("ID\tDIR\tTYPE\tCREATED\tCONTENT\n")
	for i := range msgs {
		m := &msgs[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\n",
			m.ID,
			m.Direction,
			m.Type,
			time.Unix(m.Created, 0).Format(time.DateTime),
			truncate(messageSummary(m.Type, &m.Content), 60),
		)
	}
	return tw.finish()
}

func printSubscriptions(w io.Writer, subs []avito.WebhookSubscription) error {
	tw := newTabWriter(w)
	tw.writef("URL\tVERSION\n")
	for i := range subs {
		tw.writef("%s\t%s\n", subs[i].URL, subs[i].Version)
	}
	return tw.finish()
}

// messageSummary renders message content as one line.
func messageSummary(t avito.MessageType, c *avito.MessageContent) string {
	switch {
	case c.Text != "":
		return c.Text
	case c.Link != nil:
		return c.Link.URL
	case c.Item != nil:
		return "[item] " + c.Item.Title
	case c.Image != nil:
		return "[image]"
	case c.Location != nil:
		return "[location] " + c.Location.Title
	case c.Call != nil:
		return "[call] " + c.Call.Status
	default:
		return "[" + string(t) + "]"
	}
}

// counterpart returns the name of the first chat member that is not me.
func counterpart(users []avito.User, me int64) string {
	for i := range users {
		if users[i].ID != me {
			return users[i].Name
		}
	}
	return "-"
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	return string([]rune(s)[:maxLen-3]) + "..."
}
