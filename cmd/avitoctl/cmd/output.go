package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	apiclient "github.com/donaldgifford/avito-client/internal/api/client"
)

const timeLayout = "2006-01-02 15:04:05"

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

func printSelf(w io.Writer, me *apiclient.Self) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%d\n", me.ID)
	tw.writef("Name:\t%s\n", me.Name)
	if me.Email != "" {
		tw.writef("Email:\t%s\n", me.Email)
	}
	if me.ProfileURL != "" {
		tw.writef("Profile:\t%s\n", me.ProfileURL)
	}
	return tw.finish()
}

func printQuota(w io.Writer, q *apiclient.Quota) error {
	tw := newTabWriter(w)
	if !q.Enabled {
		tw.writef("Rate limiting:\tdisabled\n")
		return tw.finish()
	}
	tw.writef("Used:\t%d / %d\n", q.DailyUsed, q.DailyLimit)
	tw.writef("Remaining:\t%d\n", q.Remaining)
	tw.writef("Resets:\t%s\n", q.ResetAt.Local().Format(timeLayout))
	return tw.finish()
}

func printStatus(w io.Writer, st *status) error {
	tw := newTabWriter(w)
	tw.writef("Account:\t%s (%d)\n", st.Self.Name, st.Self.ID)
	tw.writef("Balance:\t%.2f RUB (+%.2f bonus)\n", st.Balance.Real, st.Balance.Bonus)
	if st.Rating.IsEnabled {
		tw.writef("Rating:\t%.1f (%d reviews)\n", st.Rating.Score, st.Rating.Reviews)
	} else {
		tw.writef("Rating:\tdisabled\n")
	}
	tw.writef("Token:\t%s%s\n", st.Token.State, expiresSuffix(st.Token.ExpiresAt))
	if st.Quota.Enabled {
		tw.writef("Quota:\t%d of %d used\n", st.Quota.DailyUsed, st.Quota.DailyLimit)
	} else {
		tw.writef("Quota:\tunlimited\n")
	}
	return tw.finish()
}

func expiresSuffix(t *time.Time) string {
	if t == nil {
		return ""
	}
	return ", expires " + t.Local().Format(timeLayout)
}

func printJobsTable(w io.Writer, jobs []apiclient.Job) error {
	tw := newTabWriter(w)
	tw.writef("JOB\tSCHEDULED\tLAST RUN\tNEXT RUN\n")
	for i := range jobs {
		j := &jobs[i]
		tw.writef("%s\t%v\t%s\t%s\n",
			j.Name,
			j.Scheduled,
			formatOptional(j.LastRun),
			formatOptional(j.NextRun),
		)
	}
	return tw.finish()
}

func formatOptional(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Local().Format(timeLayout)
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
