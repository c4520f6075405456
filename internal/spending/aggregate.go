package spending

import (
	"sort"
	"strconv"
	"time"

	"github.com/nathanguimaraes/frontend-bank/internal/domain"
)

// Window selects the chart period.
type Window int

const (
	Week Window = iota
	Month
	Year
)

const (
	weekDays  = 7
	monthDays = 30
)

func (w Window) String() string {
	switch w {
	case Month:
		return "month"
	case Year:
		return "year"
	default:
		return "week"
	}
}

// Unify merges sent and received transfers into one transaction list
// from the viewing account's perspective: sent transfers become
// expenses, received ones income. The result is sorted most recent
// first; the sort is stable, so transfers at the same instant keep
// their input order with sent ahead of received.
func Unify(sent, received []domain.Transfer) []domain.Transaction {
	txs := make([]domain.Transaction, 0, len(sent)+len(received))
	for _, t := range sent {
		txs = append(txs, domain.Transaction{
			ID:          t.ID,
			Amount:      t.Value,
			Type:        domain.Expense,
			Description: "transfer to " + t.Receiver.FullName,
			Date:        t.Date,
		})
	}
	for _, t := range received {
		txs = append(txs, domain.Transaction{
			ID:          t.ID,
			Amount:      t.Value,
			Type:        domain.Income,
			Description: "transfer from " + t.Sender.FullName,
			Date:        t.Date,
		})
	}
	sort.SliceStable(txs, func(i, j int) bool { return txs[i].Date.After(txs[j].Date) })
	return txs
}

// Bucket is one chart column: a calendar-period label and the summed
// outgoing value for that period.
type Bucket struct {
	Label string
	Value float64
}

// Buckets groups expense transactions into calendar buckets for the
// selected window, ordered oldest first. Week and Month cover the last
// 7 and 30 days ending on now's day; Year covers the twelve months of
// now's calendar year. Transactions that fall outside the window, or
// that carry no date at all, contribute to no bucket.
func Buckets(txs []domain.Transaction, w Window, now time.Time) []Bucket {
	if w == Year {
		return yearBuckets(txs, now)
	}

	days := weekDays
	if w == Month {
		days = monthDays
	}

	buckets := make([]Bucket, days)
	bucketDays := make([]time.Time, days)
	for i := range buckets {
		day := now.AddDate(0, 0, i-days+1)
		bucketDays[i] = day
		if w == Week {
			buckets[i].Label = day.Weekday().String()[:3]
		} else {
			buckets[i].Label = strconv.Itoa(day.Day())
		}
	}

	for _, tx := range txs {
		if tx.Type != domain.Expense || tx.Date.IsZero() {
			continue
		}
		date := tx.Date.In(now.Location())
		for i, day := range bucketDays {
			if sameDay(date, day) {
				buckets[i].Value += tx.Amount
				break
			}
		}
	}
	return buckets
}

func yearBuckets(txs []domain.Transaction, now time.Time) []Bucket {
	buckets := make([]Bucket, 12)
	for m := time.January; m <= time.December; m++ {
		buckets[m-1].Label = m.String()[:3]
	}
	for _, tx := range txs {
		if tx.Type != domain.Expense || tx.Date.IsZero() {
			continue
		}
		date := tx.Date.In(now.Location())
		if date.Year() != now.Year() {
			continue
		}
		buckets[date.Month()-1].Value += tx.Amount
	}
	return buckets
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
