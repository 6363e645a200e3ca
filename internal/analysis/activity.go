package analysis

import (
	"sort"
	"time"

	"behavior-analytics/internal/domain"
)

const dateLayout = "2006-01-02"

// PeriodAt ubica un instante en su franja horaria local.
func PeriodAt(ts time.Time, loc *time.Location) domain.Period {
	hour := ts.In(location(loc)).Hour()
	switch {
	case hour >= 6 && hour < 12:
		return domain.PeriodMorning
	case hour >= 12 && hour < 18:
		return domain.PeriodAfternoon
	case hour >= 18 && hour < 22:
		return domain.PeriodEvening
	default:
		return domain.PeriodNight
	}
}

// ActivityBreakdown reparte los registros por franja, ordena por cantidad
// descendente (empates segun domain.Periods) y devuelve la franja mas activa.
// Solo se incluyen franjas con al menos un mensaje.
func ActivityBreakdown(records []domain.MessageRecord, loc *time.Location) ([]domain.ActivityBucket, domain.Period) {
	if len(records) == 0 {
		return nil, ""
	}
	counts := make(map[domain.Period]int, len(domain.Periods))
	for _, r := range records {
		counts[PeriodAt(r.CreatedAt, loc)]++
	}

	total := float64(len(records))
	buckets := make([]domain.ActivityBucket, 0, len(counts))
	for _, p := range domain.Periods {
		if counts[p] == 0 {
			continue
		}
		buckets = append(buckets, domain.ActivityBucket{
			Period:     p,
			Count:      counts[p],
			Percentage: float64(counts[p]) / total * 100,
		})
	}
	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].Count > buckets[j].Count
	})
	return buckets, buckets[0].Period
}

// DailyBreakdown agrupa por fecha calendario local, en orden ascendente.
func DailyBreakdown(records []domain.MessageRecord, loc *time.Location) []domain.DailyAggregate {
	type acc struct {
		count int
		sum   float64
	}
	byDate := make(map[string]*acc)
	for _, r := range records {
		key := r.CreatedAt.In(location(loc)).Format(dateLayout)
		a, ok := byDate[key]
		if !ok {
			a = &acc{}
			byDate[key] = a
		}
		a.count++
		a.sum += r.Polarity
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	out := make([]domain.DailyAggregate, 0, len(dates))
	for _, d := range dates {
		a := byDate[d]
		mean := a.sum / float64(a.count)
		out = append(out, domain.DailyAggregate{
			Date:          d,
			MessageCount:  a.count,
			MeanSentiment: mean,
			Mood:          ClassifyMood(mean),
		})
	}
	return out
}

// DaysActive cuenta dias calendario inclusivos entre first y now, minimo 1.
func DaysActive(first, now time.Time, loc *time.Location) int {
	loc = location(loc)
	f := first.In(loc)
	n := now.In(loc)
	start := time.Date(f.Year(), f.Month(), f.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
	days := int(end.Sub(start).Hours()/24) + 1
	return max(days, 1)
}

func location(loc *time.Location) *time.Location {
	if loc == nil {
		return time.Local
	}
	return loc
}
