package reviews

import (
	"fmt"
	"math"
)

// StarValues lists the rating buckets in display order.
var StarValues = []int{5, 4, 3, 2, 1}

// Bucket is the number of reviews carrying exactly Stars.
type Bucket struct {
	Stars int `json:"stars"`
	Count int `json:"count"`
}

// Summary holds the statistics shown above the review list.
type Summary struct {
	Count        int      `json:"count"`
	Sum          int      `json:"sum"`
	Distribution []Bucket `json:"distribution"`
}

// Summarize computes count, rating sum and the per-star histogram. It
// reports false for an empty list, where no average exists.
//
// Ratings outside 1..5 add to Count and Sum but fall in no bucket.
func Summarize(list []Review) (Summary, bool) {
	if len(list) == 0 {
		return Summary{}, false
	}

	counts := make(map[int]int, len(StarValues))
	s := Summary{Count: len(list)}
	for _, r := range list {
		s.Sum += r.Rating
		counts[r.Rating]++
	}

	for _, stars := range StarValues {
		if n := counts[stars]; n > 0 {
			s.Distribution = append(s.Distribution, Bucket{Stars: stars, Count: n})
		}
	}
	return s, true
}

// Average returns the mean rating, or 0 for an empty summary.
func (s Summary) Average() float64 {
	if s.Count == 0 {
		return 0
	}
	return float64(s.Sum) / float64(s.Count)
}

// RoundedAverage returns the mean rounded to one decimal place.
func (s Summary) RoundedAverage() float64 {
	return math.Round(s.Average()*10) / 10
}

// AverageLabel formats the mean with exactly one decimal ("4.0").
func (s Summary) AverageLabel() string {
	return fmt.Sprintf("%.1f", s.RoundedAverage())
}

// Label renders a bucket as "5★: 3".
func (b Bucket) Label() string {
	return fmt.Sprintf("%d★: %d", b.Stars, b.Count)
}
