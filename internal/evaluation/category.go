package evaluation

import (
	"strings"
	"time"
)

// Category is the reviewer board tab an application belongs to.
type Category string

const (
	CategoryInProgress Category = "in-progress"
	CategoryCompleted  Category = "completed"
	CategoryNotMet     Category = "not-met"
)

// Categories lists the tabs in display order.
var Categories = []Category{CategoryInProgress, CategoryCompleted, CategoryNotMet}

// ParseCategory parses a tab name; the empty string means in-progress.
func ParseCategory(raw string) (Category, bool) {
	switch Category(strings.ToLower(strings.TrimSpace(raw))) {
	case "", CategoryInProgress:
		return CategoryInProgress, true
	case CategoryCompleted:
		return CategoryCompleted, true
	case CategoryNotMet:
		return CategoryNotMet, true
	}
	return "", false
}

var resolvedStatuses = map[string]bool{
	"PASSED":   true,
	"FAILED":   true,
	"ACCEPTED": true,
	"REJECTED": true,
}

var unresolvedStatuses = map[string]bool{
	"SUBMITTED":   true,
	"PENDING":     true,
	"IN_PROGRESS": true,
	"REVIEWING":   true,
	"EVALUATING":  true,
	"EVALUATED":   true,
}

// NormalizeStatus trims and upper-cases an application status.
func NormalizeStatus(status string) string {
	return strings.ToUpper(strings.TrimSpace(status))
}

// IsResolvedStatus reports whether a reviewer already decided the application.
func IsResolvedStatus(status string) bool {
	return resolvedStatuses[NormalizeStatus(status)]
}

// IsKnownStatus reports whether status is one of the recognised application
// statuses, resolved or not.
func IsKnownStatus(status string) bool {
	st := NormalizeStatus(status)
	return resolvedStatuses[st] || unresolvedStatuses[st]
}

// Categorize places an application on the board. A resolved application is
// always completed, whatever its score. An unresolved one is not-met only when
// its score is known and below the passing score.
func Categorize(status string, score Score) Category {
	st := NormalizeStatus(status)
	if resolvedStatuses[st] {
		return CategoryCompleted
	}
	if unresolvedStatuses[st] && score.Known && !score.Passed() {
		return CategoryNotMet
	}
	return CategoryInProgress
}

// DateBucket groups list entries by how recently they were submitted.
type DateBucket string

const (
	BucketToday     DateBucket = "today"
	BucketThisWeek  DateBucket = "this-week"
	BucketThisMonth DateBucket = "this-month"
	BucketOlder     DateBucket = "older"
)

// BucketByDate buckets t relative to now. Calendar days are taken in loc.
func BucketByDate(t, now time.Time, loc *time.Location) DateBucket {
	if loc == nil {
		loc = time.UTC
	}
	lt, ln := t.In(loc), now.In(loc)
	if !lt.Before(startOfDay(ln)) {
		return BucketToday
	}
	age := ln.Sub(lt)
	switch {
	case age < 7*24*time.Hour:
		return BucketThisWeek
	case age < 30*24*time.Hour:
		return BucketThisMonth
	default:
		return BucketOlder
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
