package parse

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// headerRe matches the "M/D/YY, H:MM - " prefix that starts every exported
// message. It is the only segmentation anchor, so a body containing this exact
// text splits the message in two.
var headerRe = regexp.MustCompile(`([0-9]{1,2})/([0-9]{1,2})/([0-9]{2,4}),\s([0-9]{1,2}):([0-9]{2})\s-\s`)

// senderSep separates the author name from the body.
const senderSep = ": "

// Parse splits a raw transcript into messages, in transcript order.
// A transcript without any header yields an empty slice and no error.
// A header that does not form a valid date/time fails the whole transcript.
func Parse(raw string) ([]Message, error) {
	locs := headerRe.FindAllStringSubmatchIndex(raw, -1)
	msgs := make([]Message, 0, len(locs))

	for i, loc := range locs {
		ts, err := parseHeader(raw, loc)
		if err != nil {
			return nil, err
		}

		end := len(raw)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		sender, body := splitSender(raw[loc[1]:end])
		msgs = append(msgs, newMessage(ts, sender, body))
	}

	return msgs, nil
}

// ParseFile reads and parses an exported transcript from disk.
func ParseFile(filePath string) (*ParseResult, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	msgs, err := Parse(strings.ToValidUTF8(string(data), "�"))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filePath, err)
	}

	result := &ParseResult{
		Meta: TranscriptMeta{
			FilePath: filePath,
			Mtime:    info.ModTime(),
			Size:     info.Size(),
		},
		Messages: msgs,
	}
	for _, m := range msgs {
		if m.IsSystem() {
			result.Meta.SystemMessages++
		}
	}
	if len(msgs) > 0 {
		result.Meta.FirstAt = msgs[0].Timestamp
		result.Meta.LastAt = msgs[len(msgs)-1].Timestamp
	}
	result.Meta.Participants = len(Participants(msgs)) - 1

	return result, nil
}

// splitSender applies the "<name>: <rest>" rule: the segment must open with a
// non-empty name free of colons and line breaks, followed by ": ". Anything
// else is a system notification and keeps the whole segment as its body.
func splitSender(segment string) (string, string) {
	colon := strings.IndexByte(segment, ':')
	if colon <= 0 || !strings.HasPrefix(segment[colon:], senderSep) {
		return System, segment
	}
	name := segment[:colon]
	if strings.ContainsAny(name, "\r\n") {
		return System, segment
	}
	return name, segment[colon+len(senderSep):]
}

func parseHeader(raw string, loc []int) (time.Time, error) {
	header := raw[loc[0]:loc[1]]
	field := func(n int) string { return raw[loc[2*n]:loc[2*n+1]] }
	fail := func(reason string) (time.Time, error) {
		return time.Time{}, &TimestampError{Header: header, Offset: loc[0], Reason: reason}
	}

	// the pattern only admits ASCII digits, so Atoi cannot fail here
	month, _ := strconv.Atoi(field(1))
	day, _ := strconv.Atoi(field(2))
	year, _ := strconv.Atoi(field(3))
	hour, _ := strconv.Atoi(field(4))
	minute, _ := strconv.Atoi(field(5))

	switch len(field(3)) {
	case 2:
		year += 2000
	case 4:
	default:
		return fail("year must have 2 or 4 digits")
	}

	if month < 1 || month > 12 {
		return fail("month out of range")
	}
	if day < 1 || day > daysIn(time.Month(month), year) {
		return fail("day out of range")
	}
	if hour > 23 {
		return fail("hour out of range")
	}
	if minute > 59 {
		return fail("minute out of range")
	}

	return time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC), nil
}

func daysIn(m time.Month, year int) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// HourBucket labels the one-hour window starting at hour h.
func HourBucket(h int) string {
	if h == 23 {
		return "23-00"
	}
	return fmt.Sprintf("%02d-%02d", h, h+1)
}

// HourBuckets returns all 24 bucket labels in time-of-day order.
func HourBuckets() []string {
	buckets := make([]string, 24)
	for h := range buckets {
		buckets[h] = HourBucket(h)
	}
	return buckets
}

// Participants returns Overall followed by the distinct non-system senders,
// sorted lexicographically.
func Participants(msgs []Message) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, m := range msgs {
		if m.IsSystem() {
			continue
		}
		if _, ok := seen[m.Sender]; ok {
			continue
		}
		seen[m.Sender] = struct{}{}
		names = append(names, m.Sender)
	}
	sort.Strings(names)
	return append([]string{Overall}, names...)
}
