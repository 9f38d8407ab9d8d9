package parse

import "time"

// System is the sender recorded for group notifications that carry no
// leading "name: " prefix.
const System = "SYSTEM"

// Overall is the pseudo-participant meaning "no sender filter".
const Overall = "Overall"

// Message is one parsed unit of a transcript. All derived fields are filled
// in by Parse and never change afterwards.
type Message struct {
	Timestamp time.Time
	Sender    string // participant name or System
	Body      string // free text, may contain newlines; never nil, may be empty

	Date       time.Time // Timestamp truncated to midnight
	Year       int
	MonthNum   int
	MonthName  string
	Day        int
	DayName    string
	Hour       int
	Minute     int
	HourBucket string // e.g. "14-15", "23-00"
}

// IsSystem reports whether m is a group notification.
func (m Message) IsSystem() bool {
	return m.Sender == System
}

func newMessage(ts time.Time, sender, body string) Message {
	return Message{
		Timestamp:  ts,
		Sender:     sender,
		Body:       body,
		Date:       time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, ts.Location()),
		Year:       ts.Year(),
		MonthNum:   int(ts.Month()),
		MonthName:  ts.Month().String(),
		Day:        ts.Day(),
		DayName:    ts.Weekday().String(),
		Hour:       ts.Hour(),
		Minute:     ts.Minute(),
		HourBucket: HourBucket(ts.Hour()),
	}
}

type TranscriptMeta struct {
	FilePath       string
	Mtime          time.Time
	Size           int64
	FirstAt        time.Time
	LastAt         time.Time
	Participants   int // distinct non-system senders
	SystemMessages int
}

type ParseResult struct {
	Meta     TranscriptMeta
	Messages []Message
}
