package stats

type Share struct {
	Name    string
	Count   int
	Percent float64 // of all non-system messages, 2 decimals
}

type Leaderboard struct {
	Top    []Share // the TopParticipants busiest senders
	Shares []Share // every sender, busiest first
}

// MostActiveParticipants ranks senders over the whole transcript. It takes no
// participant filter; the leaderboard always covers every sender.
func (a *Analyzer) MostActiveParticipants() Leaderboard {
	c := newCounter()
	for _, m := range a.msgs {
		if m.IsSystem() {
			continue
		}
		c.add(m.Sender)
	}

	var lb Leaderboard
	for _, kv := range c.sorted() {
		lb.Shares = append(lb.Shares, Share{
			Name:    kv.Label,
			Count:   kv.Count,
			Percent: roundTo(float64(kv.Count)/float64(c.total)*100, 2),
		})
	}
	lb.Top = lb.Shares
	if len(lb.Top) > a.opts.TopParticipants {
		lb.Top = lb.Top[:a.opts.TopParticipants]
	}
	return lb
}
