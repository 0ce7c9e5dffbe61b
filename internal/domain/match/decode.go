package match

import "strings"

// Drop describes an encoded entry the decoder skipped.
type Drop struct {
	Field  string
	Entry  string
	Reason string
}

// DropObserver receives every skipped entry. It must not retain the decoder's
// state; it exists so callers can log malformed exports.
type DropObserver func(Drop)

const (
	dropReasonTooFewTokens = "expected at least 2 comma separated tokens"
	dropReasonNotTriple    = "expected player_out,player_in,minute"
	dropReasonBadMinute    = "minute is not a non-negative integer"
)

// Decode parses every event field of the record. Events keep field order
// (goals, yellow cards, red cards, substitutions; home before away) and the
// source order within a field.
func Decode(record Record) []Event {
	return DecodeWithObserver(record, nil)
}

// DecodeWithObserver is Decode with a callback for skipped entries.
func DecodeWithObserver(record Record, observe DropObserver) []Event {
	d := decoder{observe: observe}

	d.forField("goals_for", record.GoalsFor, KindGoal)
	d.againstField("goals_against", record.GoalsAgainst, KindGoal)
	d.forField("yellow_cards_for", record.YellowCardsFor, KindYellowCard)
	d.againstField("yellow_cards_against", record.YellowCardsAgainst, KindYellowCard)
	d.forField("red_cards_for", record.RedCardsFor, KindRedCard)
	d.againstField("red_cards_against", record.RedCardsAgainst, KindRedCard)
	d.changesField("changes_for", record.ChangesFor, SideHome)
	d.changesField("changes_against", record.ChangesAgainst, SideAway)

	return d.events
}

type decoder struct {
	events  []Event
	observe DropObserver
}

func (d *decoder) drop(field, entry, reason string) {
	if d.observe == nil {
		return
	}
	d.observe(Drop{Field: field, Entry: entry, Reason: reason})
}

func (d *decoder) emit(e Event) {
	e.Tooltip = DescribeEvent(e)
	d.events = append(d.events, e)
}

// forField decodes "name,...,minute;name,...,minute" into home events.
func (d *decoder) forField(name string, field EventField, kind Kind) {
	if !field.Present() {
		return
	}

	for _, entry := range strings.Split(field.Raw(), ";") {
		if strings.TrimSpace(entry) == "" {
			continue
		}

		tokens := strings.Split(entry, ",")
		if len(tokens) < 2 {
			d.drop(name, entry, dropReasonTooFewTokens)
			continue
		}

		minute := strings.TrimSpace(tokens[len(tokens)-1])
		if _, ok := ParseMinute(minute); !ok {
			d.drop(name, entry, dropReasonBadMinute)
			continue
		}

		d.emit(Event{
			Minute: minute,
			Side:   SideHome,
			Kind:   kind,
			Player: strings.TrimSpace(strings.Join(tokens[:len(tokens)-1], ",")),
		})
	}
}

// againstField decodes "minute,minute,..." into away events.
func (d *decoder) againstField(name string, field EventField, kind Kind) {
	if !field.Present() {
		return
	}

	for _, token := range strings.Split(field.Raw(), ",") {
		minute := strings.TrimSpace(token)
		if minute == "" {
			continue
		}
		if _, ok := ParseMinute(minute); !ok {
			d.drop(name, token, dropReasonBadMinute)
			continue
		}

		d.emit(Event{
			Minute: minute,
			Side:   SideAway,
			Kind:   kind,
		})
	}
}

// changesField decodes "out,in,minute;out,in,minute" substitutions.
func (d *decoder) changesField(name string, field EventField, side Side) {
	if !field.Present() {
		return
	}

	for _, entry := range strings.Split(field.Raw(), ";") {
		if strings.TrimSpace(entry) == "" {
			continue
		}

		tokens := strings.Split(entry, ",")
		if len(tokens) != 3 {
			d.drop(name, entry, dropReasonNotTriple)
			continue
		}

		minute := strings.TrimSpace(tokens[2])
		if _, ok := ParseMinute(minute); !ok {
			d.drop(name, entry, dropReasonBadMinute)
			continue
		}

		d.emit(Event{
			Minute:    minute,
			Side:      side,
			Kind:      KindSubstitution,
			PlayerOut: strings.TrimSpace(tokens[0]),
			PlayerIn:  strings.TrimSpace(tokens[1]),
		})
	}
}
