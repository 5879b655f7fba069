package statsbomb

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/richard-senior/pitchplot/internal/logger"
)

///////////////////////////////////////////////////////////////////////////////
/// EVENTS
///////////////////////////////////////////////////////////////////////////////

/**
* EventData holds the tables extracted from one match's event json: the
* flattened events plus the companion tables that would otherwise be
* lists nested inside an event row.
 */
type EventData struct {
	Events           *Table
	RelatedEvents    *Table
	ShotFreezeFrames *Table
	TacticsLineups   *Table
}

// the most used columns come first in the events table
var eventLeadingColumns = []string{
	"match_id", "id", "index", "period", "timestamp_minute", "timestamp_second",
	"timestamp_millisecond", "minute", "second", "type_id", "type_name",
	"outcome_id", "outcome_name", "play_pattern_id", "play_pattern_name",
	"possession_team_id", "possession", "possession_team_name", "team_id", "team_name",
	"player_id", "player_name", "position_id",
	"position_name", "duration", "x", "y", "pass_end_x", "pass_end_y", "carry_end_x",
	"carry_end_y", "shot_end_x", "shot_end_y", "shot_end_z",
	"goalkeeper_end_x", "goalkeeper_end_y", "body_part_id", "body_part_name",
}

// location list columns and the scalar columns they split into
var locationColumns = map[string][]string{
	"location":                {"x", "y"},
	"pass_end_location":       {"pass_end_x", "pass_end_y"},
	"carry_end_location":      {"carry_end_x", "carry_end_y"},
	"shot_end_location":       {"shot_end_x", "shot_end_y", "shot_end_z"},
	"goalkeeper_end_location": {"goalkeeper_end_x", "goalkeeper_end_y"},
}

// columns with the same meaning arrive under different prefixes, e.g.
// clearance_aerial_won, pass_aerial_won and shot_aerial_won. Each
// group is merged into the bare column.
var mergedColumns = []string{
	"outcome_id", "outcome_name", "body_part_id", "body_part_name", "aerial_won",
}

/**
* ReadEvents flattens a match event json into tables. Nested objects
* become underscore separated columns (pass.height.name turns into
* pass_height_name), locations split into x and y columns, and the
* nested lists (related events, shot freeze frames, tactics lineups)
* come back as companion tables keyed by the event id.
 */
func ReadEvents(data []byte, matchID int) (*EventData, error) {
	if Config.Warn {
		logger.Warn(LicenceWarning)
	}
	parsed := gjson.ParseBytes(data)
	if !parsed.IsArray() {
		return nil, fmt.Errorf("expected a json array of events")
	}
	raw := parsed.Array()
	if len(raw) == 0 {
		return nil, fmt.Errorf("empty event json")
	}

	events := NewTable(eventLeadingColumns...)
	freeze := NewTable("id", "event_freeze_id", "player_id", "player_name",
		"position_id", "position_name", "teammate", "x", "y", "match_id")
	tactics := NewTable("id", "event_tactics_id", "jersey_number", "player_id",
		"player_name", "position_id", "position_name", "match_id")

	// event id -> related event ids, gathered while flattening
	related := make(map[string][]string)
	order := make([]string, 0, len(raw))

	for _, ev := range raw {
		row := map[string]any{"match_id": matchID}
		eventID := ev.Get("id").String()
		order = append(order, eventID)

		ev.ForEach(func(key, value gjson.Result) bool {
			name := key.String()
			switch name {
			case "timestamp":
				splitTimestamp(row, value.String())
			case "related_events":
				for _, r := range value.Array() {
					related[eventID] = append(related[eventID], r.String())
				}
			case "shot":
				value.ForEach(func(k, v gjson.Result) bool {
					if k.String() == "freeze_frame" {
						addFreezeFrames(freeze, eventID, matchID, v)
					} else {
						flattenValue(row, "shot_"+k.String(), v)
					}
					return true
				})
			case "tactics":
				value.ForEach(func(k, v gjson.Result) bool {
					if k.String() == "lineup" {
						addTacticsLineup(tactics, eventID, matchID, v)
					} else {
						flattenValue(row, "tactics_"+k.String(), v)
					}
					return true
				})
			default:
				flattenValue(row, name, value)
			}
			return true
		})

		splitLocations(row)

		// the ball receipt type carries a spurious asterisk
		if tn, ok := row["type_name"].(string); ok && tn == "Ball Receipt*" {
			row["type_name"] = "Ball Receipt"
		}
		mergePrefixed(row)
		events.AddRow(row)
	}

	events.SortBy("minute", "second", "timestamp_minute", "timestamp_second",
		"timestamp_millisecond", "possession")

	return &EventData{
		Events:           events,
		RelatedEvents:    buildRelatedEvents(events, related, order, matchID),
		ShotFreezeFrames: freeze,
		TacticsLineups:   tactics,
	}, nil
}

// splitTimestamp stores the match clock parts of "00:23:45.920" as
// separate integer columns. The hour is dropped, the minute column
// already carries the full match minute.
func splitTimestamp(row map[string]any, ts string) {
	parts := strings.Split(ts, ":")
	if len(parts) != 3 {
		return
	}
	minute, _ := strconv.Atoi(parts[1])
	secParts := strings.SplitN(parts[2], ".", 2)
	second, _ := strconv.Atoi(secParts[0])
	milli := 0
	if len(secParts) == 2 {
		frac := secParts[1]
		for len(frac) < 3 {
			frac += "0"
		}
		milli, _ = strconv.Atoi(frac[:3])
	}
	row["timestamp_minute"] = minute
	row["timestamp_second"] = second
	row["timestamp_millisecond"] = milli
}

/**
* flattenValue stores a json value under the given column name,
* recursing into objects with underscore joined names. A child key
* that already starts with the parent name is not prefixed again, so
* pass.end_location lands as pass_end_location rather than
* pass_pass_end_location.
 */
func flattenValue(row map[string]any, name string, value gjson.Result) {
	switch {
	case value.IsObject():
		value.ForEach(func(k, v gjson.Result) bool {
			child := k.String()
			if !strings.HasPrefix(child, name) {
				child = name + "_" + child
			}
			flattenValue(row, child, v)
			return true
		})
	case value.IsArray():
		arr := value.Array()
		floats := make([]float64, 0, len(arr))
		for _, a := range arr {
			if a.Type != gjson.Number {
				// non-numeric lists are kept as raw json
				row[name] = value.Raw
				return
			}
			floats = append(floats, a.Float())
		}
		row[name] = floats
	default:
		row[name] = cellValue(value)
	}
}

func cellValue(value gjson.Result) any {
	switch value.Type {
	case gjson.Number:
		return value.Float()
	case gjson.True:
		return true
	case gjson.False:
		return false
	case gjson.Null:
		return nil
	default:
		return value.String()
	}
}

// splitLocations replaces the location list columns with scalar x, y
// and z columns
func splitLocations(row map[string]any) {
	for col, newCols := range locationColumns {
		v, ok := row[col]
		if !ok {
			continue
		}
		delete(row, col)
		floats, ok := v.([]float64)
		if !ok {
			continue
		}
		for i, nc := range newCols {
			if i < len(floats) {
				row[nc] = floats[i]
			}
		}
	}
}

// mergePrefixed collapses prefixed variants like pass_outcome_id into
// the bare column, keeping the first value found
func mergePrefixed(row map[string]any) {
	for _, target := range mergedColumns {
		keys := make([]string, 0)
		for k := range row {
			if k != target && strings.HasSuffix(k, "_"+target) {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		for _, k := range keys {
			if _, exists := row[target]; !exists {
				row[target] = row[k]
			}
			delete(row, k)
		}
	}
}

func addFreezeFrames(freeze *Table, eventID string, matchID int, frames gjson.Result) {
	i := 0
	frames.ForEach(func(_, frame gjson.Result) bool {
		i++
		row := map[string]any{
			"id":              eventID,
			"event_freeze_id": i,
			"match_id":        matchID,
		}
		frame.ForEach(func(k, v gjson.Result) bool {
			flattenValue(row, k.String(), v)
			return true
		})
		if loc, ok := row["location"].([]float64); ok && len(loc) >= 2 {
			row["x"] = loc[0]
			row["y"] = loc[1]
		}
		delete(row, "location")
		freeze.AddRow(row)
		return true
	})
}

func addTacticsLineup(tactics *Table, eventID string, matchID int, lineup gjson.Result) {
	i := 0
	lineup.ForEach(func(_, entry gjson.Result) bool {
		i++
		row := map[string]any{
			"id":               eventID,
			"event_tactics_id": i,
			"match_id":         matchID,
		}
		entry.ForEach(func(k, v gjson.Result) bool {
			flattenValue(row, k.String(), v)
			return true
		})
		tactics.AddRow(row)
		return true
	})
}

/**
* buildRelatedEvents links events both ways. Some events, carries in
* particular, reference events that do not reference them back, so
* every pair is mirrored before the type and index of each side is
* joined on.
 */
func buildRelatedEvents(events *Table, related map[string][]string,
	order []string, matchID int) *Table {

	type pair struct{ id, relatedID string }
	seen := make(map[pair]bool)
	pairs := make([]pair, 0)
	add := func(a, b string) {
		p := pair{a, b}
		if !seen[p] {
			seen[p] = true
			pairs = append(pairs, p)
		}
	}
	for _, id := range order {
		for _, r := range related[id] {
			add(id, r)
			add(r, id)
		}
	}

	// event id -> (type_name, index) for both sides of the link
	type info struct {
		typeName any
		index    any
	}
	lookup := make(map[string]info, events.NumRows())
	for _, row := range events.Rows {
		if id, ok := row["id"].(string); ok {
			lookup[id] = info{typeName: row["type_name"], index: row["index"]}
		}
	}

	out := NewTable("match_id", "id", "type_name", "index",
		"id_related", "type_name_related", "index_related")
	for _, p := range pairs {
		row := map[string]any{
			"match_id":   matchID,
			"id":         p.id,
			"id_related": p.relatedID,
		}
		if inf, ok := lookup[p.id]; ok {
			row["type_name"] = inf.typeName
			row["index"] = inf.index
		}
		if inf, ok := lookup[p.relatedID]; ok {
			row["type_name_related"] = inf.typeName
			row["index_related"] = inf.index
		}
		out.AddRow(row)
	}
	return out
}
