package matchmaking

// BuildMatches lays out the single elimination tree of entries. Entries are
// placed by slot on max(size, next power of two) slots; the grown size is
// returned with the matches. Round one pairs neighbouring slots and skips
// empty pairs, a lone athlete gets a bye and wins it. Later rounds pair the
// previous round's matches and carry known winners forward. Fewer than two
// entries produce no matches.
func BuildMatches(bracketID string, size int, entries []*Entry, newID func() string) (int, []*Match) {
	if len(entries) < 2 {
		return size, nil
	}
	if next := NextPowerOfTwo(len(entries)); next > size {
		size = next
	}

	slots := make([]*Entry, size)
	for _, entry := range entries {
		if entry.Slot >= 1 && entry.Slot <= size {
			slots[entry.Slot-1] = entry
		}
	}

	var all []*Match
	var round []*Match
	position := 1
	for i := 0; i < size; i += 2 {
		blue, red := slots[i], slots[i+1]
		if blue == nil && red == nil {
			continue
		}
		m := &Match{
			ID:          newID(),
			BracketID:   bracketID,
			RoundNumber: 1,
			Position:    position,
			BlueEntryID: entryID(blue),
			RedEntryID:  entryID(red),
			IsBye:       (blue == nil) != (red == nil),
		}
		if m.IsBye {
			if blue != nil {
				m.WinnerEntryID = entryID(blue)
			} else {
				m.WinnerEntryID = entryID(red)
			}
		}
		position++
		round = append(round, m)
		all = append(all, m)
	}

	for number := 2; len(round) > 1; number++ {
		var next []*Match
		position = 1
		for i := 0; i < len(round); i += 2 {
			blue := round[i]
			m := &Match{
				ID:                newID(),
				BracketID:         bracketID,
				RoundNumber:       number,
				Position:          position,
				BlueSourceMatchID: copyID(&blue.ID),
				BlueEntryID:       copyID(blue.WinnerEntryID),
			}
			if i+1 < len(round) {
				red := round[i+1]
				m.RedSourceMatchID = copyID(&red.ID)
				m.RedEntryID = copyID(red.WinnerEntryID)
			}
			position++
			next = append(next, m)
			all = append(all, m)
		}
		round = next
	}
	return size, all
}

func entryID(e *Entry) *string {
	if e == nil {
		return nil
	}
	id := e.ID
	return &id
}

func copyID(id *string) *string {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
