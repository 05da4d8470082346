package fbrapi

// FlattenLeagues turns the bucketed /leagues payload into flat rows. Only
// men's entries are kept; each kept row gains the league_type of its bucket.
// Rows from different buckets are appended as-is, never merged or deduped.
// The input payload is left untouched.
func FlattenLeagues(payload *LeaguesPayload) []Row {
	if payload == nil {
		return nil
	}

	var rows []Row
	for _, bucket := range payload.Data {
		for _, lg := range bucket.Leagues {
			if lg["gender"] != "M" {
				continue
			}
			row := make(Row, len(lg)+1)
			for k, v := range lg {
				row[k] = v
			}
			row["league_type"] = bucket.LeagueType
			rows = append(rows, row)
		}
	}
	return rows
}

// FlattenSeasons turns the bucketed /league-seasons payload into flat rows.
// Season entries pass through unmodified; the bucket's league_id is not
// copied onto the rows.
func FlattenSeasons(payload *SeasonsPayload) []Row {
	if payload == nil {
		return nil
	}

	var rows []Row
	for _, bucket := range payload.Data {
		rows = append(rows, bucket.Seasons...)
	}
	return rows
}
