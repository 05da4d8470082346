package fbrapi

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const leaguesJSON = `{
	"data": [
		{
			"league_type": "domestic_leagues",
			"leagues": [
				{"league_id": 9, "competition_name": "Premier League", "gender": "M", "first_season": "1888-1889"},
				{"league_id": 189, "competition_name": "Women's Super League", "gender": "F"}
			]
		},
		{
			"league_type": "domestic_cups",
			"leagues": [
				{"league_id": 514, "competition_name": "FA Cup", "gender": "M"}
			]
		}
	]
}`

const seasonsJSON = `{
	"data": [
		{
			"league_id": 9,
			"season_id": [
				{"season_id": "2023-2024", "champion": "Manchester City"},
				{"season_id": "2022-2023", "champion": "Manchester City"}
			]
		}
	]
}`

func decodeLeagues(t *testing.T) *LeaguesPayload {
	t.Helper()
	var payload LeaguesPayload
	require.NoError(t, json.Unmarshal([]byte(leaguesJSON), &payload))
	return &payload
}

func decodeSeasons(t *testing.T) *SeasonsPayload {
	t.Helper()
	var payload SeasonsPayload
	require.NoError(t, json.Unmarshal([]byte(seasonsJSON), &payload))
	return &payload
}

func TestFlattenLeagues(t *testing.T) {
	t.Run("keeps men's entries and attaches league_type", func(t *testing.T) {
		rows := FlattenLeagues(decodeLeagues(t))

		require.Len(t, rows, 2)

		assert.Equal(t, "domestic_leagues", rows[0]["league_type"])
		assert.Equal(t, "Premier League", rows[0]["competition_name"])
		assert.Equal(t, "M", rows[0]["gender"])
		assert.Equal(t, float64(9), rows[0]["league_id"])
		assert.Equal(t, "1888-1889", rows[0]["first_season"], "opaque fields pass through")

		assert.Equal(t, "domestic_cups", rows[1]["league_type"])
		assert.Equal(t, "FA Cup", rows[1]["competition_name"])
	})

	t.Run("drops non-male entries", func(t *testing.T) {
		for _, row := range FlattenLeagues(decodeLeagues(t)) {
			assert.Equal(t, "M", row["gender"])
		}
	})

	t.Run("additive across buckets", func(t *testing.T) {
		payload := decodeLeagues(t)
		rows := FlattenLeagues(payload)

		var want int
		for _, bucket := range payload.Data {
			for _, lg := range bucket.Leagues {
				if lg["gender"] == "M" {
					want++
				}
			}
		}
		assert.Len(t, rows, want)
	})

	t.Run("does not mutate the payload", func(t *testing.T) {
		payload := decodeLeagues(t)
		FlattenLeagues(payload)

		for _, bucket := range payload.Data {
			for _, lg := range bucket.Leagues {
				_, ok := lg["league_type"]
				assert.False(t, ok, "league_type must not leak into the payload rows")
			}
		}
	})

	t.Run("nil and empty payloads", func(t *testing.T) {
		assert.Nil(t, FlattenLeagues(nil))
		assert.Nil(t, FlattenLeagues(&LeaguesPayload{}))
	})
}

func TestFlattenSeasons(t *testing.T) {
	t.Run("season entries pass through unmodified", func(t *testing.T) {
		rows := FlattenSeasons(decodeSeasons(t))

		require.Len(t, rows, 2)
		assert.Equal(t, "2023-2024", rows[0]["season_id"])
		assert.Equal(t, "Manchester City", rows[0]["champion"])
	})

	t.Run("bucket league_id is not attached", func(t *testing.T) {
		for _, row := range FlattenSeasons(decodeSeasons(t)) {
			_, ok := row["league_id"]
			assert.False(t, ok)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		payload := decodeSeasons(t)
		first := FlattenSeasons(payload)
		second := FlattenSeasons(payload)
		assert.Equal(t, first, second)
	})

	t.Run("nil and empty payloads", func(t *testing.T) {
		assert.Nil(t, FlattenSeasons(nil))
		assert.Nil(t, FlattenSeasons(&SeasonsPayload{}))
	})
}
