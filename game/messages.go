package game

import "encoding/json"

// Wire protocol: JSON messages tagged by "type", snake_case fields.

type clientMessage struct {
	Type              string   `json:"type"`
	PlayerName        string   `json:"player_name,omitempty"`
	Token             string   `json:"token,omitempty"`
	Word              string   `json:"word,omitempty"`
	SelectedLetterIds []string `json:"selected_letter_ids,omitempty"`
}

const (
	msgJoin       = "join"
	msgStartGame  = "start_game"
	msgSubmitWord = "submit_word"
)

func mustEncode(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return data
}

func packetPlayerJoined(playerName string, roster []PlayerInfo) []byte {
	return mustEncode(struct {
		Type       string       `json:"type"`
		PlayerName string       `json:"player_name"`
		Players    []PlayerInfo `json:"players"`
	}{"player_joined", playerName, roster})
}

func packetGameState(s Snapshot) []byte {
	return mustEncode(struct {
		Type            string       `json:"type"`
		Letters         []Tile       `json:"letters"`
		Players         []PlayerInfo `json:"players"`
		GameStarted     bool         `json:"game_started"`
		WordLength      int          `json:"word_length"`
		DurationMinutes int          `json:"timer_minutes"`
		TimeRemaining   int          `json:"time_remaining"`
	}{"game_state", s.Table, s.Roster, s.Started, s.WordLength, s.DurationMinutes, s.TimeRemaining})
}

func packetGameStarted(durationMinutes, timeRemaining int) []byte {
	return mustEncode(struct {
		Type            string `json:"type"`
		DurationMinutes int    `json:"timer_minutes"`
		TimeRemaining   int    `json:"time_remaining"`
	}{"game_started", durationMinutes, timeRemaining})
}

func packetNewLetter(letter string, table []Tile) []byte {
	return mustEncode(struct {
		Type    string `json:"type"`
		Letter  string `json:"letter"`
		Letters []Tile `json:"letters"`
	}{"new_letter", letter, table})
}

func packetWordAccepted(res ClaimResult) []byte {
	return mustEncode(struct {
		Type    string       `json:"type"`
		Word    string       `json:"word"`
		Player  string       `json:"player"`
		Score   int          `json:"score"`
		Letters []Tile       `json:"letters"`
		Players []PlayerInfo `json:"players"`
	}{"word_accepted", res.Word, res.PlayerName, res.ScoreDelta, res.Table, res.Roster})
}

func packetWordRejected(word, reason string) []byte {
	return mustEncode(struct {
		Type   string `json:"type"`
		Word   string `json:"word"`
		Reason string `json:"reason"`
	}{"word_rejected", word, reason})
}

func packetTimerUpdate(timeRemaining int) []byte {
	return mustEncode(struct {
		Type          string `json:"type"`
		TimeRemaining int    `json:"time_remaining"`
	}{"timer_update", timeRemaining})
}

func packetPlayerLeft(playerName string, roster []PlayerInfo) []byte {
	return mustEncode(struct {
		Type       string       `json:"type"`
		PlayerName string       `json:"player_name"`
		Players    []PlayerInfo `json:"players"`
	}{"player_left", playerName, roster})
}

func packetGameEnded(reason string, finalScores []PlayerInfo) []byte {
	return mustEncode(struct {
		Type        string       `json:"type"`
		Reason      string       `json:"reason"`
		FinalScores []PlayerInfo `json:"final_scores"`
	}{"game_ended", reason, finalScores})
}
