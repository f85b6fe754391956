package signal

import "testing"

func TestConfidenceScore_ClampsAndTolerates(t *testing.T) {
	cases := []struct {
		name string
		doc  Document
		want float64
	}{
		{"missing", Document{}, 0},
		{"in range", Document{"confidenceScore": 0.42}, 0.42},
		{"above one", Document{"confidenceScore": 3.5}, 1},
		{"below zero", Document{"confidenceScore": -0.5}, 0},
		{"mistyped", Document{"confidenceScore": "high"}, 0},
		{"integer", Document{"confidenceScore": 1}, 1},
	}
	for _, tc := range cases {
		if got := tc.doc.ConfidenceScore(); got != tc.want {
			t.Fatalf("%s: ConfidenceScore = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestBot_Accessors(t *testing.T) {
	doc := Document{
		"bot": map[string]any{
			"isBot":      true,
			"signals":    []any{"webdriver", "headless UA"},
			"confidence": 0.9,
		},
	}
	bot := doc.Bot()
	if !bot.IsBot {
		t.Fatalf("IsBot = false")
	}
	if len(bot.Signals) != 2 || bot.Signals[0] != "webdriver" {
		t.Fatalf("Signals = %v", bot.Signals)
	}
	if bot.Confidence != 0.9 {
		t.Fatalf("Confidence = %v", bot.Confidence)
	}
}

func TestBot_AbsentOrMalformed(t *testing.T) {
	if bot := (Document{}).Bot(); bot.IsBot || bot.Signals != nil {
		t.Fatalf("absent bot block must be zero-valued: %#v", bot)
	}
	if bot := (Document{"bot": "yes"}).Bot(); bot.IsBot {
		t.Fatalf("mistyped bot block must be zero-valued: %#v", bot)
	}
}

func TestTimezoneAndIncognito(t *testing.T) {
	doc := Document{
		"timezone":  "Europe/Berlin",
		"incognito": map[string]any{"isPrivate": true, "browserName": "Firefox"},
	}
	if got := doc.Timezone(); got != "Europe/Berlin" {
		t.Fatalf("Timezone = %q", got)
	}
	if !doc.IncognitoPrivate() {
		t.Fatalf("IncognitoPrivate = false")
	}
	if (Document{}).IncognitoPrivate() {
		t.Fatalf("absent incognito block must read false")
	}
}
