package tv

import "testing"

func TestParseChannels_StreamVariants(t *testing.T) {
	doc := `[
		{"name": "Canal Uno", "logo": "https://logos.example/uno.png", "country": "ES",
		 "streams": "http://tv.example/uno/master.m3u8"},
		{"name": "Canal Dos", "logo": "https://logos.example/dos.png", "country": "ES",
		 "website": "https://dos.example",
		 "streams": ["http://tv.example/dos/main.m3u8", "http://tv.example/dos/backup.m3u8"]},
		{"name": "Sin Señal", "logo": "", "country": "ES", "streams": []},
		{"name": "Vacío", "logo": "", "country": "ES", "streams": [""]}
	]`

	channels, err := parseChannels([]byte(doc))
	if err != nil {
		t.Fatalf("parseChannels: %v", err)
	}

	// Channels with no resolvable stream are excluded.
	if len(channels) != 2 {
		t.Fatalf("got %d channels, want 2", len(channels))
	}

	if channels[0].URL != "http://tv.example/uno/master.m3u8" {
		t.Errorf("single-string streams: URL = %q", channels[0].URL)
	}
	// First entry of a stream list wins.
	if channels[1].URL != "http://tv.example/dos/main.m3u8" {
		t.Errorf("list streams: URL = %q, want the first entry", channels[1].URL)
	}
}

func TestParseChannels_IDFromPositionAndName(t *testing.T) {
	doc := `[
		{"name": "Uno", "country": "ES", "streams": "http://tv.example/a"},
		{"name": "Dos", "country": "ES", "streams": "http://tv.example/b"}
	]`

	channels, err := parseChannels([]byte(doc))
	if err != nil {
		t.Fatalf("parseChannels: %v", err)
	}
	if channels[0].ID != "0-Uno" || channels[1].ID != "1-Dos" {
		t.Errorf("ids = %q, %q; want 0-Uno, 1-Dos", channels[0].ID, channels[1].ID)
	}
}

func TestParseChannels_BadDocument(t *testing.T) {
	if _, err := parseChannels([]byte(`{"not": "an array"}`)); err == nil {
		t.Error("expected an error for a non-array document")
	}
}
