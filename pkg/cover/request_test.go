package cover_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mucteba/podcover/pkg/cover"
	"github.com/mucteba/podcover/pkg/imaging"
)

func testPayload() *imaging.Payload {
	return &imaging.Payload{Base64: "aGVsbG8=", MIME: "image/png"}
}

func TestRequestValidate(t *testing.T) {
	req := &cover.Request{Title: "Deep Work", Image: testPayload()}
	assert.NoError(t, req.Validate())

	assert.Error(t, (&cover.Request{Image: testPayload()}).Validate())
	assert.Error(t, (&cover.Request{Title: "  ", Image: testPayload()}).Validate())
	assert.Error(t, (&cover.Request{Title: "Deep Work"}).Validate())
}

func TestOutputName(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		episode string
		want    string
	}{
		{
			name:  "plain title",
			title: "Deep Work",
			want:  "perfect_podcast_Deep_Work.svg",
		},
		{
			name:    "episode prefix",
			title:   "Deep Work",
			episode: "42",
			want:    "perfect_podcast_ep42_Deep_Work.svg",
		},
		{
			name:  "punctuation stripped",
			title: "What's Next? (Part 2)",
			want:  "perfect_podcast_Whats_Next_Part_2.svg",
		},
		{
			name:  "long title capped at 25 runes",
			title: "a very long podcast episode title that keeps going",
			want:  "perfect_podcast_a_very_long_podcast_episo.svg",
		},
		{
			name:  "persian title keeps its letters",
			title: "تمرکز عمیق",
			want:  "perfect_podcast_تمرکز_عمیق.svg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &cover.Request{Title: tt.title, Episode: tt.episode}
			assert.Equal(t, tt.want, req.OutputName())
		})
	}
}
