package domain

import (
	"encoding/json"
	"testing"
)

func TestSettingsUnmarshalDefaults(t *testing.T) {
	tests := []struct {
		name string
		blob string
		want Settings
	}{
		{
			name: "empty object",
			blob: `{}`,
			want: Settings{AutoSave: true, ReviewBatchSize: 10},
		},
		{
			name: "explicit false autoSave survives",
			blob: `{"autoSave": false}`,
			want: Settings{AutoSave: false, ReviewBatchSize: 10},
		},
		{
			name: "batch size clamped high",
			blob: `{"reviewBatchSize": 200}`,
			want: Settings{AutoSave: true, ReviewBatchSize: 50},
		},
		{
			name: "batch size clamped low",
			blob: `{"reviewBatchSize": -1}`,
			want: Settings{AutoSave: true, ReviewBatchSize: 1},
		},
		{
			name: "all fields present",
			blob: `{"autoSave": false, "reviewBatchSize": 25, "mobileFullWidth": true, "randomMode": true}`,
			want: Settings{AutoSave: false, ReviewBatchSize: 25, MobileFullWidth: true, RandomMode: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Settings
			if err := json.Unmarshal([]byte(tt.blob), &got); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSettingsNormalized(t *testing.T) {
	if got := (Settings{}).Normalized().ReviewBatchSize; got != DefaultReviewBatchSize {
		t.Errorf("zero batch size must default to %d, got %d", DefaultReviewBatchSize, got)
	}
	if got := (Settings{ReviewBatchSize: 51}).Normalized().ReviewBatchSize; got != MaxReviewBatchSize {
		t.Errorf("oversized batch must clamp to %d, got %d", MaxReviewBatchSize, got)
	}
}
