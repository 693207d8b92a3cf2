package domain

import "encoding/json"

const (
	DefaultReviewBatchSize = 10
	MinReviewBatchSize     = 1
	MaxReviewBatchSize     = 50
)

// Settings are the user-tunable review options, persisted with the snapshot.
type Settings struct {
	AutoSave        bool `json:"autoSave"`
	ReviewBatchSize int  `json:"reviewBatchSize"`
	MobileFullWidth bool `json:"mobileFullWidth"`
	RandomMode      bool `json:"randomMode"`
}

// DefaultSettings returns the settings used for a fresh snapshot and for
// fields absent from a legacy one.
func DefaultSettings() Settings {
	return Settings{
		AutoSave:        true,
		ReviewBatchSize: DefaultReviewBatchSize,
	}
}

// Normalized clamps the batch size into [MinReviewBatchSize, MaxReviewBatchSize],
// treating zero as "never set".
func (s Settings) Normalized() Settings {
	switch {
	case s.ReviewBatchSize == 0:
		s.ReviewBatchSize = DefaultReviewBatchSize
	case s.ReviewBatchSize < MinReviewBatchSize:
		s.ReviewBatchSize = MinReviewBatchSize
	case s.ReviewBatchSize > MaxReviewBatchSize:
		s.ReviewBatchSize = MaxReviewBatchSize
	}
	return s
}

// settingsJSON shadows Settings with pointer fields so that absent keys in a
// legacy blob can be told apart from explicit false/zero values.
type settingsJSON struct {
	AutoSave        *bool `json:"autoSave"`
	ReviewBatchSize *int  `json:"reviewBatchSize"`
	MobileFullWidth *bool `json:"mobileFullWidth"`
	RandomMode      *bool `json:"randomMode"`
}

// UnmarshalJSON fills missing fields from DefaultSettings and clamps the
// batch size, so a malformed or partial blob never yields unusable settings.
func (s *Settings) UnmarshalJSON(data []byte) error {
	var raw settingsJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := DefaultSettings()
	if raw.AutoSave != nil {
		out.AutoSave = *raw.AutoSave
	}
	if raw.ReviewBatchSize != nil {
		out.ReviewBatchSize = *raw.ReviewBatchSize
	}
	if raw.MobileFullWidth != nil {
		out.MobileFullWidth = *raw.MobileFullWidth
	}
	if raw.RandomMode != nil {
		out.RandomMode = *raw.RandomMode
	}
	*s = out.Normalized()
	return nil
}
