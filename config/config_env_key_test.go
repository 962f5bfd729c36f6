package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"changeBus": map[string]any{
			"channelPrefix": "",
		},
		"proximity": map[string]any{
			"radiusKm": 0.5,
		},
		"storage": map[string]any{
			"bucketUrl": "mem://",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "CHANGEBUS_CHANNELPREFIX", want: "changeBus.channelPrefix"},
		{envKey: "PROXIMITY_RADIUSKM", want: "proximity.radiusKm"},
		{envKey: "STORAGE_BUCKETURL", want: "storage.bucketUrl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestApplyDefaults_FillsProximityRules(t *testing.T) {
	cfg := &Config{}

	cfg.ApplyDefaults()

	assert.InDelta(t, 0.5, cfg.Proximity.RadiusKm, 1e-12)
	assert.Equal(t, time.Hour, cfg.Proximity.Cooldown)
	assert.Equal(t, 15*time.Second, cfg.Location.UpdateInterval)
	assert.True(t, cfg.Location.HighAccuracy)
	assert.Equal(t, MaxRankingLimit, cfg.Ranking.Limit)
	assert.Equal(t, 6, cfg.PasswordStrength.MinLength)
	assert.Equal(t, "memory", cfg.ChangeBus.Provider)
	assert.Equal(t, "mem://", cfg.Storage.BucketURL)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Proximity: &ProximityConfig{RadiusKm: 1, Cooldown: 2 * time.Hour, Title: "Hi"},
		Ranking:   &RankingConfig{Limit: 500},
	}

	cfg.ApplyDefaults()

	assert.InDelta(t, 1.0, cfg.Proximity.RadiusKm, 1e-12)
	assert.Equal(t, 2*time.Hour, cfg.Proximity.Cooldown)
	assert.Equal(t, "Hi", cfg.Proximity.Title)
	assert.Equal(t, MaxRankingLimit, cfg.Ranking.Limit)
}
