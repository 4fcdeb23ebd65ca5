package config

import (
	"reflect"
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != "8080" || cfg.Upload.MaxSizeMB != 50 {
		t.Fatalf("unexpected defaults: %+v %+v", cfg.Server, cfg.Upload)
	}
	want := []string{".mp3", ".wav", ".m4a", ".ogg", ".flac", ".webm"}
	if !reflect.DeepEqual(cfg.Upload.AllowedExtensions, want) {
		t.Fatalf("extensions = %v", cfg.Upload.AllowedExtensions)
	}
	if cfg.Janitor.MaxStorageMB != 300 || cfg.Janitor.TargetRatio != 0.8 || cfg.Janitor.Interval != 30*time.Minute {
		t.Fatalf("unexpected janitor defaults: %+v", cfg.Janitor)
	}
	if cfg.Digest.TargetSentences != 3 || cfg.Digest.MaxActionItems != 5 {
		t.Fatalf("unexpected digest defaults: %+v", cfg.Digest)
	}
	if cfg.MaxUploadBytes() != 50<<20 {
		t.Fatalf("MaxUploadBytes = %d", cfg.MaxUploadBytes())
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ALLOWED_EXTENSIONS", "MP3, wav")
	t.Setenv("PARTICIPANTS", "Ada,Tunde")
	t.Setenv("RESULT_TTL", "1h")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Fatalf("port = %s", cfg.Server.Port)
	}
	if !reflect.DeepEqual(cfg.Upload.AllowedExtensions, []string{".mp3", ".wav"}) {
		t.Fatalf("extensions = %v", cfg.Upload.AllowedExtensions)
	}
	if !reflect.DeepEqual(cfg.Digest.Participants, []string{"Ada", "Tunde"}) {
		t.Fatalf("participants = %v", cfg.Digest.Participants)
	}
	if cfg.Redis.ResultTTL != time.Hour {
		t.Fatalf("ttl = %v", cfg.Redis.ResultTTL)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
	}{
		{"ratio too high", map[string]string{"TARGET_RATIO": "1.5"}},
		{"ratio zero", map[string]string{"TARGET_RATIO": "0"}},
		{"no upload size", map[string]string{"MAX_UPLOAD_MB": "0"}},
		{"too many sentences", map[string]string{"TARGET_SENTENCES": "11"}},
		{"migrate in production", map[string]string{"ENVIRONMENT": "production", "DB_AUTO_MIGRATE": "true"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			if _, err := FromEnv(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}
