package api

import (
	"bytes"
	"log/slog"
	"testing"

	"servicedesk/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckBodyLimit(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		photo    string
		wantErr  bool
		wantWarn bool
	}{
		{name: "fits a full batch", body: "32MB", photo: "5MB"},
		{name: "too small for five photos", body: "10MB", photo: "5MB", wantWarn: true},
		{name: "no photo limit", body: "1MB"},
		{name: "invalid body size", body: "lots", photo: "5MB", wantErr: true},
		{name: "invalid photo size", body: "32MB", photo: "big", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))

			cfg := &config.Config{}
			cfg.HTTP.MaxRequestBodySize = tt.body
			cfg.Storage.MaxPhotoSize = tt.photo

			err := checkBodyLimit(cfg, logger)
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantWarn, buf.Len() > 0)
		})
	}
}
