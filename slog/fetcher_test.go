package slog_test

import (
	"bytes"
	"context"
	stdslog "log/slog"
	"testing"

	"github.com/fwojciec/hatenadl/mock"
	hatenaslog "github.com/fwojciec/hatenadl/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_logs_and_delegates(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := stdslog.New(stdslog.NewTextHandler(&buf, nil))

	f := hatenaslog.NewLoggingFetcher(&mock.Fetcher{
		FetchFn: func(context.Context, string, map[string]string) (string, error) {
			return "page body", nil
		},
	}, logger)

	body, err := f.Fetch(context.Background(), "https://blog.example.com", nil)
	require.NoError(t, err)
	assert.Equal(t, "page body", body)

	out := buf.String()
	assert.Contains(t, out, "page fetch")
	assert.Contains(t, out, "url=https://blog.example.com")
	assert.Contains(t, out, "bytes=9")
}

func TestLoggingDownloader_logs_and_delegates(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := stdslog.New(stdslog.NewTextHandler(&buf, nil))

	d := hatenaslog.NewLoggingDownloader(&mock.Downloader{
		DownloadFn: func(context.Context, string) ([]byte, error) {
			return []byte{1, 2}, nil
		},
	}, logger)

	data, err := d.Download(context.Background(), "https://cdn.example/a.jpg")
	require.NoError(t, err)
	assert.Len(t, data, 2)
	assert.Contains(t, buf.String(), "image download")
}
