package media

import (
	"bytes"
	"context"
	"encoding/json"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

// YtdlpResolver probes media URLs with the yt-dlp binary. It asks for the
// best audio format's metadata without downloading anything.
type YtdlpResolver struct {
	bin string
}

func NewYtdlpResolver(bin string) *YtdlpResolver {
	if bin == "" {
		bin = "yt-dlp"
	}
	return &YtdlpResolver{bin: bin}
}

type ytdlpInfo struct {
	Title      string `json:"title"`
	URL        string `json:"url"`
	WebpageURL string `json:"webpage_url"`
}

func (r *YtdlpResolver) Resolve(ctx context.Context, url string) (Resolution, error) {
	cmd := exec.CommandContext(ctx, r.bin,
		"--no-playlist",
		"--dump-json",
		"-f", "bestaudio/best",
		url,
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = err.Error()
		}
		return Resolution{}, errors.Errorf("yt-dlp: %s", detail)
	}

	var info ytdlpInfo
	if err := json.Unmarshal(out, &info); err != nil {
		return Resolution{}, errors.Wrap(err, "yt-dlp: parse output")
	}
	if info.URL == "" {
		return Resolution{}, errors.New("yt-dlp: no stream url in output")
	}
	page := info.WebpageURL
	if page == "" {
		page = url
	}
	return Resolution{Title: info.Title, StreamURL: info.URL, PageURL: page}, nil
}
