package resource

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/bitfield/script"
	"github.com/schollz/progressbar/v3"
)

// Download fetches URL to Path. It is guarded by Creates: when that path
// already exists the download is considered converged and nothing runs.
// Insecure disables TLS certificate verification, which is how the Katello
// CA consumer RPM has to be fetched before the CA is trusted locally.
type Download struct {
	URL      string
	Path     string
	Creates  string
	Insecure bool
	Quiet    bool
}

func (d *Download) Name() string {
	return "download " + d.URL
}

func (d *Download) Apply(ctx context.Context, noop bool) (Status, error) {
	if _, err := os.Stat(d.Creates); err == nil {
		return StatusUnchanged, nil
	}
	if noop {
		return StatusSkipped, nil
	}

	client := http.DefaultClient
	if d.Insecure {
		client = &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, //nolint:gosec
			},
		}
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, d.URL, http.NoBody)
	if err != nil {
		return StatusFailed, err
	}

	resp, err := client.Do(request)
	if err != nil {
		return StatusFailed, fmt.Errorf("fetching %s: %w", d.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return StatusFailed, fmt.Errorf("fetching %s: unexpected status %s", d.URL, resp.Status)
	}

	f, err := os.Create(d.Path)
	if err != nil {
		return StatusFailed, err
	}

	var out io.Writer = f
	if !d.Quiet {
		bar := progressbar.DefaultBytes(resp.ContentLength, "downloading "+d.Path)
		out = io.MultiWriter(f, bar)
	}

	if _, err := io.Copy(out, resp.Body); err != nil {
		f.Close()
		// A partial file would defeat the Creates guard on the next run.
		os.Remove(d.Path)
		return StatusFailed, fmt.Errorf("downloading %s: %w", d.URL, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(d.Path)
		return StatusFailed, err
	}
	return StatusChanged, nil
}

// Package installs a local RPM, guarded by Creates the same way an exec
// resource would be.
type Package struct {
	Source  string
	Creates string
}

func (p *Package) Name() string {
	return "package " + p.Source
}

func (p *Package) Apply(_ context.Context, noop bool) (Status, error) {
	if _, err := os.Stat(p.Creates); err == nil {
		return StatusUnchanged, nil
	}
	if noop {
		return StatusSkipped, nil
	}

	pipe := script.Exec(fmt.Sprintf("yum install -y %s", p.Source))
	pipe.Wait()
	if pipe.ExitStatus() != 0 {
		output, _ := pipe.String()
		return StatusFailed, fmt.Errorf("installing %s: %s", p.Source, output)
	}
	return StatusChanged, nil
}
