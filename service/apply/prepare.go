package apply

import (
	"bytes"
	"context"
	"fmt"

	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"github.com/viant/textpatch/model/format"
	"github.com/viant/textpatch/service/patchfile"
)

// prepare resolves the file to patch, takes the optional backup, loads the
// source and opens the output buffer.
func (h *Hunks) prepare(ctx context.Context) error {
	source, err := h.source()
	if err != nil {
		return err
	}
	if h.options.Backup {
		if err = h.backup(ctx, source); err != nil {
			return err
		}
	}
	role := patchfile.Original
	if h.options.Reverse {
		role = patchfile.Modified
	}
	if h.file, err = patchfile.Load(ctx, h.fs, source, role); err != nil {
		return err
	}
	h.outputURL = source
	if h.options.OutputFile != "" {
		h.outputURL = h.options.OutputFile
	}
	h.buffer.Reset()
	h.output = newWriter(&h.buffer)
	h.stats = Stats{}
	return nil
}

// source returns the URL of the file hunks are applied to.
func (h *Hunks) source() (string, error) {
	switch h.format {
	case format.Normal, format.EditScript:
		if h.options.File == "" {
			return "", fmt.Errorf("%w: %v diff needs an explicit file", ErrNoDestination, h.format)
		}
		return h.options.File, nil
	}
	h.file1, h.file2 = h.headers()
	if h.options.File != "" {
		return h.options.File, nil
	}
	chosen, line := h.file1, h.file1Header
	if h.options.Reverse {
		chosen, line = h.file2, h.file2Header
	}
	if chosen == nil {
		if line == "" {
			return "", fmt.Errorf("%w: missing %v file header", ErrNoDestination, h.format)
		}
		_, err := ParseHeader(line)
		return "", err
	}
	if h.options.BaseURL != "" && url.IsRelative(chosen.Path) {
		return url.Join(h.options.BaseURL, chosen.Path), nil
	}
	return chosen.Path, nil
}

func (h *Hunks) headers() (*Header, *Header) {
	var file1, file2 *Header
	if h.file1Header != "" {
		file1, _ = ParseHeader(h.file1Header)
	}
	if h.file2Header != "" {
		file2, _ = ParseHeader(h.file2Header)
	}
	return file1, file2
}

// backup copies URL to URL+suffix; URL has to be an existing regular file.
func (h *Hunks) backup(ctx context.Context, URL string) error {
	exists, err := h.fs.Exists(ctx, URL)
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", URL, err)
	}
	if !exists {
		return fmt.Errorf("%w: %s does not exist", ErrBackupNotFile, URL)
	}
	object, err := h.fs.Object(ctx, URL)
	if err != nil {
		return fmt.Errorf("failed to inspect %s: %w", URL, err)
	}
	if object.IsDir() {
		return fmt.Errorf("%w: %s", ErrBackupNotFile, URL)
	}
	backupURL := URL + h.options.backupSuffix()
	if err = h.fs.Copy(ctx, URL, backupURL); err != nil {
		return fmt.Errorf("failed to backup %s: %w", URL, err)
	}
	h.backupURL = backupURL
	return nil
}

// publish writes the buffered result to the destination.
func (h *Hunks) publish(ctx context.Context) error {
	if err := h.fs.Upload(ctx, h.outputURL, file.DefaultFileOsMode, bytes.NewReader(h.buffer.Bytes())); err != nil {
		return fmt.Errorf("failed to write %s: %w", h.outputURL, err)
	}
	return nil
}
