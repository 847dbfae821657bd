package assets

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/btLong402/flutter-skill/internal/branding"
	"github.com/btLong402/flutter-skill/internal/release"
)

// Download fetches the knowledge bundle archive of a release into destDir
// and returns the archive path. Progress goes to stderr.
func Download(client *http.Client, rel *release.Release, destDir string) (string, error) {
	asset, err := release.BundleAsset(rel)
	if err != nil {
		return "", err
	}

	destPath := filepath.Join(destDir, asset.Name)

	req, err := http.NewRequest("GET", asset.DownloadURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating download request: %w", err)
	}
	req.Header.Set("User-Agent", branding.CLIName()+"-release")

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("downloading %s: %w", asset.Name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download returned status %d", resp.StatusCode)
	}

	f, err := os.Create(destPath)
	if err != nil {
		return "", fmt.Errorf("creating download file: %w", err)
	}
	defer f.Close()

	total := resp.ContentLength
	var downloaded int64
	lastPercent := -1

	buf := make([]byte, 32*1024)
	for {
		n, readErr := resp.Body.Read(buf)
		if n > 0 {
			if _, writeErr := f.Write(buf[:n]); writeErr != nil {
				return "", fmt.Errorf("writing download: %w", writeErr)
			}
			downloaded += int64(n)
			if total > 0 {
				percent := int(downloaded * 100 / total)
				if percent != lastPercent {
					fmt.Fprintf(os.Stderr, "\rDownloading... %d%%", percent)
					lastPercent = percent
				}
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return "", fmt.Errorf("reading download stream: %w", readErr)
		}
	}
	if total > 0 {
		fmt.Fprintln(os.Stderr)
	}

	return destPath, nil
}

// Extract unpacks a bundle archive (tar.gz or zip) into destDir.
func Extract(archivePath, destDir string) error {
	if strings.HasSuffix(archivePath, ".zip") {
		return extractZip(archivePath, destDir)
	}
	return extractTarGz(archivePath, destDir)
}

// FetchRemote downloads, extracts, and validates a release's bundle into
// destDir, returning a directory-backed Source. The caller owns destDir
// and its cleanup.
func FetchRemote(client *http.Client, rel *release.Release, destDir string) (Source, error) {
	archivePath, err := Download(client, rel, destDir)
	if err != nil {
		return nil, err
	}

	extractDir := filepath.Join(destDir, "bundle")
	if err := os.MkdirAll(extractDir, 0755); err != nil {
		return nil, fmt.Errorf("creating extract directory: %w", err)
	}
	if err := Extract(archivePath, extractDir); err != nil {
		return nil, err
	}

	return FromDir(extractDir)
}

// safeJoin joins name under destDir, rejecting absolute paths and
// traversal outside destDir.
func safeJoin(destDir, name string) (string, error) {
	cleaned := filepath.Clean(name)
	if filepath.IsAbs(cleaned) || cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("archive entry %q escapes extraction directory", name)
	}
	return filepath.Join(destDir, cleaned), nil
}

func extractTarGz(archivePath, destDir string) error {
	f, err := os.Open(archivePath)
	if err != nil {
		return fmt.Errorf("opening archive: %w", err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return fmt.Errorf("creating gzip reader: %w", err)
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading tar entry: %w", err)
		}

		dest, err := safeJoin(destDir, hdr.Name)
		if err != nil {
			return err
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(dest, 0755); err != nil {
				return fmt.Errorf("creating directory %s: %w", dest, err)
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
				return fmt.Errorf("creating parent of %s: %w", dest, err)
			}
			out, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, os.FileMode(hdr.Mode)&0777)
			if err != nil {
				return fmt.Errorf("creating %s: %w", dest, err)
			}
			if _, err := io.Copy(out, tr); err != nil {
				out.Close()
				return fmt.Errorf("extracting %s: %w", dest, err)
			}
			out.Close()
		}
		// Symlinks and other special entries are skipped.
	}
	return nil
}

func extractZip(archivePath, destDir string) error {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf("opening zip archive: %w", err)
	}
	defer r.Close()

	for _, zf := range r.File {
		dest, err := safeJoin(destDir, zf.Name)
		if err != nil {
			return err
		}

		if zf.FileInfo().IsDir() {
			if err := os.MkdirAll(dest, 0755); err != nil {
				return fmt.Errorf("creating directory %s: %w", dest, err)
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			return fmt.Errorf("creating parent of %s: %w", dest, err)
		}

		rc, err := zf.Open()
		if err != nil {
			return fmt.Errorf("opening zip entry %s: %w", zf.Name, err)
		}
		out, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, zf.Mode()&0777)
		if err != nil {
			rc.Close()
			return fmt.Errorf("creating %s: %w", dest, err)
		}
		if _, err := io.Copy(out, rc); err != nil {
			out.Close()
			rc.Close()
			return fmt.Errorf("extracting %s: %w", dest, err)
		}
		out.Close()
		rc.Close()
	}
	return nil
}
