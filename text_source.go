package main

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// maxDownloadSize caps remote text bodies at 10 MiB.
const maxDownloadSize = 10 << 20

// getTextFromSource loads the text to analyze.
// - If the input does not contain "://", it is treated as a local file path
//   (relative or absolute).
// - A file:// URI is read directly from its path.
// - An http:// or https:// URI is downloaded and its body is used as-is.
// The text is returned fully in memory; there is no temporary file to clean
// up.
func getTextFromSource(uriStr string) (string, error) {
	if !strings.Contains(uriStr, "://") {
		absPath, err := filepath.Abs(uriStr)
		if err != nil {
			return "", fmt.Errorf("failed to get absolute path for '%s': %w", uriStr, err)
		}
		log.Printf("Reading text from local path: %s", absPath)
		data, err := os.ReadFile(absPath)
		if err != nil {
			return "", fmt.Errorf("failed to read text file '%s': %w", absPath, err)
		}
		return string(data), nil
	}

	parsedURI, err := url.Parse(uriStr)
	if err != nil {
		return "", fmt.Errorf("invalid text URI '%s': %w", uriStr, err)
	}

	switch parsedURI.Scheme {
	case "file":
		if parsedURI.Path == "" {
			return "", fmt.Errorf("invalid file path derived from URI '%s'", uriStr)
		}
		log.Printf("Reading text from file URI: %s", parsedURI.Path)
		data, err := os.ReadFile(parsedURI.Path)
		if err != nil {
			return "", fmt.Errorf("failed to read text file '%s': %w", parsedURI.Path, err)
		}
		return string(data), nil

	case "http", "https":
		log.Printf("Downloading text from URL: %s", uriStr)
		resp, err := http.Get(uriStr)
		if err != nil {
			return "", fmt.Errorf("failed to download text from '%s': %w", uriStr, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("failed to download text from '%s': received status code %d", uriStr, resp.StatusCode)
		}

		data, err := io.ReadAll(io.LimitReader(resp.Body, maxDownloadSize))
		if err != nil {
			return "", fmt.Errorf("failed to read response body from '%s': %w", uriStr, err)
		}
		log.Printf("Successfully downloaded %d bytes from %s", len(data), uriStr)
		return string(data), nil

	default:
		return "", fmt.Errorf("unsupported URI scheme '%s', only 'file://', 'http://', 'https://', or a plain local path are supported", parsedURI.Scheme)
	}
}
