package news

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/cognicore/wordhist/pkg/wordhist/ingest"
	"github.com/cognicore/wordhist/pkg/wordhist/internalerr"
)

const maxLineBytes = 16 << 20

// Item is one article of a JSONL feed dump.
type Item struct {
	Title string `json:"title"`
	Body  string `json:"text"`
}

// ItemAt returns the index-th well-formed item of a JSONL file. Malformed
// lines are logged and do not count towards the index.
func ItemAt(path string, index int) (Item, error) {
	if index < 0 {
		return Item{}, fmt.Errorf("item %d: %w", index, internalerr.ErrInvalidInput)
	}

	f, err := os.Open(path)
	if err != nil {
		return Item{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	seen := 0
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var item Item
		if err := json.Unmarshal(line, &item); err != nil {
			log.Printf("Warning: skipping malformed JSON at line %d in %s: %v", lineNo, path, err)
			continue
		}
		if seen == index {
			return item, nil
		}
		seen++
	}
	if err := scanner.Err(); err != nil {
		return Item{}, fmt.Errorf("read %s: %w", path, err)
	}

	if seen == 0 {
		return Item{}, fmt.Errorf("no valid items found in %s: %w", path, internalerr.ErrInvalidInput)
	}
	return Item{}, fmt.Errorf("item %d of %s (have %d): %w", index, path, seen, internalerr.ErrNotFound)
}

// LoadText returns the body of a single article stored at path.
// .html/.htm files are reduced to their visible text, .jsonl files yield the
// body of the item at index, anything else is read verbatim.
func LoadText(path string, index int) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".jsonl" {
		item, err := ItemAt(path, index)
		if err != nil {
			return "", err
		}
		if item.Title != "" {
			log.Printf("loaded %q from %s", item.Title, path)
		}
		return item.Body, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file %s: %w", path, err)
	}
	if ext != ".html" && ext != ".htm" {
		return string(data), nil
	}

	text, err := ingest.ExtractText(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return text, nil
}
