// Package gallery derives a stable, ordered gallery listing from the static
// build manifest. The manifest's shape is not under our control, so every
// operation is best effort and none of them errors.
package gallery

import (
	"encoding/json"
	"math"
	"net/url"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/exploride/social-gateway/pkg/logger"
)

// Prefix is where gallery images live inside the deployed bundle.
const Prefix = "gallery/"

var allowedExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"webp": {},
	"gif":  {},
	"avif": {},
}

// Keys under which a manifest object entry may carry its path.
var entryKeys = []string{"path", "file", "name"}

// Resolve turns raw manifest bytes into the final ordered gallery listing.
func Resolve(raw []byte, log logger.Logger) []string {
	return CollectFiles(ExtractEntries(raw, log))
}

// ExtractEntries flattens the manifest into raw candidate strings. Accepted
// shapes: array of strings, array of objects (one string per recognized key
// present), object (its keys are the entries), bare string. Anything else
// contributes nothing.
func ExtractEntries(raw []byte, log logger.Logger) []string {
	if len(raw) == 0 {
		return nil
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		if log != nil {
			log.Warn("Gallery manifest is not valid JSON, ignoring it", "error", err)
		}
		return nil
	}

	var entries []string
	switch m := v.(type) {
	case []any:
		for _, elem := range m {
			switch e := elem.(type) {
			case string:
				entries = append(entries, e)
			case map[string]any:
				for _, key := range entryKeys {
					if s, ok := e[key].(string); ok {
						entries = append(entries, s)
					}
				}
			}
		}
	case map[string]any:
		for key := range m {
			entries = append(entries, key)
		}
	case string:
		entries = append(entries, m)
	}
	return entries
}

// NormalizeEntry reduces one raw manifest value to a relative path: absolute
// http(s) URLs collapse to their path component, leading "./" and slashes go,
// query and fragment go, and the rest is percent-decoded. The result may be
// empty, in which case the entry is discarded by the caller.
func NormalizeEntry(entry string) string {
	s := strings.TrimSpace(entry)

	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		if u, err := url.Parse(s); err == nil {
			s = u.Path
		}
	}

	s = strings.TrimPrefix(s, "./")
	s = strings.TrimLeft(s, "/")

	if i := strings.IndexAny(s, "?#"); i >= 0 {
		s = s[:i]
	}

	if decoded, err := url.PathUnescape(s); err == nil {
		s = decoded
	}
	return s
}

// CollectFiles filters, canonicalizes, dedupes and orders the extracted
// entries. Output paths all read Prefix + filename, carry an allow-listed
// image extension, and are sorted by (leading numeric filename prefix,
// then numeric-aware collation of the whole path).
func CollectFiles(entries []string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, len(entries))

	for _, entry := range entries {
		p := NormalizeEntry(entry)
		if p == "" {
			continue
		}
		if !strings.HasPrefix(strings.ToLower(p), Prefix) {
			continue
		}

		rest := p[len(Prefix):]
		if rest == "" || strings.HasSuffix(rest, "/") {
			continue
		}

		name := path.Base(rest)
		dot := strings.LastIndexByte(name, '.')
		if dot < 0 {
			continue
		}
		if _, ok := allowedExtensions[strings.ToLower(name[dot+1:])]; !ok {
			continue
		}

		canonical := Prefix + name
		if _, ok := seen[canonical]; ok {
			continue
		}
		seen[canonical] = struct{}{}
		out = append(out, canonical)
	}

	sortGallery(out)
	return out
}

func sortGallery(paths []string) {
	c := collate.New(language.Und, collate.Numeric)
	sort.Slice(paths, func(i, j int) bool {
		ni, nj := leadingNumber(paths[i]), leadingNumber(paths[j])
		if ni != nj {
			return ni < nj
		}
		return c.CompareString(paths[i], paths[j]) < 0
	})
}

// leadingNumber parses the run of ASCII digits at the start of the filename.
// Filenames without one sort after every numbered entry.
func leadingNumber(p string) int64 {
	name := p[len(Prefix):]
	end := 0
	for end < len(name) && name[end] >= '0' && name[end] <= '9' {
		end++
	}
	if end == 0 {
		return math.MaxInt64
	}
	var n int64
	for i := 0; i < end; i++ {
		n = n*10 + int64(name[i]-'0')
		if n < 0 {
			return math.MaxInt64 - 1
		}
	}
	return n
}
