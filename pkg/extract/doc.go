package extract

import (
	"context"
	"strings"

	"ai-docchat-be/internal/constant"
)

// minDocTextRun filters binary noise when scanning legacy .doc files; shorter
// printable runs are almost always structure bytes, not prose.
const minDocTextRun = 4

// LegacyDocExtractor handles the binary .doc format on a best-effort basis.
// There is no reliable pure-Go parser for it, so it scans the compound file
// for printable text runs. When nothing usable comes out it degrades to a
// fixed advisory asking the user to reformat - still a successful record, so
// one old file never stalls a batch.
type LegacyDocExtractor struct {
	fetcher *Fetcher
}

func (e *LegacyDocExtractor) Extract(ctx context.Context, ref AttachmentReference) (*ExtractedContent, error) {
	data, err := e.fetcher.Fetch(ctx, ref.URL)
	if err != nil {
		return nil, err
	}

	text := scanPrintableRuns(data)
	if countWords(text) < 10 {
		// Parser failure path: advisory instead of an error.
		text = constant.LegacyDocAdvisory
	}

	return &ExtractedContent{
		SourceFile: ref.Name,
		Text:       text,
		Success:    true,
		Metadata: &Metadata{
			Kind:              KindLegacyDoc,
			WordCount:         countWords(text),
			OriginalSizeBytes: ref.Size,
		},
	}, nil
}

// scanPrintableRuns collects runs of printable ASCII from a binary buffer,
// joining runs with spaces. UTF-16 text sections interleave NUL bytes, which
// the run-length filter discards along with other structure bytes.
func scanPrintableRuns(data []byte) string {
	var sb strings.Builder
	var run []byte

	flush := func() {
		if len(run) >= minDocTextRun {
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			sb.Write(run)
		}
		run = run[:0]
	}

	for _, b := range data {
		if b >= 0x20 && b < 0x7f || b == '\t' {
			run = append(run, b)
		} else {
			flush()
		}
	}
	flush()

	return strings.TrimSpace(sb.String())
}
