package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"strings"
)

// DocxExtractor reads the current rich-text format: a ZIP archive whose main
// body lives in word/document.xml.
type DocxExtractor struct {
	fetcher *Fetcher
}

func (e *DocxExtractor) Extract(ctx context.Context, ref AttachmentReference) (*ExtractedContent, error) {
	data, err := e.fetcher.Fetch(ctx, ref.URL)
	if err != nil {
		return nil, err
	}

	text, err := docxBodyText(data)
	if err != nil {
		return nil, &ParseError{Format: KindDocx, Err: err}
	}

	text = strings.TrimSpace(text)

	return &ExtractedContent{
		SourceFile: ref.Name,
		Text:       text,
		Success:    true,
		Metadata: &Metadata{
			Kind:              KindDocx,
			WordCount:         countWords(text),
			OriginalSizeBytes: ref.Size,
		},
	}, nil
}

func docxBodyText(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open archive: %w", err)
	}

	var docFile *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", fmt.Errorf("word/document.xml not found in archive")
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", fmt.Errorf("open document.xml: %w", err)
	}
	defer rc.Close()

	decoder := xml.NewDecoder(rc)
	var sb strings.Builder
	var paragraph strings.Builder
	inParagraph := false

	for {
		tok, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "p" {
				inParagraph = true
				paragraph.Reset()
			}
		case xml.CharData:
			if inParagraph {
				paragraph.Write(t)
			}
		case xml.EndElement:
			if t.Name.Local == "p" && inParagraph {
				inParagraph = false
				if text := strings.TrimSpace(paragraph.String()); text != "" {
					if sb.Len() > 0 {
						sb.WriteByte('\n')
					}
					sb.WriteString(text)
				}
			}
		}
	}

	return sb.String(), nil
}
