// Package extract turns uploaded resume files into plain text.
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"mime"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ErrUnsupportedType is returned for files that are not TXT, PDF or DOCX.
var ErrUnsupportedType = errors.New("unsupported file type (only PDF, DOCX and TXT allowed)")

// Kind is a supported document format.
type Kind string

const (
	KindText Kind = "text"
	KindPDF  Kind = "pdf"
	KindDOCX Kind = "docx"
)

const docxMIME = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

var (
	paragraphEnd = regexp.MustCompile(`</w:p>|<w:br/>|<w:tab/>`)
	xmlTag       = regexp.MustCompile(`<[^>]*>`)
	blankLines   = regexp.MustCompile(`\n{3,}`)
)

// Detect picks the document kind from the file extension, falling back to
// the declared content type.
func Detect(filename, contentType string) (Kind, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt", ".md":
		return KindText, nil
	case ".pdf":
		return KindPDF, nil
	case ".docx":
		return KindDOCX, nil
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", ErrUnsupportedType
	}
	switch mediaType {
	case "text/plain", "text/markdown":
		return KindText, nil
	case "application/pdf":
		return KindPDF, nil
	case docxMIME:
		return KindDOCX, nil
	}
	return "", ErrUnsupportedType
}

// Text extracts the readable text of an uploaded file.
func Text(filename, contentType string, content []byte) (string, error) {
	kind, err := Detect(filename, contentType)
	if err != nil {
		return "", err
	}
	switch kind {
	case KindPDF:
		return extractPDF(content)
	case KindDOCX:
		return extractDOCX(content)
	default:
		return strings.ToValidUTF8(string(content), "\uFFFD"), nil
	}
}

func extractPDF(content []byte) (string, error) {
	reader := bytes.NewReader(content)
	pdfReader, err := pdf.NewReader(reader, int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("failed to parse pdf: %w", err)
	}

	var textBuilder strings.Builder
	numPages := pdfReader.NumPage()

	for pageNum := 1; pageNum <= numPages; pageNum++ {
		page := pdfReader.Page(pageNum)
		if page.V.IsNull() || page.V.Key("Contents").Kind() == pdf.Null {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip pages that fail to extract
			continue
		}
		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
	}

	return strings.TrimSpace(textBuilder.String()), nil
}

func extractDOCX(content []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return docxPlainText(doc.Editable().GetContent()), nil
}

// docxPlainText reduces WordprocessingML to text, one line per paragraph.
func docxPlainText(xml string) string {
	text := paragraphEnd.ReplaceAllStringFunc(xml, func(tag string) string {
		if tag == "<w:tab/>" {
			return "\t"
		}
		return "\n"
	})
	text = xmlTag.ReplaceAllString(text, "")
	text = html.UnescapeString(text)
	text = blankLines.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
