package usecase

import (
	"html"
	"mime/multipart"
	"strings"

	"poster-board/pkg/response"
	"poster-board/services/poster/internal/entity"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// PosterForm carries the submitted poster fields as received from the client.
// Values are sanitized by the use case, not by the caller.
type PosterForm struct {
	PosterID     string
	Author       string
	CreationDate string
	Headline     string
	MetaData     string
	Sections     [entity.SectionCount]SectionInput
}

type SectionInput struct {
	Headline string
	Text     string
	Alt      string
	File     *multipart.FileHeader
}

func (s SectionInput) hasUpload() bool {
	return s.File != nil && s.File.Filename != ""
}

func sanitize(value string) string {
	return strings.TrimSpace(html.EscapeString(value))
}

type requiredField struct {
	label string
	value interface{}
}

// missingFields returns the labels of every empty field, in argument order.
func missingFields(fields ...requiredField) []string {
	var missing []string
	for _, f := range fields {
		if err := validation.Validate(f.value, validation.Required); err != nil {
			missing = append(missing, f.label)
		}
	}
	return missing
}

func missingFieldsResult(labels []string) response.Result {
	return response.New(response.BadRequest, "Missing required fields: "+strings.Join(labels, ", ")+".")
}
