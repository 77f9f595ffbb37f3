package client

import (
	"errors"
	"regexp"
	"strings"

	"eduhub/models"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var httpURLPattern = regexp.MustCompile(`^https?://`)

// notBlank rejects values that are empty after trimming, the rule every
// form applies before a request is allowed out.
func notBlank(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return errors.New("must not be blank")
	}
	return nil
}

// FolderForm is the create/edit folder payload before submission.
type FolderForm struct {
	Title       string
	Description string
}

func (f FolderForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Title, validation.By(notBlank)),
		validation.Field(&f.Description, validation.By(notBlank)),
	)
}

// FileForm is the create/edit file payload before submission.
type FileForm struct {
	Title       string
	Description string
	Content     string
	Attachments []models.Attachment
	SourceLinks []models.SourceLink
}

func (f FileForm) validateLink(link models.SourceLink) error {
	return validation.ValidateStruct(&link,
		validation.Field(&link.Title,
			validation.By(notBlank),
			validation.Length(0, 100),
		),
		validation.Field(&link.URL,
			validation.By(notBlank),
			validation.Match(httpURLPattern).Error("must start with http:// or https://"),
		),
		validation.Field(&link.Description, validation.Length(0, 200)),
	)
}

// Validate enforces the submission contract: required title and
// description, well-formed source links, and at least one attachment or
// link. Fully empty links are filtered, half-filled links block the
// submit. Returns the normalized link slice to send.
func (f FileForm) Validate() ([]models.SourceLink, error) {
	err := validation.ValidateStruct(&f,
		validation.Field(&f.Title, validation.By(notBlank)),
		validation.Field(&f.Description, validation.By(notBlank)),
	)
	if err != nil {
		return nil, err
	}

	links := make([]models.SourceLink, 0, len(f.SourceLinks))
	for _, link := range f.SourceLinks {
		if link.IsEmpty() {
			continue
		}
		if err := f.validateLink(link); err != nil {
			return nil, err
		}
		links = append(links, link)
	}

	if len(f.Attachments) == 0 && len(links) == 0 {
		return nil, errors.New("add at least one attachment or one source link")
	}

	return links, nil
}
