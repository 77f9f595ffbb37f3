package client

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eduhub/models"
)

func sampleAttachment() models.Attachment {
	return models.Attachment{
		URL:      "https://cdn.example.com/a.pdf",
		PublicID: "abc123",
		Name:     "a.pdf",
		Type:     models.AttachmentPDF,
		Size:     1024,
	}
}

func TestFolderFormValidate(t *testing.T) {
	err := FolderForm{Title: "Grade 10", Description: "Past papers"}.Validate()
	assert.NoError(t, err)

	assert.Error(t, FolderForm{Description: "Past papers"}.Validate())
	assert.Error(t, FolderForm{Title: "Grade 10"}.Validate())
	assert.Error(t, FolderForm{Title: "   ", Description: "Past papers"}.Validate())
}

func TestFileFormValidateRequiredFields(t *testing.T) {
	form := FileForm{
		Description: "notes",
		Attachments: []models.Attachment{sampleAttachment()},
	}
	_, err := form.Validate()
	assert.Error(t, err, "title is required")

	form = FileForm{
		Title:       "Term test",
		Attachments: []models.Attachment{sampleAttachment()},
	}
	_, err = form.Validate()
	assert.Error(t, err, "description is required")
}

func TestFileFormValidateNeedsAttachmentOrLink(t *testing.T) {
	form := FileForm{Title: "Term test", Description: "notes"}
	_, err := form.Validate()
	require.Error(t, err)

	// A fully-empty link row does not satisfy the requirement.
	form.SourceLinks = []models.SourceLink{{}}
	_, err = form.Validate()
	require.Error(t, err)

	form.SourceLinks = []models.SourceLink{{Title: "Syllabus", URL: "https://moe.example.com/syllabus"}}
	links, err := form.Validate()
	require.NoError(t, err)
	assert.Len(t, links, 1)
}

func TestFileFormValidateDropsEmptyLinks(t *testing.T) {
	form := FileForm{
		Title:       "Term test",
		Description: "notes",
		Attachments: []models.Attachment{sampleAttachment()},
		SourceLinks: []models.SourceLink{
			{},
			{Title: "Syllabus", URL: "https://moe.example.com/syllabus"},
			{},
		},
	}
	links, err := form.Validate()
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, "Syllabus", links[0].Title)
}

func TestFileFormValidateRejectsHalfFilledLinks(t *testing.T) {
	base := FileForm{
		Title:       "Term test",
		Description: "notes",
		Attachments: []models.Attachment{sampleAttachment()},
	}

	form := base
	form.SourceLinks = []models.SourceLink{{Title: "Syllabus"}}
	_, err := form.Validate()
	assert.Error(t, err, "link with title but no url")

	form = base
	form.SourceLinks = []models.SourceLink{{URL: "https://moe.example.com"}}
	_, err = form.Validate()
	assert.Error(t, err, "link with url but no title")

	form = base
	form.SourceLinks = []models.SourceLink{{Title: "Syllabus", URL: "ftp://moe.example.com"}}
	_, err = form.Validate()
	assert.Error(t, err, "non-http scheme")
}

func TestFileFormValidateLinkLengthLimits(t *testing.T) {
	form := FileForm{
		Title:       "Term test",
		Description: "notes",
		SourceLinks: []models.SourceLink{{
			Title: strings.Repeat("x", 101),
			URL:   "https://moe.example.com",
		}},
	}
	_, err := form.Validate()
	assert.Error(t, err)

	form.SourceLinks = []models.SourceLink{{
		Title:       "Syllabus",
		URL:         "https://moe.example.com",
		Description: strings.Repeat("x", 201),
	}}
	_, err = form.Validate()
	assert.Error(t, err)
}
