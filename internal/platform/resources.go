package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
)

// GetJob fetches a job record by UUID.
func (c *Client) GetJob(ctx context.Context, auth AuthEngine, jobUUID string) (*Job, error) {
	var job Job
	path := "/job/" + url.PathEscape(jobUUID) + ".json"
	if err := c.do(ctx, auth, http.MethodGet, "job", path, nil, "", &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// ListMaterials returns every material line booked against a job.
func (c *Client) ListMaterials(ctx context.Context, auth AuthEngine, jobUUID string) ([]Material, error) {
	var materials []Material
	path := "/material.json?" + url.Values{"job_uuid": {jobUUID}}.Encode()
	if err := c.do(ctx, auth, http.MethodGet, "material", path, nil, "", &materials); err != nil {
		return nil, err
	}
	return materials, nil
}

// GetContact fetches a supplier contact by UUID.
func (c *Client) GetContact(ctx context.Context, auth AuthEngine, contactUUID string) (*Contact, error) {
	var contact Contact
	path := "/contact/" + url.PathEscape(contactUUID) + ".json"
	if err := c.do(ctx, auth, http.MethodGet, "contact", path, nil, "", &contact); err != nil {
		return nil, err
	}
	return &contact, nil
}

// CreateDiaryEntry posts a note, with an optional file attached, to a job.
func (c *Client) CreateDiaryEntry(ctx context.Context, auth AuthEngine, jobUUID string, entry DiaryEntry) error {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	if err := form.WriteField("diary_entry[entry_type]", entry.EntryType); err != nil {
		return fmt.Errorf("write entry type: %w", err)
	}
	if err := form.WriteField("diary_entry[message]", entry.Message); err != nil {
		return fmt.Errorf("write message: %w", err)
	}
	if a := entry.Attachment; a != nil {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
			"diary_entry[attached_file]", quoteEscaper.Replace(a.FileName)))
		contentType := a.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		header.Set("Content-Type", contentType)

		part, err := form.CreatePart(header)
		if err != nil {
			return fmt.Errorf("create attachment part: %w", err)
		}
		if _, err := part.Write(a.Data); err != nil {
			return fmt.Errorf("write attachment: %w", err)
		}
	}
	if err := form.Close(); err != nil {
		return fmt.Errorf("close multipart form: %w", err)
	}

	path := "/diaryentry.json?" + url.Values{"job_uuid": {jobUUID}}.Encode()
	return c.do(ctx, auth, http.MethodPost, "diaryentry", path, &buf, form.FormDataContentType(), nil)
}

// UpdateJobCustomFields writes custom field values on a job.
func (c *Client) UpdateJobCustomFields(ctx context.Context, auth AuthEngine, jobUUID string, fields []CustomFieldValue) error {
	body, err := json.Marshal(jobUpdate{CustomFields: fields})
	if err != nil {
		return fmt.Errorf("marshal job update: %w", err)
	}
	path := "/job/" + url.PathEscape(jobUUID) + ".json"
	return c.do(ctx, auth, http.MethodPut, "job", path, bytes.NewReader(body), "application/json", nil)
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")
