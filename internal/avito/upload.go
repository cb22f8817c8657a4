package avito

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
)

// UploadImage uploads an image file for use in SendImage. The response maps
// the new image id to its size variants.
type UploadImage struct {
	Returns[RawPayload]

	UserID   int64
	FilePath string
}

// Path implements Method.
func (m UploadImage) Path() string {
	return fmt.Sprintf("messenger/v1/accounts/%d/uploadImages", m.UserID)
}

// Encoding implements Method.
func (UploadImage) Encoding() Encoding { return EncodingMultipart }

// Multipart implements MultipartMethod. The file is read on every call so a
// retried request carries the same content.
func (m UploadImage) Multipart() (*MultipartBody, error) {
	data, err := os.ReadFile(m.FilePath)
	if err != nil {
		return nil, fmt.Errorf("reading image: %w", err)
	}
	return &MultipartBody{
		Files: []FileField{{
			FieldName:   "uploadfile[]",
			FileName:    filepath.Base(m.FilePath),
			ContentType: "application/octet-stream",
			Data:        data,
		}},
	}, nil
}

// UploadImage uploads the file at path from the authenticated account and
// returns the new image id.
func (c *Client) UploadImage(ctx context.Context, path string) (string, error) {
	me, err := c.SelfInfo(ctx)
	if err != nil {
		return "", err
	}

	res, err := Call(ctx, c, UploadImage{UserID: me.ID, FilePath: path})
	if err != nil {
		return "", fmt.Errorf("uploading image: %w", err)
	}
	if len(res) == 0 {
		return "", errors.New("uploading image: empty response")
	}
	return slices.Sorted(maps.Keys(res))[0], nil
}

// SendImage uploads the file at path and posts it to chatID.
func (c *Client) SendImage(ctx context.Context, chatID, path string) (*Message, error) {
	imageID, err := c.UploadImage(ctx, path)
	if err != nil {
		return nil, err
	}
	me, err := c.SelfInfo(ctx)
	if err != nil {
		return nil, err
	}
	msg, err := Call(ctx, c, SendImage{UserID: me.ID, ChatID: chatID, ImageID: imageID})
	if err != nil {
		return nil, fmt.Errorf("sending image: %w", err)
	}
	return &msg, nil
}
