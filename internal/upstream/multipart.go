package upstream

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/dbvertexphp/hunger-safari-subadmin/internal/models"
)

const maxImageSize = 5 << 20

type formField struct {
	name  string
	value string
}

// buildForm serializes plain fields and an optional image attachment into a
// multipart body. Field values arrive already coerced; the image is
// content-sniffed here as a last gate before the bytes go on the wire.
func buildForm(fields []formField, image *models.ImageFile) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	for _, f := range fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return nil, "", err
		}
	}

	if image != nil {
		if err := checkImage(image); err != nil {
			return nil, "", err
		}
		part, err := w.CreateFormFile("image", image.Name)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(image.Content); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}

func checkImage(image *models.ImageFile) error {
	if int64(len(image.Content)) > maxImageSize {
		return fmt.Errorf("image file too large (max 5MB)")
	}
	mtype := mimetype.Detect(image.Content)
	if !mtype.Is("image/jpeg") && !mtype.Is("image/png") {
		return fmt.Errorf("unsupported image type: %s", mtype.String())
	}
	return nil
}

// Numeric form values are parsed and re-serialized instead of being passed
// through as the user typed them.

func coerceFloat(name, raw string) (string, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return "", fmt.Errorf("%s is not numeric: %q", name, raw)
	}
	return strconv.FormatFloat(f, 'f', -1, 64), nil
}

func coerceInt(name, raw string) (string, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("%s is not an integer: %q", name, raw)
	}
	return strconv.Itoa(n), nil
}
